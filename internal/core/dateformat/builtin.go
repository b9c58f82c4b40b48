package dateformat

// Catalog names
const (
	ANSICTZ    Name = "ANSI_C_TZ"
	ANSIC      Name = "ANSI_C"
	UnixDate   Name = "UNIX_DATE"
	RFC1036UTC Name = "RFC_1036_UTC"
	RFC1036    Name = "RFC_1036"
	RFC1123UTC Name = "RFC_1123_UTC"
	RFC1123    Name = "RFC_1123"

	ISO8601YDT     Name = "ISO8601_YD_T"
	ISO8601YMDT    Name = "ISO8601_YMD_T"
	ISO8601YWDT    Name = "ISO8601_YWD_T"
	USAMMDYT       Name = "USA_MM_D_Y_T"
	EUDMMYT        Name = "EU_D_MM_Y_T"
	USAMMMMDYT     Name = "USA_MMMM_D_Y_T"
	EUDMMMMYT      Name = "EU_D_MMMM_Y_T"
	USAMMDYTSep    Name = "USA_MM_D_Y_T_SEPARATOR"
	ISO8601YMDSepT Name = "ISO8601_YMD_SEPARATOR_T"

	ISO8601YMD    Name = "ISO8601_YMD"
	USAMMDY       Name = "USA_MM_D_Y"
	EUDMMY        Name = "EU_D_MM_Y"
	USAMMMMDY     Name = "USA_MMMM_D_Y"
	USAMMMMDYSep  Name = "USA_MMMM_D_Y_SEP"
	EUDMMMMY      Name = "EU_D_MMMM_Y"
	ISO8601YWD    Name = "ISO8601_YWD"
	URLD          Name = "URL_D"
	USAMMDYSep    Name = "USA_MM_D_Y_SEPARATOR"
	EUSAYYYYMMMD  Name = "EUSA_YYYY_MMM_D"
	ISO8601YMDSep Name = "ISO8601_YMD_SEPARATOR"
	URLMMMMD      Name = "URL_MMMM_D"
	URLSplit      Name = "URL_SPLIT"
	ISO8601YD     Name = "ISO8601_YD"
	ISO8601YMDNo  Name = "ISO8601_YMD_NO"
	ISO8601YWDNo  Name = "ISO8601_YWD_NO"
	ISO8601YDNo   Name = "ISO8601_YD_NO"

	ISO8601YM   Name = "ISO8601_YM"
	ISO8601YW   Name = "ISO8601_YW"
	ISO8601YWNo Name = "ISO8601_YW_NO"
	EUSAMMMMY   Name = "EUSA_MMMM_Y"
	USAMMD      Name = "USA_MM_D"
	USAMMY      Name = "USA_MM_Y"
	USAMMMMD    Name = "USA_MMMM_D"
	EUDMM       Name = "EU_D_MM"
	EUDMMMM     Name = "EU_D_MMMM"
	EUMMY       Name = "EU_MM_Y"
	URL         Name = "URL"
	YearlessMD  Name = "YEARLESS_MD"

	ContextYYYY Name = "CONTEXT_YYYY"
)

// Builtin returns the built-in definitions in declaration order
// Declaration order only breaks ties between equal rank and layout width, which
// is why the USA numeric forms precede the EU ones ("02/07/2010" is February 7)
func Builtin() []Def {
	return []Def{
		// protocol stamps
		{ANSICTZ, "WD MMM DD_1 HH:MM:SS YYYY +UTC", RankStamp,
			weekdayShort + `\s` + monthShort + `\s(?<day>[12][0-9]|3[01]|0?[1-9])\s` + hms + `\s` + year4 + `\s(?<zone>` + numZone + `)`, ""},
		{ANSIC, "WD MMM DD_1 HH:MM:SS YYYY", RankStamp,
			weekdayShort + `\s` + monthShort + `\s(?<day>[12][0-9]|3[01]|0?[1-9])\s` + hms + `\s` + year4, ""},
		{UnixDate, "WD MMM DD_1 HH:MM:SS TZ YYYY", RankStamp,
			weekdayShort + `\s` + monthShort + `\s(?<day>[12][0-9]|3[01]|0?[1-9])\s` + hms + `\s(?<zone>` + nameZone + `)\s` + year4, ""},
		{RFC1036UTC, "WWD, DD-MMM-YY HH:MM:SS +UTC", RankStamp,
			weekdayLong + `,\s` + day2 + `-` + monthShort + `-(?<year>[0-9]{4}|[0-9]{2})\s` + hms + `\s(?<zone>` + numZone + `)`, ""},
		{RFC1036, "WWD, DD-MMM-YY HH:MM:SS TZ", RankStamp,
			weekdayLong + `,\s` + day2 + `-` + monthShort + `-(?<year>[0-9]{4}|[0-9]{2})\s` + hms + `\s(?<zone>` + nameZone + `)`, ""},
		{RFC1123UTC, "WD, DD MMM YYYY HH:MM:SS +UTC", RankStamp,
			weekdayShort + `,\s` + day12 + `\s` + monthShort + `\s` + year4 + `\s` + hms + `\s(?<zone>` + numZone + `)`, ""},
		{RFC1123, "WD, DD MMM YYYY HH:MM:SS TZ", RankStamp,
			weekdayShort + `,\s` + day12 + `\s` + monthShort + `\s` + year4 + `\s` + hms + `\s(?<zone>` + nameZone + `)`, ""},

		// date and time
		{ISO8601YDT, "YYYY-DDDTHH:MM:SS+HH:MM", RankDateTime,
			year4 + `-` + yday + isoTime, ""},
		{ISO8601YMDT, "YYYY-MM-DDTHH:MM:SS+HH:MM", RankDateTime,
			yearAny + `-` + month2 + `-` + day2 + isoTime, ""},
		{ISO8601YWDT, "YYYY-WW-DTHH:MM:SS+HH:MM", RankDateTime,
			year4 + `-` + week + `-` + wday + isoTime, ""},
		{USAMMDYT, "MM/DD/YYYY HH:MM:SS +UTC", RankDateTime,
			month12 + `/` + day12 + `/` + yearAny + sepT + clock + zoneOpt, ""},
		{EUDMMYT, "DD.MM.YYYY HH:MM:SS +UTC", RankDateTime,
			day12 + `(?<sep>[./_-])` + month12 + `\k<sep>` + yearAny + sepT + clock + zoneOpt, ""},
		{USAMMMMDYT, "MMMM DD, YYYY HH:MM:SS +UTC", RankDateTime,
			monthName + `\s?` + dayOrd + sepYear + yearAny + sepT + clock + zoneOpt, ""},
		{EUDMMMMYT, "DD. MMMM YYYY HH:MM:SS +UTC", RankDateTime,
			dayOrd + sepDayMonth + monthName + `(?:,?\s|-)` + yearAny + sepT + clock + zoneOpt, ""},
		{USAMMDYTSep, "MM.DD.YYYY HH:MM:SS +UTC", RankDateTime,
			month12 + `(?<sep>[._-])` + day12 + `\k<sep>` + yearAny + sepT + clock + zoneOpt, ""},
		{ISO8601YMDSepT, "YYYY/MM/DDTHH:MM:SS+HH:MM", RankDateTime,
			year4 + `(?<sep>[/._])` + month2 + `\k<sep>` + day2 + isoTime, ""},

		// full dates
		{ISO8601YMD, "YYYY-MM-DD", RankDate,
			yearAny + `-` + month2 + `-` + day2, ""},
		{USAMMDY, "MM/DD/YYYY", RankDate,
			month12 + `/` + day12 + `/` + yearAny, ""},
		{EUDMMY, "DD.MM.YYYY", RankDate,
			day12 + `(?<sep>[./_-])` + month12 + `\k<sep>` + yearAny, ""},
		{USAMMMMDY, "MMMM DD, YYYY", RankDate,
			monthName + `\s?` + dayOrd + sepYear + yearAny, ""},
		{USAMMMMDYSep, "MMMM-DD-YYYY", RankDate,
			monthName + `-` + day12 + `-` + yearAny, ""},
		{EUDMMMMY, "DD. MMMM YYYY", RankDate,
			dayOrd + sepDayMonth + monthName + `(?:,?\s|-)` + yearAny, ""},
		{ISO8601YWD, "YYYY-WW-D", RankDate,
			year4 + `-` + week + `-` + wday, ""},
		{URLD, "YYYY_MM_DD", RankDate,
			// a slash separated date must be closed by a slash too
			yearAny + `(?<sep>` + urlCh + `)` + month2 + `\k<sep>` + day2 + `(?:(?<=/[0-9]{2})/|(?<!/[0-9]{2}))`, ""},
		{USAMMDYSep, "MM.DD.YYYY", RankDate,
			month12 + `(?<sep>[._-])` + day12 + `\k<sep>` + yearAny, ""},
		{EUSAYYYYMMMD, "YYYY-MMM-D", RankDate,
			year4 + `-` + monthName + `-` + day12, ""},
		{ISO8601YMDSep, "YYYY/MM/DD", RankDate,
			year4 + `(?<sep>[/._])` + month2 + `\k<sep>` + day2, ""},
		{URLMMMMD, "YYYY/MMMM/DD/", RankDate,
			yearAny + `/` + monthName + `/` + day12 + `/`, ""},
		{URLSplit, "YYYY/x/MM/DD", RankDate,
			year4 + `/[^\s/]+(?:/[^\s/]+)*?/` + month2 + urlCh + day2 + `(?![0-9])`, ""},
		{ISO8601YD, "YYYY-DDD", RankDate,
			year4 + `-` + yday, ""},
		{ISO8601YMDNo, "YYYYMMDD", RankDate,
			year4 + month2 + day2, ""},
		{ISO8601YWDNo, "YYYYWWD", RankDate,
			year4 + week + wday, ""},
		{ISO8601YDNo, "YYYYDDD", RankDate,
			year4 + yday, ""},

		// two fields
		{ISO8601YM, "YYYY-MM", RankPartial,
			yearAny + `-` + month2, ""},
		{ISO8601YW, "YYYY-WW", RankPartial,
			year4 + `-` + week, ""},
		{ISO8601YWNo, "YYYYWW", RankPartial,
			year4 + week, ""},
		{EUSAMMMMY, "MMMM YYYY", RankPartial,
			monthName + `,?\s` + yearAfterMonth, ""},
		{USAMMD, "MM/DD", RankPartial,
			month12 + `/` + day12, ""},
		{USAMMY, "MM/YYYY", RankPartial,
			month12 + `/` + yearMarked, ""},
		{USAMMMMD, "MMMM DD", RankPartial,
			monthName + `\s` + dayOrd, ""},
		{EUDMM, "DD.MM.", RankPartial,
			day12 + `\.` + month12 + `\.`, ""},
		{EUDMMMM, "DD.MMMM", RankPartial,
			day12 + `\.?\s` + monthName, ""},
		{EUMMY, "MM.YYYY", RankPartial,
			month12 + `(?<sep>[/._-])` + yearMarked, ""},
		{URL, "YYYY_MM", RankPartial,
			year4 + urlCh + month2, ""},
		// how a value without a year renders, so it parses back
		{YearlessMD, "0-MM-DD", RankPartial,
			`(?<![0-9])0-` + month2 + `-` + day2, ""},

		// a year is only a date after a context word
		{ContextYYYY, "YYYY", RankContext,
			`(?<=\b(?i:in|of|from|year|until|through|during)\s)` + year4, year4},
	}
}
