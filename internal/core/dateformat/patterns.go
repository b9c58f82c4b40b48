package dateformat

import (
	"strings"

	"datesieve/internal/core/fieldnorm"
)

// Pattern fragments. [0-9] is used over \d because the engine's \d also
// matches non-ASCII digits
const (
	year4 = `(?<year>[0-9]{4})`
	// a short year followed by a colon is the hour of a clock
	yearAny = `(?<year>[0-9]{4}|'?[0-9]{2}(?!:))`
	// after a bare month name a short year must not be the day of "Jan 25,2011"
	// or "Feb 12 10:30"
	yearAfterMonth = `(?<year>[0-9]{4}|'?[0-9]{2}(?!:|,'?[0-9]|\s[0-9]{1,2}:))`
	// four digits or an apostrophe short year, so "3.50" is not March 1950
	yearMarked = `(?<year>[0-9]{4}|'[0-9]{2})`

	month2  = `(?<month>0[1-9]|1[0-2])`
	month12 = `(?<month>1[0-2]|0?[1-9])`

	day2  = `(?<day>0[1-9]|[12][0-9]|3[01])`
	day12 = `(?<day>0[1-9]|[12][0-9]|3[01]|[1-9])`
	// day with optional English ordinal suffix
	dayOrd = day12 + `(?i:st|nd|rd|th)?`

	// between day or month name and year: "17, 1956", "17,1956", "20. 2008"
	sepYear = `(?:[,.]?\s|,)`
	// between day and month name: "03. Mai", "6-Feb", "12, November"
	sepDayMonth = `(?:\.?\s?|,\s|-)`

	week  = `W(?<week>0[1-9]|[1-4][0-9]|5[0-3])`
	wday  = `(?<wday>[1-7])`
	yday  = `(?<yday>00[1-9]|0[1-9][0-9]|[12][0-9]{2}|3[0-5][0-9]|36[0-6])`
	hms   = `(?<hour>2[0-3]|[01][0-9]):(?<minute>[0-5][0-9]):(?<second>[0-5][0-9])`
	sepT  = `(?:,?\s|\s/\s|\s(?i:um|at)\s)`
	urlCh = `[/._-]`

	monthName = `\b(?<month>(?i:january|januar|jänner|february|februar|march|märz|maerz|april|may|mai|june|juni|july|juli|august|september|october|oktober|november|december|dezember|sept|jan|feb|mar|mär|apr|jun|jul|aug|sep|oct|okt|nov|dec|dez))(?!\p{L})\.?`
	monthShort = `\b(?<month>(?i:jan|feb|mar|apr|may|jun|jul|aug|sept|sep|oct|nov|dec))(?!\p{L})`

	weekdayShort = `\b(?i:mon|tue|wed|thu|fri|sat|sun)`
	weekdayLong  = `\b(?i:monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|wed|thu|fri|sat|sun)`

	// optional GMT/UTC prefix, sign, hour, optional minutes
	numZone = `(?:(?:GMT|UTC|UT)\s?)?[+-](?:2[0-3]|[01][0-9])(?::?[0-5][0-9])?`

	// 12 or 24 hour clock; an hour alone needs an am/pm marker
	clock = `(?<hour>2[0-4]|[01]?[0-9])(?=:|\s?[AaPp]\.?[Mm])` +
		`(?::(?<minute>[0-5][0-9])(?::(?<second>[0-5][0-9])(?<frac>[.,][0-9]+)?)?)?` +
		`(?:\s?(?<ampm>[AaPp]\.?[Mm]\.?)(?![A-Za-z]))?`
)

// zone names: the fixed table first, then any short upper case token
var nameZone = `(?:` + strings.Join(fieldnorm.ZoneNames(), "|") + `|(?!(?:UHR|AND|THE|FOR|AT|ON)(?![A-Za-z]))[A-Z]{3,5})(?![A-Za-z])`

// zoneOpt is any zone after a clock
var zoneOpt = `(?<zone>\s?` + numZone + `|\s?Z(?![A-Za-z])|\s` + nameZone + `)?`

// isoTime is T or a space before the clock, 24 hour only
var isoTime = `(?:T|\s(?=[0-9]{1,2}(?::|$)))` +
	`(?<hour>2[0-4]|[01]?[0-9])(?::(?<minute>[0-5][0-9])(?::(?<second>[0-5][0-9])(?<frac>[.,][0-9]+)?)?)?` +
	zoneOpt
