package fieldnorm

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tkuchiki/go-timezone"

	"datesieve/internal/core/extracted"
)

// zoneMinutes is the fixed abbreviation table, minutes east of UTC
// Abbreviations with several common meanings (IST, CST in Asia) keep their
// most frequent reading in web text
var zoneMinutes = map[string]int{
	"UTC": 0, "UT": 0, "GMT": 0, "Z": 0, "WET": 0,
	"WEST": 60, "BST": 60, "CET": 60, "MEZ": 60,
	"CEST": 120, "MESZ": 120, "EET": 120,
	"EEST": 180, "MSK": 180,
	"EST": -300, "EDT": -240,
	"CST": -360, "CDT": -300,
	"MST": -420, "MDT": -360,
	"PST": -480, "PDT": -420,
	"AKST": -540, "AKDT": -480,
	"HST": -600,
	"AST": -240, "ADT": -180,
	"NST": -210, "NDT": -150,
	"AWST": 480, "ACST": 570, "ACDT": 630,
	"AEST": 600, "AEDT": 660,
	"NZST": 720, "NZDT": 780,
	"JST": 540, "KST": 540, "HKT": 480, "SGT": 480,
}

// ZoneNames lists the fixed table keys, longest first
func ZoneNames() []string {
	out := make([]string, 0, len(zoneMinutes))
	for k := range zoneMinutes {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

var (
	tzOnce sync.Once
	tzDB   *timezone.Timezone
)

func tzdb() *timezone.Timezone {
	tzOnce.Do(func() { tzDB = timezone.New() })
	return tzDB
}

// zoneTail finds a trailing zone token after a clock time
// rest must end in a digit or an am/pm marker; the zone is a numeric offset
// (optionally GMT/UTC prefixed), a Z designator, or a short alphabetic name
var zoneTail = regexp.MustCompile(`(?i)^(.*?(?:\d|[ap]\.?m\.?))(\s*(?:(?:gmt|utc|ut)\s*)?[+-]\d{1,2}(?::?\d{2})?|\s*z|\s+[a-z]{1,5})\s*$`)

// SplitZone splits s into the datetime part and a trailing zone token
// It only splits when the datetime part carries a clock time; AM/PM are not zones
func SplitZone(s string) (datetime, zone string, ok bool) {
	m := zoneTail.FindStringSubmatch(s)
	if m == nil {
		return s, "", false
	}
	rest, tok := m[1], strings.TrimSpace(m[2])
	if !strings.Contains(rest, ":") {
		return s, "", false
	}
	switch strings.ToUpper(strings.ReplaceAll(tok, ".", "")) {
	case "AM", "PM", "UM", "UHR":
		return s, "", false
	}
	return rest, tok, true
}

// ZoneOffset resolves a zone token to its offset east of UTC
// Named zones go through the fixed table, then the IANA abbreviation data when
// that yields one unambiguous offset. Unknown tokens report (0, false)
func ZoneOffset(token string) (time.Duration, bool) {
	tok := strings.ToUpper(strings.TrimSpace(token))
	for _, p := range []string{"GMT", "UTC", "UT"} {
		if rest := strings.TrimSpace(strings.TrimPrefix(tok, p)); rest != tok && rest != "" && (rest[0] == '+' || rest[0] == '-') {
			tok = rest
			break
		}
	}
	if tok == "" {
		return 0, false
	}
	if tok[0] == '+' || tok[0] == '-' {
		h, m, err := splitDiff(tok[1:])
		if err != nil || h > 14 {
			return 0, false
		}
		d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
		if tok[0] == '-' {
			d = -d
		}
		return d, true
	}
	if mins, ok := zoneMinutes[tok]; ok {
		return time.Duration(mins) * time.Minute, true
	}
	infos, err := tzdb().GetTzAbbreviationInfo(tok)
	if err != nil || len(infos) == 0 {
		return 0, false
	}
	off := infos[0].Offset()
	for _, in := range infos[1:] {
		if in.Offset() != off {
			return 0, false
		}
	}
	return time.Duration(off) * time.Second, true
}

// ApplyZone shifts the builder from the zone's local time to UTC and records the token
// Unknown zones leave the time as is and report false
func ApplyZone(b *extracted.Builder, token string) (bool, error) {
	off, known := ZoneOffset(token)
	b.SetZone(strings.TrimSpace(token))
	if off == 0 {
		return known, nil
	}
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	mins := int(off / time.Minute)
	diff := twoDigits(mins/60) + ":" + twoDigits(mins%60)
	return known, SetTimeDiff(b, diff, sign)
}

// SetTimeDiff shifts the builder by an HH:MM, HHMM or HH delta
// sign "-" adds the delta and "+" subtracts it, which turns a local time with
// that offset into UTC. Carry and borrow run through every field. It is a no-op
// unless year, month, day and hour are set; the minute is only touched when it
// was set already or the delta has minutes
func SetTimeDiff(b *extracted.Builder, diff, sign string) error {
	if !b.Has(extracted.FieldYear) || !b.Has(extracted.FieldMonth) ||
		!b.Has(extracted.FieldDay) || !b.Has(extracted.FieldHour) {
		return nil
	}
	h, m, err := splitDiff(diff)
	if err != nil {
		return err
	}
	delta := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	switch sign {
	case "-":
	case "+":
		delta = -delta
	default:
		return fail(StageZone, sign+diff)
	}

	minuteSet := b.Has(extracted.FieldMinute)
	minute := 0
	if minuteSet {
		minute = b.Get(extracted.FieldMinute)
	}
	t := time.Date(
		b.Get(extracted.FieldYear), time.Month(b.Get(extracted.FieldMonth)), b.Get(extracted.FieldDay),
		b.Get(extracted.FieldHour), minute, 0, 0, time.UTC,
	).Add(delta)

	b.Set(extracted.FieldYear, t.Year()).
		Set(extracted.FieldMonth, int(t.Month())).
		Set(extracted.FieldDay, t.Day()).
		Set(extracted.FieldHour, t.Hour())
	if minuteSet || m != 0 {
		b.Set(extracted.FieldMinute, t.Minute())
	}
	return nil
}

// splitDiff parses "HH:MM", "HHMM", "HH" or "H"
func splitDiff(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	hs, ms := s, ""
	if i := strings.IndexByte(s, ':'); i >= 0 {
		hs, ms = s[:i], s[i+1:]
	} else if len(s) == 4 {
		hs, ms = s[:2], s[2:]
	}
	if !isDigits(hs) || len(hs) > 2 || (ms != "" && (!isDigits(ms) || len(ms) != 2)) {
		return 0, 0, fail(StageZone, s)
	}
	h, _ := strconv.Atoi(hs)
	m := 0
	if ms != "" {
		m, _ = strconv.Atoi(ms)
	}
	if h > 23 || m > 59 {
		return 0, 0, fail(StageZone, s)
	}
	return h, m, nil
}

func twoDigits(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
