// Package relative resolves "N units ago" phrases against a reference time
package relative

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"datesieve/internal/core/exactness"
	"datesieve/internal/core/extracted"
	"datesieve/internal/core/textprep"
	perr "datesieve/internal/platform/errors"
)

// Unit is the time unit of a relative phrase
type Unit string

// Supported units
const (
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Month  Unit = "month"
	Year   Unit = "year"
)

var agoRe = regexp.MustCompile(`(?i)\b([0-9]+)\s+(minute|hour|day|month|year)s?\s+ago\b`)

// Phrase is a recognized relative expression
type Phrase struct {
	N    int
	Unit Unit
	Text string
}

// Match returns the first relative phrase in text
func Match(text string) (Phrase, bool) {
	m := agoRe.FindStringSubmatch(textprep.Prepare(text))
	if m == nil {
		return Phrase{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Phrase{}, false
	}
	return Phrase{N: n, Unit: Unit(strings.ToLower(m[2])), Text: m[0]}, true
}

// Resolve subtracts the phrase from ref. Days, months and years move on the
// calendar and keep day exactness; minutes and hours keep the clock to the minute
func (p Phrase) Resolve(ref time.Time) extracted.Date {
	ref = ref.UTC()
	var t time.Time
	e := exactness.Day
	switch p.Unit {
	case Minute:
		t, e = ref.Add(-time.Duration(p.N)*time.Minute), exactness.Minute
	case Hour:
		t, e = ref.Add(-time.Duration(p.N)*time.Hour), exactness.Minute
	case Day:
		t = ref.AddDate(0, 0, -p.N)
	case Month:
		t = ref.AddDate(0, -p.N, 0)
	default:
		t = ref.AddDate(-p.N, 0, 0)
	}
	return extracted.FromTime(t, e)
}

// Find resolves the first "N units ago" phrase in text against ref
func Find(text string, ref time.Time) (extracted.Date, error) {
	p, ok := Match(text)
	if !ok {
		return extracted.Date{}, perr.WithOp(perr.NoMatchf("no relative date in %q", text), "relative.Find")
	}
	return p.Resolve(ref), nil
}

// FindMillis is Find with a reference in Unix milliseconds
func FindMillis(text string, refMillis int64) (extracted.Date, error) {
	return Find(text, time.UnixMilli(refMillis))
}
