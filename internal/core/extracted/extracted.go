// Package extracted holds the immutable date value produced by the scanner and
// the short-lived builder used to assemble it
package extracted

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"datesieve/internal/core/exactness"
)

// Unset is the sentinel returned for fields that were not determined
// 0 is a legal hour, minute and second so it cannot double as "missing"
const Unset = -1

// Day is a calendar day as a Difference unit
const Day = 24 * time.Hour

// Field names one calendar component
type Field int

const (
	// FieldYear is the full year, eg 2010
	FieldYear Field = iota
	// FieldMonth is 1-12
	FieldMonth
	// FieldDay is the day of month 1-31
	FieldDay
	// FieldHour is 0-23
	FieldHour
	// FieldMinute is 0-59
	FieldMinute
	// FieldSecond is 0-59
	FieldSecond

	numFields
)

var fieldNames = [numFields]string{"year", "month", "day", "hour", "minute", "second"}

// String returns the lower case field name
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// ParseField resolves a field by name
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range fieldNames {
		if n == s {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("extracted: unknown field %q", s)
}

// Date is an extracted calendar value. It is immutable; build one with Builder
// The zero Date has every field unset
type Date struct {
	v      [numFields]int
	set    uint8
	zone   string
	text   string
	format string
}

// Get returns the raw field value or Unset
func (d Date) Get(f Field) int {
	if f < 0 || f >= numFields || d.set&(1<<f) == 0 {
		return Unset
	}
	return d.v[f]
}

// Has reports whether the field is set
func (d Date) Has(f Field) bool { return d.Get(f) != Unset }

// Text is the substring the value was extracted from ("" when synthetic)
func (d Date) Text() string { return d.text }

// Format is the catalog name of the descriptor that matched ("" when synthetic)
func (d Date) Format() string { return d.format }

// Zone is the zone token that was applied, if any
func (d Date) Zone() string { return d.zone }

// IsZero reports whether no field is set
func (d Date) IsZero() bool { return d.set == 0 }

// Exactness cascades from the year down; it stops at the first unset field
func (d Date) Exactness() exactness.Exactness {
	e := exactness.Unset
	for f := FieldYear; f < numFields; f++ {
		if !d.Has(f) {
			break
		}
		e++
	}
	return e
}

// NormalizedString renders the value including the time of day when present
func (d Date) NormalizedString() string { return d.NormalizedDateString(true) }

// String implements fmt.Stringer
func (d Date) String() string { return d.NormalizedString() }

// NormalizedDateString renders YYYY[-MM[-DD[ HH[:MM[:SS]]]]]
// A missing year is written as 0 so partial dates like "25.07." keep month and day
func (d Date) NormalizedDateString(includeTime bool) string {
	var b strings.Builder
	b.Grow(19)
	if d.Has(FieldYear) {
		b.WriteString(strconv.Itoa(d.Get(FieldYear)))
	} else {
		b.WriteByte('0')
	}
	if !d.Has(FieldMonth) {
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", d.Get(FieldMonth))
	if !d.Has(FieldDay) {
		return b.String()
	}
	fmt.Fprintf(&b, "-%02d", d.Get(FieldDay))
	if !includeTime || !d.Has(FieldHour) {
		return b.String()
	}
	fmt.Fprintf(&b, " %02d", d.Get(FieldHour))
	if !d.Has(FieldMinute) {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", d.Get(FieldMinute))
	if d.Has(FieldSecond) {
		fmt.Fprintf(&b, ":%02d", d.Get(FieldSecond))
	}
	return b.String()
}

// Time returns the instant in UTC; unset fields take their minimum
func (d Date) Time() time.Time { return d.instant(exactness.Second) }

// instant builds a UTC time using fields up to e only
func (d Date) instant(e exactness.Exactness) time.Time {
	get := func(f Field, lvl exactness.Exactness, min int) int {
		if !e.Provides(lvl) || !d.Has(f) {
			return min
		}
		return d.Get(f)
	}
	return time.Date(
		get(FieldYear, exactness.Year, 0),
		time.Month(get(FieldMonth, exactness.Month, 1)),
		get(FieldDay, exactness.Day, 1),
		get(FieldHour, exactness.Hour, 0),
		get(FieldMinute, exactness.Minute, 0),
		get(FieldSecond, exactness.Second, 0),
		0, time.UTC,
	)
}

// Difference returns |d - other| in unit, rounded to two decimals
// Both values are compared at their common exactness
func (d Date) Difference(other Date, unit time.Duration) float64 {
	if unit <= 0 {
		unit = time.Second
	}
	e := exactness.Common(d.Exactness(), other.Exactness())
	diff := d.instant(e).Sub(other.instant(e))
	if diff < 0 {
		diff = -diff
	}
	v := float64(diff) / float64(unit)
	return math.Round(v*100) / 100
}

// FromTime builds a synthetic value from t (in UTC) carrying fields up to e
func FromTime(t time.Time, e exactness.Exactness) Date {
	b := NewBuilder("", "")
	b.SetTime(t, e)
	return b.Build()
}
