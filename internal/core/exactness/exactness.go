// Package exactness models how precisely a date was determined, from year to second
package exactness

import (
	"fmt"
	"strings"
)

// Exactness is a totally ordered precision level
// The zero value Unset sits below Year and marks values with no usable year
type Exactness int

const (
	// Unset means not even the year is known
	Unset Exactness = iota
	// Year precision
	Year
	// Month precision
	Month
	// Day precision
	Day
	// Hour precision
	Hour
	// Minute precision
	Minute
	// Second precision
	Second
)

var names = [...]string{
	Unset:  "UNSET",
	Year:   "YEAR",
	Month:  "MONTH",
	Day:    "DAY",
	Hour:   "HOUR",
	Minute: "MINUTE",
	Second: "SECOND",
}

// All lists the levels from coarsest to finest, Unset excluded
func All() []Exactness { return []Exactness{Year, Month, Day, Hour, Minute, Second} }

// Provides reports whether e is at least as precise as other
func (e Exactness) Provides(other Exactness) bool { return e >= other }

// Valid reports whether e is one of the declared levels
func (e Exactness) Valid() bool { return e >= Unset && e <= Second }

// String returns the upper case level name
func (e Exactness) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Exactness(%d)", int(e))
	}
	return names[e]
}

// Common returns the coarser of a and b
func Common(a, b Exactness) Exactness {
	if a < b {
		return a
	}
	return b
}

// Parse resolves a level name, case-insensitive
func Parse(s string) (Exactness, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Exactness(i), nil
		}
	}
	return Unset, fmt.Errorf("exactness: unknown level %q", s)
}

// MarshalText encodes the level name
func (e Exactness) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("exactness: invalid level %d", int(e))
	}
	return []byte(names[e]), nil
}

// UnmarshalText decodes a level name
func (e *Exactness) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
