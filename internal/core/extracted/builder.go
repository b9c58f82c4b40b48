package extracted

import (
	"time"

	"datesieve/internal/core/exactness"
)

// Builder accumulates fields for one in-flight match
// Not safe for concurrent use; each match gets its own
type Builder struct {
	d Date
}

// NewBuilder starts a value for the given matched text and format name
func NewBuilder(text, format string) *Builder {
	return &Builder{d: Date{text: text, format: format}}
}

// Set stores v for f; a negative v unsets the field
func (b *Builder) Set(f Field, v int) *Builder {
	if f < 0 || f >= numFields {
		return b
	}
	if v < 0 {
		b.d.set &^= 1 << f
		b.d.v[f] = 0
		return b
	}
	b.d.v[f] = v
	b.d.set |= 1 << f
	return b
}

// Get returns the current value of f or Unset
func (b *Builder) Get(f Field) int { return b.d.Get(f) }

// Has reports whether f is set
func (b *Builder) Has(f Field) bool { return b.d.Has(f) }

// SetZone records the zone token that was applied
func (b *Builder) SetZone(zone string) *Builder {
	b.d.zone = zone
	return b
}

// SetTime copies fields from t (in UTC) up to e and unsets the finer ones
func (b *Builder) SetTime(t time.Time, e exactness.Exactness) *Builder {
	t = t.UTC()
	vals := [numFields]int{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()}
	for f := FieldYear; f < numFields; f++ {
		if e.Provides(exactness.Exactness(f) + exactness.Year) {
			b.Set(f, vals[f])
		} else {
			b.Set(f, Unset)
		}
	}
	return b
}

// Build returns the immutable value
// Day and time fields whose coarser neighbour is unset are cleared, the month is
// kept without a year so partial dates like "25.07." survive
func (b *Builder) Build() Date {
	d := b.d
	for f := FieldDay; f < numFields; f++ {
		if d.set&(1<<(f-1)) == 0 {
			d.set &^= 1 << f
			d.v[f] = 0
		}
	}
	return d
}
