// Package dateformat holds the catalog of recognizable date shapes
// Each Descriptor pairs a detection pattern whose named groups (year, month,
// day, week, wday, yday, hour, minute, second, frac, ampm, zone) form the
// parse template with a specificity rank
package dateformat

import (
	"sort"
	"sync"
	"unicode"

	"github.com/dlclark/regexp2"

	perr "datesieve/internal/platform/errors"
)

// Name is the stable catalog tag of a descriptor, eg "ISO8601_YMD_T"
type Name string

// Rank orders descriptors by how many fields they pin down
type Rank int

const (
	// RankContext is a bare year recognized only through a preceding word
	RankContext Rank = iota + 1
	// RankPartial fixes two fields (year and month, month and day, ...)
	RankPartial
	// RankDate fixes a full calendar day
	RankDate
	// RankDateTime is a calendar day plus a clock time
	RankDateTime
	// RankStamp is a weekday-led protocol timestamp (RFC 1123, RFC 1036, ANSI C)
	RankStamp
)

// String returns the tier name
func (r Rank) String() string {
	switch r {
	case RankContext:
		return "context"
	case RankPartial:
		return "partial"
	case RankDate:
		return "date"
	case RankDateTime:
		return "datetime"
	case RankStamp:
		return "stamp"
	}
	return "unknown"
}

// Descriptor is one recognizable date shape. Immutable after the catalog is built
type Descriptor struct {
	Name    Name
	Layout  string
	Rank    Rank
	Pattern string

	anchored string
	pos      int
	fixed    int
	find     *regexp2.Regexp
	full     *regexp2.Regexp
}

// Fixed is the number of non-space characters in the layout, the secondary sort key
func (d *Descriptor) Fixed() int { return d.fixed }

// Position is the declaration index inside the catalog definition
func (d *Descriptor) Position() int { return d.pos }

// FindRunes returns the first match in r (rune offsets), nil when there is none
func (d *Descriptor) FindRunes(r []rune) (*regexp2.Match, error) { return d.find.FindRunesMatch(r) }

// FindRunesAt is FindRunes starting at rune offset start; look-behinds still see r[:start]
func (d *Descriptor) FindRunesAt(r []rune, start int) (*regexp2.Match, error) {
	return d.find.FindRunesMatchStartingAt(r, start)
}

// MatchFull matches s as a whole, nil when s does not conform
func (d *Descriptor) MatchFull(s string) (*regexp2.Match, error) { return d.full.FindStringMatch(s) }

// Less is the catalog comparator: rank descending, fixed characters
// descending, declaration order ascending
func Less(a, b *Descriptor) bool {
	if a.Rank != b.Rank {
		return a.Rank > b.Rank
	}
	if a.fixed != b.fixed {
		return a.fixed > b.fixed
	}
	return a.pos < b.pos
}

// Catalog is the ordered, read-only descriptor set; safe for concurrent use
type Catalog struct {
	ordered []*Descriptor
	byName  map[Name]*Descriptor
}

// Def declares a descriptor; Anchored overrides the pattern used by MatchFull
type Def struct {
	Name     Name
	Layout   string
	Rank     Rank
	Pattern  string
	Anchored string
}

// New compiles defs into a catalog. It panics on malformed patterns or duplicate
// names since definitions are static
func New(defs []Def) *Catalog {
	c := &Catalog{byName: make(map[Name]*Descriptor, len(defs))}
	for i, df := range defs {
		if _, dup := c.byName[df.Name]; dup {
			panic("dateformat: duplicate descriptor " + string(df.Name))
		}
		anchored := df.Anchored
		if anchored == "" {
			anchored = df.Pattern
		}
		d := &Descriptor{
			Name:     df.Name,
			Layout:   df.Layout,
			Rank:     df.Rank,
			Pattern:  df.Pattern,
			anchored: anchored,
			pos:      i,
			fixed:    countFixed(df.Layout),
			find:     regexp2.MustCompile(df.Pattern, regexp2.None),
			full:     regexp2.MustCompile(`^(?:`+anchored+`)$`, regexp2.None),
		}
		c.ordered = append(c.ordered, d)
		c.byName[d.Name] = d
	}
	sort.SliceStable(c.ordered, func(i, j int) bool { return Less(c.ordered[i], c.ordered[j]) })
	return c
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog, compiled once
func Default() *Catalog {
	defaultOnce.Do(func() { defaultCat = New(Builtin()) })
	return defaultCat
}

// All returns the descriptors in catalog order; callers must not modify the slice
func (c *Catalog) All() []*Descriptor { return c.ordered }

// Len is the number of descriptors
func (c *Catalog) Len() int { return len(c.ordered) }

// Lookup returns the named descriptor or an UnknownFormat error
func (c *Catalog) Lookup(name Name) (*Descriptor, error) {
	if d, ok := c.byName[name]; ok {
		return d, nil
	}
	return nil, perr.WithField(perr.UnknownFormatf("unknown date format %q", string(name)), "format")
}

// PatternsFor returns the full catalog for an empty name, otherwise exactly the
// named descriptor
func (c *Catalog) PatternsFor(name Name) ([]*Descriptor, error) {
	if name == "" {
		return c.ordered, nil
	}
	d, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []*Descriptor{d}, nil
}

// Select returns the named descriptors in catalog order, duplicates dropped
// No names selects everything
func (c *Catalog) Select(names ...Name) ([]*Descriptor, error) {
	if len(names) == 0 {
		return c.ordered, nil
	}
	want := make(map[Name]struct{}, len(names))
	for _, n := range names {
		if _, err := c.Lookup(n); err != nil {
			return nil, err
		}
		want[n] = struct{}{}
	}
	out := make([]*Descriptor, 0, len(want))
	for _, d := range c.ordered {
		if _, ok := want[d.Name]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func countFixed(layout string) int {
	n := 0
	for _, r := range layout {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
