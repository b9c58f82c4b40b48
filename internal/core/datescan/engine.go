// Package datescan finds and parses dates in free text against the format catalog
package datescan

import (
	"sort"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"datesieve/internal/core/dateformat"
	"datesieve/internal/core/extracted"
	"datesieve/internal/core/fieldnorm"
	"datesieve/internal/core/textprep"
	perr "datesieve/internal/platform/errors"
)

// Options controls engine behavior
type Options struct {
	// Logger receives debug lines for skipped candidates; zero value discards
	Logger *zerolog.Logger
}

// Engine scans text with one catalog. It holds no per-call state and is safe
// for concurrent use
type Engine struct {
	cat *dateformat.Catalog
	log zerolog.Logger
}

// New creates an Engine over cat; nil means the built-in catalog
func New(cat *dateformat.Catalog) *Engine {
	return NewWithOptions(cat, Options{})
}

// NewWithOptions creates an Engine with custom options
func NewWithOptions(cat *dateformat.Catalog, opts Options) *Engine {
	if cat == nil {
		cat = dateformat.Default()
	}
	e := &Engine{cat: cat, log: zerolog.Nop()}
	if opts.Logger != nil {
		e.log = opts.Logger.With().Str("component", "datescan").Logger()
	}
	return e
}

// Catalog returns the catalog the engine scans with
func (e *Engine) Catalog() *dateformat.Catalog { return e.cat }

// candidate is one normalizable match; spans are [start,end) rune offsets
type candidate struct {
	start, end int
	pos        int
	date       extracted.Date
}

func (c candidate) overlaps(o candidate) bool { return c.start < o.end && o.start < c.end }

// FindDate returns the first date found by the most specific descriptor that
// has a clean, normalizable match
func (e *Engine) FindDate(text string) (extracted.Date, bool) {
	return e.first(textprep.Prepare(text), e.cat.All())
}

// FindDateAs is FindDate restricted to one descriptor
func (e *Engine) FindDateAs(text string, name dateformat.Name) (extracted.Date, bool, error) {
	descs, err := e.cat.PatternsFor(name)
	if err != nil {
		return extracted.Date{}, false, perr.WithOp(err, "datescan.FindDateAs")
	}
	d, ok := e.first(textprep.Prepare(text), descs)
	return d, ok, nil
}

func (e *Engine) first(text string, descs []*dateformat.Descriptor) (extracted.Date, bool) {
	if text == "" {
		return extracted.Date{}, false
	}
	r := []rune(text)
	for _, d := range descs {
		var found extracted.Date
		ok := false
		e.each(d, r, func(m *regexp2.Match) bool {
			date, err := e.extract(d, m, m.String(), "")
			if err != nil {
				e.log.Debug().Err(err).Str("format", string(d.Name)).Str("text", m.String()).Msg("candidate skipped")
				return false
			}
			found, ok = date, true
			return true
		})
		if ok {
			return found, true
		}
	}
	return extracted.Date{}, false
}

// FindDates returns every non-overlapping date in left-to-right order
func (e *Engine) FindDates(text string) []extracted.Date {
	return e.scan(textprep.Prepare(text), e.cat.All())
}

// FindDatesAs is FindDates over the named descriptors only
func (e *Engine) FindDatesAs(text string, names ...dateformat.Name) ([]extracted.Date, error) {
	descs, err := e.cat.Select(names...)
	if err != nil {
		return nil, perr.WithOp(err, "datescan.FindDatesAs")
	}
	return e.scan(textprep.Prepare(text), descs), nil
}

// scan walks descs tier by tier. Accepted spans are masked before the next tier
// searches, so a lower rank can never claim part of a higher rank's date.
// A candidate that fails normalization masks its span too, unless an accepted
// date covers part of it: "2010-02-29" yields nothing rather than "2010-02"
func (e *Engine) scan(text string, descs []*dateformat.Descriptor) []extracted.Date {
	if text == "" {
		return nil
	}
	masked := []rune(text)
	var accepted []candidate

	for i := 0; i < len(descs); {
		j := i
		for j < len(descs) && descs[j].Rank == descs[i].Rank {
			j++
		}

		var cands, failed []candidate
		for k := i; k < j; k++ {
			d := descs[k]
			e.each(d, masked, func(m *regexp2.Match) bool {
				date, err := e.extract(d, m, m.String(), "")
				if err != nil {
					e.log.Debug().Err(err).Str("format", string(d.Name)).Str("text", m.String()).Msg("candidate skipped")
					failed = append(failed, candidate{start: m.Index, end: m.Index + m.Length, pos: k})
					return false
				}
				cands = append(cands, candidate{start: m.Index, end: m.Index + m.Length, pos: k, date: date})
				return false
			})
		}

		// longer matches first, catalog order on ties
		sort.SliceStable(cands, func(a, b int) bool {
			la, lb := cands[a].end-cands[a].start, cands[b].end-cands[b].start
			if la != lb {
				return la > lb
			}
			return cands[a].pos < cands[b].pos
		})

	CANDS:
		for _, c := range cands {
			for _, a := range accepted {
				if c.overlaps(a) {
					continue CANDS
				}
			}
			accepted = append(accepted, c)
			mask(masked, c)
		}
	FAILED:
		for _, f := range failed {
			for _, a := range accepted {
				if f.overlaps(a) {
					continue FAILED
				}
			}
			mask(masked, f)
		}
		i = j
	}

	sort.SliceStable(accepted, func(a, b int) bool { return accepted[a].start < accepted[b].start })
	out := make([]extracted.Date, len(accepted))
	for i, c := range accepted {
		out[i] = c.date
	}
	return out
}

func mask(r []rune, c candidate) {
	for p := c.start; p < c.end; p++ {
		r[p] = 'x'
	}
}

// each feeds boundary-clean matches of d over r to fn until fn returns true
// A rejected match resumes one rune later so an overlapping clean match is not lost
func (e *Engine) each(d *dateformat.Descriptor, r []rune, fn func(m *regexp2.Match) bool) {
	start := 0
	for start < len(r) {
		m, err := d.FindRunesAt(r, start)
		if err != nil {
			e.log.Warn().Stack().Err(errors.WithStack(err)).Str("format", string(d.Name)).Msg("match failed")
			return
		}
		if m == nil {
			return
		}
		end := m.Index + m.Length
		if !boundaryOK(r, m.Index, end) {
			start = m.Index + 1
			continue
		}
		if fn(m) {
			return
		}
		start = end
		if m.Length == 0 {
			start++
		}
	}
}

// boundaryOK rejects a span glued to a number: preceded by '.' or a digit,
// or followed by a digit unless the span ends in '/'
func boundaryOK(r []rune, start, end int) bool {
	if start > 0 {
		if p := r[start-1]; p == '.' || isDigit(p) {
			return false
		}
	}
	if end < len(r) && isDigit(r[end]) && (end == start || r[end-1] != '/') {
		return false
	}
	return true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Parse matches the whole text against every descriptor in catalog order
func (e *Engine) Parse(text string) (extracted.Date, error) {
	return e.parse(text, e.cat.All(), "datescan.Parse")
}

// ParseAs matches the whole text against one descriptor
func (e *Engine) ParseAs(text string, name dateformat.Name) (extracted.Date, error) {
	descs, err := e.cat.PatternsFor(name)
	if err != nil {
		return extracted.Date{}, perr.WithOp(err, "datescan.ParseAs")
	}
	return e.parse(text, descs, "datescan.ParseAs")
}

func (e *Engine) parse(text string, descs []*dateformat.Descriptor, op string) (extracted.Date, error) {
	s := textprep.Prepare(text)
	if s == "" {
		return extracted.Date{}, perr.WithOp(perr.NoMatchf("empty input"), op)
	}
	if d, ok, err := e.anchored(s, s, "", descs); ok || err != nil {
		return d, perr.WithOp(err, op)
	}
	// a trailing zone no descriptor spells, eg a lower case "cest"
	if dt, zone, ok := fieldnorm.SplitZone(s); ok {
		if d, ok, err := e.anchored(s, dt, zone, descs); ok || err != nil {
			return d, perr.WithOp(err, op)
		}
	}
	return extracted.Date{}, perr.WithOp(perr.NoMatchf("no date format matches %q", s), op)
}

// anchored returns the first descriptor whose full match accepts s
// With a zone split off, only matches that carry a clock and no zone qualify
func (e *Engine) anchored(text, s, zone string, descs []*dateformat.Descriptor) (extracted.Date, bool, error) {
	for _, d := range descs {
		m, err := d.MatchFull(s)
		if err != nil {
			return extracted.Date{}, false, perr.Wrap(errors.WithStack(err), perr.ErrorCodeUnknown, "match failed")
		}
		if m == nil {
			continue
		}
		if zone != "" && (group(m, "hour") == "" || group(m, "zone") != "") {
			continue
		}
		date, err := e.extract(d, m, text, zone)
		if err != nil {
			return extracted.Date{}, false, err
		}
		return date, true, nil
	}
	return extracted.Date{}, false, nil
}
