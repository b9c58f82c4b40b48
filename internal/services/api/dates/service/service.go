// Package service contains date scanning workflows
package service

import (
	"context"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"datesieve/internal/core/dateformat"
	"datesieve/internal/core/datescan"
	"datesieve/internal/core/exactness"
	"datesieve/internal/core/extracted"
	"datesieve/internal/core/interval"
	"datesieve/internal/core/relative"
	"datesieve/internal/platform/config"
	perr "datesieve/internal/platform/errors"
	"datesieve/internal/platform/logger"
	"datesieve/internal/services/api/dates/domain"
)

// Service defines the dates service contract
type Service interface {
	domain.ServicePort
}

// Options bounds request sizes and batch fan-out
type Options struct {
	// MaxText is the largest text accepted, in characters
	MaxText int
	// Workers is the batch concurrency
	Workers int
	// MaxDocs caps documents per batch
	MaxDocs int
	// Now is the reference for relative dates without one; nil means time.Now
	Now func() time.Time
}

// FromConfig reads SCAN_MAX_TEXT, BATCH_WORKERS and BATCH_MAX_DOCS
func FromConfig(cfg config.Conf) Options {
	return Options{
		MaxText: cfg.MayInt("SCAN_MAX_TEXT", 1<<20),
		Workers: cfg.MayInt("BATCH_WORKERS", runtime.NumCPU()),
		MaxDocs: cfg.MayInt("BATCH_MAX_DOCS", 1000),
	}
}

func (o Options) withDefaults() Options {
	if o.MaxText <= 0 {
		o.MaxText = 1 << 20
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.MaxDocs <= 0 {
		o.MaxDocs = 1000
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Svc implements the dates service
type Svc struct {
	engine *datescan.Engine
	opt    Options
}

// New constructs a dates service over engine
func New(engine *datescan.Engine, opt Options) *Svc {
	if engine == nil {
		panic("dates.Service requires a non nil Engine")
	}
	return &Svc{engine: engine, opt: opt.withDefaults()}
}

// Find returns every date in the text, ordered by position
func (s *Svc) Find(ctx context.Context, in domain.FindInput) ([]domain.Date, error) {
	if err := s.checkText(in.Text, "text"); err != nil {
		return nil, err
	}
	found, err := s.engine.FindDatesAs(in.Text, names(in.Formats)...)
	if err != nil {
		return nil, err
	}
	logger.C(ctx).Debug().Int("dates", len(found)).Msg("dates found")
	return toDTOs(found), nil
}

// First returns the most specific date in the text
func (s *Svc) First(_ context.Context, in domain.FirstInput) (domain.Date, error) {
	if err := s.checkText(in.Text, "text"); err != nil {
		return domain.Date{}, err
	}
	d, ok, err := s.engine.FindDateAs(in.Text, dateformat.Name(in.Format))
	if err != nil {
		return domain.Date{}, err
	}
	if !ok {
		return domain.Date{}, perr.WithOp(perr.NoMatchf("no date found in text"), "dates.First")
	}
	return ToDTO(d), nil
}

// Parse reads the whole text as one date
func (s *Svc) Parse(_ context.Context, in domain.ParseInput) (domain.Date, error) {
	if err := s.checkText(in.Text, "text"); err != nil {
		return domain.Date{}, err
	}
	d, err := s.engine.ParseAs(in.Text, dateformat.Name(in.Format))
	if err != nil {
		return domain.Date{}, noMatchOn(err, "text")
	}
	return ToDTO(d), nil
}

// Relative resolves "N units ago" against the requested reference
func (s *Svc) Relative(_ context.Context, in domain.RelativeInput) (domain.Date, error) {
	if err := s.checkText(in.Text, "text"); err != nil {
		return domain.Date{}, err
	}
	ref, err := s.reference(in)
	if err != nil {
		return domain.Date{}, err
	}
	d, err := relative.Find(in.Text, ref)
	if err != nil {
		return domain.Date{}, noMatchOn(err, "text")
	}
	return ToDTO(d), nil
}

func (s *Svc) reference(in domain.RelativeInput) (time.Time, error) {
	switch {
	case in.ReferenceMs != nil:
		return time.UnixMilli(*in.ReferenceMs).UTC(), nil
	case strings.TrimSpace(in.Reference) != "":
		t, err := dateparse.ParseIn(strings.TrimSpace(in.Reference), time.UTC)
		if err != nil {
			return time.Time{}, perr.WithField(perr.InvalidArgf("unreadable reference %q", in.Reference), "reference")
		}
		return t.UTC(), nil
	}
	return s.opt.Now().UTC(), nil
}

// Interval sums the duration phrase in the text
func (s *Svc) Interval(_ context.Context, in domain.IntervalInput) (domain.IntervalOutput, error) {
	if err := s.checkText(in.Text, "text"); err != nil {
		return domain.IntervalOutput{}, err
	}
	return domain.IntervalOutput{
		Seconds:  interval.Parse(in.Text),
		Duration: interval.ParseDuration(in.Text).String(),
	}, nil
}

var diffUnits = map[string]time.Duration{
	"":       time.Second,
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    extracted.Day,
}

// Diff parses both sides and compares them at their common precision
func (s *Svc) Diff(_ context.Context, in domain.DiffInput) (domain.DiffOutput, error) {
	unit, ok := diffUnits[in.Unit]
	if !ok {
		return domain.DiffOutput{}, perr.WithField(perr.InvalidArgf("unknown unit %q", in.Unit), "unit")
	}
	if err := s.checkText(in.A, "a"); err != nil {
		return domain.DiffOutput{}, err
	}
	if err := s.checkText(in.B, "b"); err != nil {
		return domain.DiffOutput{}, err
	}
	a, err := s.engine.Parse(in.A)
	if err != nil {
		return domain.DiffOutput{}, perr.WithField(err, "a")
	}
	b, err := s.engine.Parse(in.B)
	if err != nil {
		return domain.DiffOutput{}, perr.WithField(err, "b")
	}
	name := in.Unit
	if name == "" {
		name = "second"
	}
	return domain.DiffOutput{
		A:         ToDTO(a),
		B:         ToDTO(b),
		Unit:      name,
		Exactness: exactness.Common(a.Exactness(), b.Exactness()).String(),
		Value:     a.Difference(b, unit),
	}, nil
}

// Batch scans documents concurrently; results keep the input order
func (s *Svc) Batch(ctx context.Context, in domain.BatchInput) ([]domain.BatchResult, error) {
	if len(in.Documents) > s.opt.MaxDocs {
		return nil, perr.WithField(perr.InvalidArgf("at most %d documents per batch", s.opt.MaxDocs), "documents")
	}
	for _, doc := range in.Documents {
		if err := s.checkText(doc.Text, "documents"); err != nil {
			return nil, err
		}
	}
	formats := names(in.Formats)
	if _, err := s.engine.Catalog().Select(formats...); err != nil {
		return nil, err
	}

	log := logger.C(ctx)
	start := time.Now()
	workers := int64(s.opt.Workers)
	sem := semaphore.NewWeighted(workers)
	out := make([]domain.BatchResult, len(in.Documents))

	for i, doc := range in.Documents {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "batch cancelled")
		}
		go func(i int, doc domain.BatchDocument) {
			defer sem.Release(1)
			id := doc.ID
			if id == "" {
				id = uuid.NewString()
			}
			// formats were validated above
			found, _ := s.engine.FindDatesAs(doc.Text, formats...)
			out[i] = domain.BatchResult{ID: id, Dates: toDTOs(found)}
		}(i, doc)
	}
	// wait for in-flight workers
	if err := sem.Acquire(ctx, workers); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "batch cancelled")
	}
	sem.Release(workers)

	log.Debug().Int("documents", len(out)).Dur("elapsed", time.Since(start)).Msg("batch scanned")
	return out, nil
}

// Formats lists the catalog in scan order
func (s *Svc) Formats(_ context.Context) ([]domain.FormatRow, error) {
	all := s.engine.Catalog().All()
	out := make([]domain.FormatRow, 0, len(all))
	for _, d := range all {
		out = append(out, domain.FormatRow{Name: string(d.Name), Layout: d.Layout, Rank: d.Rank.String()})
	}
	return out, nil
}

func (s *Svc) checkText(text, field string) error {
	if n := utf8.RuneCountInString(text); n > s.opt.MaxText {
		return perr.WithField(perr.InvalidArgf("text has %d characters, limit is %d", n, s.opt.MaxText), field)
	}
	return nil
}

// noMatchOn points a NoMatch at field; other codes keep the field they carry
func noMatchOn(err error, field string) error {
	if perr.IsCode(err, perr.ErrorCodeNoMatch) {
		return perr.WithField(err, field)
	}
	return err
}

func names(in []string) []dateformat.Name {
	if len(in) == 0 {
		return nil
	}
	out := make([]dateformat.Name, 0, len(in))
	for _, n := range in {
		out = append(out, dateformat.Name(strings.TrimSpace(n)))
	}
	return out
}
