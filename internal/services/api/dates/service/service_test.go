package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datesieve/internal/core/datescan"
	perr "datesieve/internal/platform/errors"
	"datesieve/internal/services/api/dates/domain"
)

var ref = time.Date(2010, 12, 1, 11, 0, 0, 0, time.UTC)

func newSvc(opt Options) *Svc {
	if opt.Now == nil {
		opt.Now = func() time.Time { return ref }
	}
	return New(datescan.New(nil), opt)
}

func TestNewPanicsWithoutEngine(t *testing.T) {
	assert.Panics(t, func() { New(nil, Options{}) })
}

func TestFind(t *testing.T) {
	s := newSvc(Options{})
	got, err := s.Find(context.Background(), domain.FindInput{Text: "released 2010-07-02, patched Mon, 18 Apr 2011 09:16:00 GMT-0700"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2010-07-02", got[0].Normalized)
	assert.Equal(t, "DAY", got[0].Exactness)
	require.NotNil(t, got[0].Year)
	assert.Equal(t, 2010, *got[0].Year)
	assert.Nil(t, got[0].Hour)
	require.NotNil(t, got[0].UnixMs)
	assert.Equal(t, time.Date(2010, 7, 2, 0, 0, 0, 0, time.UTC).UnixMilli(), *got[0].UnixMs)

	assert.Equal(t, "2011-04-18 16:16:00", got[1].Normalized)
	assert.Equal(t, "SECOND", got[1].Exactness)
}

func TestFindEmptyIsEmptySlice(t *testing.T) {
	got, err := newSvc(Options{}).Find(context.Background(), domain.FindInput{Text: "no dates here"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindRestrictedFormats(t *testing.T) {
	s := newSvc(Options{})
	got, err := s.Find(context.Background(), domain.FindInput{
		Text:    "2010-07-02 and 03.08.2010",
		Formats: []string{"EU_D_MM_Y"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2010-08-03", got[0].Normalized)

	_, err = s.Find(context.Background(), domain.FindInput{Text: "x", Formats: []string{"BOGUS"}})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnknownFormat))
}

func TestYearlessDateHasNoInstant(t *testing.T) {
	got, err := newSvc(Options{}).Find(context.Background(), domain.FindInput{Text: "and again on 25.07."})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0-07-25", got[0].Normalized)
	assert.Equal(t, "UNSET", got[0].Exactness)
	assert.Nil(t, got[0].Year)
	assert.Nil(t, got[0].UnixMs)
}

func TestFirst(t *testing.T) {
	s := newSvc(Options{})
	d, err := s.First(context.Background(), domain.FirstInput{Text: "Last-Modified: Tue, 02 Jul 2010 19:07:49 GMT"})
	require.NoError(t, err)
	assert.Equal(t, "RFC_1123", d.Format)
	assert.Equal(t, "GMT", d.Zone)

	_, err = s.First(context.Background(), domain.FirstInput{Text: "nothing"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNoMatch))
}

func TestParse(t *testing.T) {
	s := newSvc(Options{})
	d, err := s.Parse(context.Background(), domain.ParseInput{Text: "Tue Jul 2 15:37:49 2010 -03:30"})
	require.NoError(t, err)
	assert.Equal(t, "2010-07-02 19:07:49", d.Normalized)

	_, err = s.Parse(context.Background(), domain.ParseInput{Text: "hello"})
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNoMatch))
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, "text", e.Field())

	_, err = s.Parse(context.Background(), domain.ParseInput{Text: "31.02.2010"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNormalization))

	_, err = s.Parse(context.Background(), domain.ParseInput{Text: "2010-07-02", Format: "NOPE"})
	require.True(t, perr.IsCode(err, perr.ErrorCodeUnknownFormat))
	e, _ = perr.As(err)
	assert.Equal(t, "format", e.Field())
}

func TestRelative(t *testing.T) {
	s := newSvc(Options{})
	ctx := context.Background()

	d, err := s.Relative(ctx, domain.RelativeInput{Text: "114 days ago"})
	require.NoError(t, err)
	assert.Equal(t, "2010-08-09", d.Normalized)

	ms := ref.AddDate(1, 0, 0).UnixMilli()
	d, err = s.Relative(ctx, domain.RelativeInput{Text: "1 year ago", ReferenceMs: &ms})
	require.NoError(t, err)
	assert.Equal(t, "2010-12-01", d.Normalized)

	d, err = s.Relative(ctx, domain.RelativeInput{Text: "2 hours ago", Reference: "2010-12-01 11:30:00"})
	require.NoError(t, err)
	assert.Equal(t, "2010-12-01 09:30", d.Normalized)
	assert.Equal(t, "MINUTE", d.Exactness)

	_, err = s.Relative(ctx, domain.RelativeInput{Text: "3 days ago", Reference: "whenever"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	_, err = s.Relative(ctx, domain.RelativeInput{Text: "next week"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNoMatch))
}

func TestInterval(t *testing.T) {
	out, err := newSvc(Options{}).Interval(context.Background(), domain.IntervalInput{Text: "4 hrs 20 mins"})
	require.NoError(t, err)
	assert.Equal(t, 15600.0, out.Seconds)
	assert.Equal(t, "4h20m0s", out.Duration)
}

func TestDiff(t *testing.T) {
	s := newSvc(Options{})
	out, err := s.Diff(context.Background(), domain.DiffInput{A: "2010-07-02 19:07", B: "2010-07-02 18:37", Unit: "hour"})
	require.NoError(t, err)
	assert.Equal(t, "MINUTE", out.Exactness)
	assert.InDelta(t, 0.5, out.Value, 0.001)

	out, err = s.Diff(context.Background(), domain.DiffInput{A: "2010-07-02", B: "2010-07-01 23:59"})
	require.NoError(t, err)
	assert.Equal(t, "second", out.Unit)
	assert.InDelta(t, 86400.0, out.Value, 0.001)

	_, err = s.Diff(context.Background(), domain.DiffInput{A: "2010-07-02", B: "nope"})
	require.Error(t, err)
	e, _ := perr.As(err)
	assert.Equal(t, "b", e.Field())

	_, err = s.Diff(context.Background(), domain.DiffInput{A: "2010-07-02", B: "2010-07-01", Unit: "fortnight"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestBatchKeepsOrderAndAssignsIDs(t *testing.T) {
	s := newSvc(Options{Workers: 2})
	docs := make([]domain.BatchDocument, 0, 20)
	for i := 0; i < 20; i++ {
		docs = append(docs, domain.BatchDocument{Text: "on 2010-07-" + twoDigit(i+1) + " it rained"})
	}
	docs[3].ID = "keep-me"

	out, err := s.Batch(context.Background(), domain.BatchInput{Documents: docs})
	require.NoError(t, err)
	require.Len(t, out, 20)
	for i, r := range out {
		require.Len(t, r.Dates, 1, "doc %d", i)
		assert.Equal(t, "2010-07-"+twoDigit(i+1), r.Dates[0].Normalized)
		assert.NotEmpty(t, r.ID)
	}
	assert.Equal(t, "keep-me", out[3].ID)
	assert.NotEqual(t, out[0].ID, out[1].ID)
}

func TestBatchLimits(t *testing.T) {
	s := newSvc(Options{MaxDocs: 2, MaxText: 10})
	ctx := context.Background()

	_, err := s.Batch(ctx, domain.BatchInput{Documents: make([]domain.BatchDocument, 3)})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	_, err = s.Batch(ctx, domain.BatchInput{Documents: []domain.BatchDocument{{Text: strings.Repeat("x", 11)}}})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	_, err = s.Batch(ctx, domain.BatchInput{Documents: []domain.BatchDocument{{Text: "x"}}, Formats: []string{"NOPE"}})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnknownFormat))
}

func TestBatchCancelled(t *testing.T) {
	s := newSvc(Options{Workers: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Batch(ctx, domain.BatchInput{Documents: []domain.BatchDocument{{Text: "2010-07-02"}}})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}

func TestTextLimit(t *testing.T) {
	s := newSvc(Options{MaxText: 5})
	_, err := s.Find(context.Background(), domain.FindInput{Text: "2010-07-02"})
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	e, _ := perr.As(err)
	assert.Equal(t, "text", e.Field())
}

func TestDiffTextLimit(t *testing.T) {
	s := newSvc(Options{MaxText: 10})
	ctx := context.Background()

	_, err := s.Diff(ctx, domain.DiffInput{A: "2010-07-02 " + strings.Repeat("x", 20), B: "2010-07-01"})
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	e, _ := perr.As(err)
	assert.Equal(t, "a", e.Field())

	_, err = s.Diff(ctx, domain.DiffInput{A: "2010-07-02", B: strings.Repeat("9", 11)})
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	e, _ = perr.As(err)
	assert.Equal(t, "b", e.Field())

	_, err = s.Diff(ctx, domain.DiffInput{A: "2010-07-02", B: "2010-07-01"})
	require.NoError(t, err)
}

func TestFormats(t *testing.T) {
	rows, err := newSvc(Options{}).Formats(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "stamp", rows[0].Rank)
	assert.Equal(t, "CONTEXT_YYYY", rows[len(rows)-1].Name)
	assert.Equal(t, "context", rows[len(rows)-1].Rank)
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
