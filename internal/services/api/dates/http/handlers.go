// Package http provides http transport for dates
package http

import (
	stdhttp "net/http"

	"datesieve/internal/modkit/httpkit"
	"datesieve/internal/services/api/dates/domain"
	svc "datesieve/internal/services/api/dates/service"
)

// Register mounts dates endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// catalog
	httpkit.Get(r, "/formats", h.formats)

	// scanning
	httpkit.PostJSON[domain.FindInput](r, "/find", h.find)
	httpkit.PostJSON[domain.FirstInput](r, "/first", h.first)
	httpkit.PostJSON[domain.BatchInput](r, "/batch", h.batch)

	// whole-text parsing
	httpkit.PostJSON[domain.ParseInput](r, "/parse", h.parse)
	httpkit.PostJSON[domain.RelativeInput](r, "/relative", h.relative)
	httpkit.PostJSON[domain.IntervalInput](r, "/interval", h.interval)
	httpkit.PostJSON[domain.DiffInput](r, "/diff", h.diff)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /dates/formats Dates datesFormats
// @Summary Date format catalog in scan order
// @Tags Dates
// @Produce json
// @Success 200 {array} domain.FormatRow "ok"
// @Router /dates/formats [get]
func (h *handlers) formats(r *stdhttp.Request) (any, error) {
	return h.svc.Formats(r.Context())
}

// swagger:route POST /dates/find Dates datesFind
// @Summary Find every date in a text
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.FindInput true "Text"
// @Success 200 {array} domain.Date "ok"
// @Failure 400 {object} perr.Wire "unknown format"
// @Router /dates/find [post]
func (h *handlers) find(r *stdhttp.Request, in domain.FindInput) (any, error) {
	return h.svc.Find(r.Context(), in)
}

// swagger:route POST /dates/first Dates datesFirst
// @Summary Most specific date in a text
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.FirstInput true "Text"
// @Success 200 {object} domain.Date "ok"
// @Failure 404 {object} perr.Wire "no date"
// @Router /dates/first [post]
func (h *handlers) first(r *stdhttp.Request, in domain.FirstInput) (any, error) {
	return h.svc.First(r.Context(), in)
}

// swagger:route POST /dates/parse Dates datesParse
// @Summary Parse a text that is exactly one date
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Text"
// @Success 200 {object} domain.Date "ok"
// @Failure 404 {object} perr.Wire "no format matches"
// @Failure 422 {object} perr.Wire "matched but not a valid date"
// @Router /dates/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}

// swagger:route POST /dates/relative Dates datesRelative
// @Summary Resolve "N units ago"
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.RelativeInput true "Phrase and reference"
// @Success 200 {object} domain.Date "ok"
// @Failure 404 {object} perr.Wire "no phrase"
// @Router /dates/relative [post]
func (h *handlers) relative(r *stdhttp.Request, in domain.RelativeInput) (any, error) {
	return h.svc.Relative(r.Context(), in)
}

// swagger:route POST /dates/interval Dates datesInterval
// @Summary Sum a duration phrase
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.IntervalInput true "Phrase"
// @Success 200 {object} domain.IntervalOutput "ok"
// @Router /dates/interval [post]
func (h *handlers) interval(r *stdhttp.Request, in domain.IntervalInput) (any, error) {
	return h.svc.Interval(r.Context(), in)
}

// swagger:route POST /dates/diff Dates datesDiff
// @Summary Difference between two dates at their common precision
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.DiffInput true "Dates"
// @Success 200 {object} domain.DiffOutput "ok"
// @Router /dates/diff [post]
func (h *handlers) diff(r *stdhttp.Request, in domain.DiffInput) (any, error) {
	return h.svc.Diff(r.Context(), in)
}

// swagger:route POST /dates/batch Dates datesBatch
// @Summary Find dates in many documents
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Documents"
// @Success 200 {array} domain.BatchResult "ok"
// @Router /dates/batch [post]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.Batch(r.Context(), in)
}
