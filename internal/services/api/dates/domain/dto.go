// Package domain holds DTOs for dates http and service contracts
package domain

// Date is one extracted or parsed date on the wire
// Unset calendar fields are omitted; normalized keeps the precision of the match
type Date struct {
	Text       string `json:"text,omitempty"       example:"Tue, 02 Jul 2010 19:07:49 GMT"`
	Format     string `json:"format,omitempty"     example:"RFC_1123"`
	Normalized string `json:"normalized"           example:"2010-07-02 19:07:49"`
	Exactness  string `json:"exactness"            example:"SECOND"`
	Year       *int   `json:"year,omitempty"       example:"2010"`
	Month      *int   `json:"month,omitempty"      example:"7"`
	Day        *int   `json:"day,omitempty"        example:"2"`
	Hour       *int   `json:"hour,omitempty"       example:"19"`
	Minute     *int   `json:"minute,omitempty"     example:"7"`
	Second     *int   `json:"second,omitempty"     example:"49"`
	Zone       string `json:"zone,omitempty"       example:"GMT"`
	UnixMs     *int64 `json:"unix_ms,omitempty"    example:"1278097669000"`
}

// FindInput scans text for every date, optionally limited to named formats
type FindInput struct {
	Text    string   `json:"text"              validate:"required"                example:"posted 2010-07-02, updated 3 Aug 2010"`
	Formats []string `json:"formats,omitempty" validate:"omitempty,date_formats" example:"ISO8601_YMD"`
}

// FirstInput asks for the single most specific date in text
type FirstInput struct {
	Text   string `json:"text"             validate:"required"               example:"Last-Modified: Tue, 02 Jul 2010 19:07:49 GMT"`
	Format string `json:"format,omitempty" validate:"omitempty,date_format" example:"RFC_1123"`
}

// ParseInput treats the whole text as one date
type ParseInput struct {
	Text   string `json:"text"             validate:"required"               example:"2010-07-02T19:07:49+02:00"`
	Format string `json:"format,omitempty" validate:"omitempty,date_format" example:"ISO8601_YMD_T"`
}

// RelativeInput resolves "N units ago" against a reference
// Reference accepts any common date string, ReferenceMs is epoch milliseconds;
// neither means now
type RelativeInput struct {
	Text        string `json:"text"                   validate:"required"           example:"4 months ago"`
	Reference   string `json:"reference,omitempty"    validate:"omitempty,max=64"   example:"2010-12-01T11:00:00Z"`
	ReferenceMs *int64 `json:"reference_ms,omitempty" validate:"omitempty,gte=0"    example:"1291201200000"`
}

// IntervalInput sums a duration phrase
type IntervalInput struct {
	Text string `json:"text" validate:"required" example:"4 hrs 20 mins"`
}

// IntervalOutput is the parsed duration
type IntervalOutput struct {
	Seconds  float64 `json:"seconds"  example:"15600"`
	Duration string  `json:"duration" example:"4h20m0s"`
}

// DiffInput compares two dates at their common precision
type DiffInput struct {
	A    string `json:"a"              validate:"required"                                example:"2010-07-02 19:07"`
	B    string `json:"b"              validate:"required"                                example:"2010-07-01"`
	Unit string `json:"unit,omitempty" validate:"omitempty,oneof=second minute hour day" example:"day"`
}

// DiffOutput is the absolute difference in Unit, rounded to two decimals
type DiffOutput struct {
	A         Date    `json:"a"`
	B         Date    `json:"b"`
	Unit      string  `json:"unit"      example:"day"`
	Exactness string  `json:"exactness" example:"DAY"`
	Value     float64 `json:"value"     example:"1"`
}

// BatchDocument is one text in a batch; a missing id is assigned
type BatchDocument struct {
	ID   string `json:"id,omitempty" validate:"omitempty,max=128" example:"doc-1"`
	Text string `json:"text"                                      example:"published 2011-04-18"`
}

// BatchInput scans many documents in one call
type BatchInput struct {
	Documents []BatchDocument `json:"documents" validate:"required,min=1,dive"`
	Formats   []string        `json:"formats,omitempty" validate:"omitempty,date_formats" example:"ISO8601_YMD"`
}

// BatchResult holds the dates of one document, in input order
type BatchResult struct {
	ID    string `json:"id"    example:"doc-1"`
	Dates []Date `json:"dates"`
}

// FormatRow describes one catalog entry, in catalog order
type FormatRow struct {
	Name   string `json:"name"   example:"ISO8601_YMD"`
	Layout string `json:"layout" example:"YYYY-MM-DD"`
	Rank   string `json:"rank"   example:"date"`
}
