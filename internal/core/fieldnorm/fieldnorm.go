// Package fieldnorm turns raw date fragments (month names, 2-digit years, ordinal
// suffixes, zone tokens) into normalized calendar fields
package fieldnorm

import (
	"fmt"

	perr "datesieve/internal/platform/errors"
)

// Normalization stages reported in Failure.Stage
const (
	StageMonth = "month"
	StageYear  = "year"
	StageDay   = "day"
	StageWeek  = "week"
	StageTime  = "time"
	StageZone  = "zone"
)

// Failure names the fragment that could not be resolved and the stage that tried
type Failure struct {
	Stage    string
	Fragment string
}

// Error implements error
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: cannot resolve %q", f.Stage, f.Fragment)
}

// fail wraps a Failure with the normalization code so callers can branch on
// perr.IsCode or errors.As(*Failure)
func fail(stage, fragment string) error {
	err := perr.Wrap(&Failure{Stage: stage, Fragment: fragment}, perr.ErrorCodeNormalization, "normalization failed")
	return perr.WithField(err, stage)
}
