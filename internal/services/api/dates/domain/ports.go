package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Find(ctx context.Context, in FindInput) ([]Date, error)
	First(ctx context.Context, in FirstInput) (Date, error)
	Parse(ctx context.Context, in ParseInput) (Date, error)
	Relative(ctx context.Context, in RelativeInput) (Date, error)
	Interval(ctx context.Context, in IntervalInput) (IntervalOutput, error)
	Diff(ctx context.Context, in DiffInput) (DiffOutput, error)
	Batch(ctx context.Context, in BatchInput) ([]BatchResult, error)
	Formats(ctx context.Context) ([]FormatRow, error)
}
