package observability

import "go.uber.org/zap"

// Field aliases so call sites don't need to import zap directly.
//
//nolint:gochecknoglobals // Function aliases, not mutable state
var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Bool     = zap.Bool
	Float64  = zap.Float64
	Duration = zap.Duration
	Time     = zap.Time
	Error    = zap.Error
)
