package api

import "errors"

// Error taxonomy toward the data service. Callers match with errors.Is;
// screens decide per class whether a failure is a transient notification
// (ErrUnavailable, ErrValidation) or a terminal view state (ErrAccessDenied,
// ErrNotFound on the owner dashboard).
var (
	ErrAuth         = errors.New("authentication failed")
	ErrAccessDenied = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation rejected")
	ErrUnavailable  = errors.New("service unavailable")
)
