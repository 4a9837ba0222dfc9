package validator

import "errors"

// ErrValidationFailed can be joined with a *ValidationError when callers want
// a sentinel to match with errors.Is.
var ErrValidationFailed = errors.New("validation failed")
