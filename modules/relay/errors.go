package relay

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig         = errors.New("relay: invalid config")
	ErrEmptyRequest          = errors.New("relay: no JSON data provided")
	ErrProviderNotConfigured = errors.New("relay: provider not configured")
	ErrRenderFailed          = errors.New("relay: failed to render message")
	ErrDispatchFailed        = errors.New("relay: dispatch failed")
)

// NotConfiguredError reports a provider that could not be initialised at
// startup. Its message is shown to API callers as is.
type NotConfiguredError struct {
	Provider string
	EnvVar   string
	Cause    error
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s not configured. Please check %s environment variable.", e.Provider, e.EnvVar)
}

func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrProviderNotConfigured
}

func (e *NotConfiguredError) Unwrap() error {
	return e.Cause
}
