package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks caller mistakes: missing or non-finite coordinates,
// malformed venue ids. Wrap it with context via fmt.Errorf and %w.
var ErrInvalidInput = errors.New("invalid input")

// ErrMissingAPIKey is returned before any network call when the provider
// credential is absent.
var ErrMissingAPIKey = errors.New("missing places api key")

// UpstreamTransportError reports a failed HTTP exchange with the provider:
// connection errors, timeouts, or a non-2xx response.
type UpstreamTransportError struct {
	Op  string
	Err error
}

func (e *UpstreamTransportError) Error() string {
	return fmt.Sprintf("places %s: %v", e.Op, e.Err)
}

func (e *UpstreamTransportError) Unwrap() error {
	return e.Err
}

// UpstreamStatusError reports a terminal provider status other than OK or
// ZERO_RESULTS, e.g. OVER_QUERY_LIMIT or REQUEST_DENIED.
type UpstreamStatusError struct {
	ProviderStatus string
	Message        string
}

func (e *UpstreamStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("places status %s", e.ProviderStatus)
	}
	return fmt.Sprintf("places status %s: %s", e.ProviderStatus, e.Message)
}
