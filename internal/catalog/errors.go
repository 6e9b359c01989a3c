package catalog

import (
	"errors"
	"fmt"

	"pokedex/pkg/platform/sentinel"
)

// ErrorCategory is the normalized failure taxonomy for catalog fetches.
type ErrorCategory string

const (
	// ErrorNotFound means the catalog answered with a non-success status
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorProviderOutage means the request failed in transport or with a 5xx
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorTimeout means the request deadline passed
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData means a 200 response could not be decoded
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorCircuitOpen means the breaker rejected the call without a request
	ErrorCircuitOpen ErrorCategory = "circuit_open"
)

// FetchError wraps a failed fetch with its category and the resource it targeted.
type FetchError struct {
	Category   ErrorCategory
	Resource   string
	StatusCode int
	Underlying error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("catalog %s [%s]", e.Resource, e.Category)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Underlying
}

// Is maps categories onto the infrastructure sentinels so callers can use
// errors.Is(err, sentinel.ErrNotFound).
func (e *FetchError) Is(target error) bool {
	switch target {
	case sentinel.ErrNotFound:
		return e.Category == ErrorNotFound
	case sentinel.ErrUnavailable:
		return e.Category != ErrorNotFound
	}
	return false
}

func newFetchError(category ErrorCategory, resource string, status int, underlying error) *FetchError {
	return &FetchError{
		Category:   category,
		Resource:   resource,
		StatusCode: status,
		Underlying: underlying,
	}
}

// CategoryOf extracts the category from err, defaulting to provider outage.
func CategoryOf(err error) ErrorCategory {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Category
	}
	return ErrorProviderOutage
}
