package tier

import (
	"errors"
	"fmt"

	"augur/internal/entropy/models"
	"augur/pkg/platform/sentinel"
)

// Category is the normalized failure taxonomy for a tier attempt.
type Category string

const (
	// CategoryTimeout means the tier did not answer within its deadline.
	CategoryTimeout Category = "timeout"
	// CategoryTransport covers connection refused, DNS and similar failures.
	CategoryTransport Category = "transport"
	// CategoryBadStatus means a non-200 response.
	CategoryBadStatus Category = "bad_status"
	// CategoryBadData means the body was not in the expected shape.
	CategoryBadData Category = "bad_data"
	// CategoryCircuitOpen means the tier was skipped by its circuit breaker.
	CategoryCircuitOpen Category = "circuit_open"
	// CategoryInternal is anything unclassified.
	CategoryInternal Category = "internal"
)

// Error is the typed failure outcome of Tier.Attempt.
type Error struct {
	Tier       models.Provenance
	Category   Category
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("tier %s [%s]: %s: %v", e.Tier, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("tier %s [%s]: %s", e.Tier, e.Category, e.Message)
}

// Unwrap exposes both the matching sentinel and the underlying cause, so
// errors.Is works for sentinel.ErrUnavailable / sentinel.ErrBadData as well
// as for the wrapped cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Underlying != nil {
		errs = append(errs, e.Underlying)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch e.Category {
	case CategoryBadStatus, CategoryBadData:
		return sentinel.ErrBadData
	default:
		return sentinel.ErrUnavailable
	}
}

// NewError creates a categorized tier failure.
func NewError(category Category, name models.Provenance, message string, underlying error) *Error {
	return &Error{
		Tier:       name,
		Category:   category,
		Message:    message,
		Underlying: underlying,
	}
}

// CategoryOf extracts the failure category from err.
func CategoryOf(err error) Category {
	var te *Error
	if errors.As(err, &te) {
		return te.Category
	}
	return CategoryInternal
}
