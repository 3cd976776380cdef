// Package errors provides the error taxonomy shared by the Google Ads tools
// and the single formatter that turns any error into tool output text.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for presentation and metrics.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindAuth            Kind = "authentication"
	KindAuthz           Kind = "authorization"
	KindRateLimit       Kind = "rate_limit"
	KindInvalidCustomer Kind = "invalid_customer"
	KindBudgetConfig    Kind = "budget_config"
	KindGeneric         Kind = "remote"
	KindUnexpected      Kind = "unexpected"
)

// NotFoundError indicates that a lookup which a mutation depends on found nothing.
type NotFoundError struct {
	EntityType string // "Campaign", "Ad group", ...
	Identifier string
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s %s not found", e.EntityType, e.Identifier)
	}
	return fmt.Sprintf("%s not found", e.Identifier)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entityType, identifier string) *NotFoundError {
	return &NotFoundError{
		EntityType: entityType,
		Identifier: identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message

	// Rule marks a cross-field rule (level/companion id, "at least one of")
	// rather than a single-field check.
	Rule bool
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewRuleError creates a ValidationError for a cross-field rule.
func NewRuleError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Rule:    true,
	}
}

// PartialError reports a multi-step write that failed after earlier steps
// had already been applied. Completed describes what was applied.
type PartialError struct {
	Completed string
	Err       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%v (already applied: %s)", e.Err, e.Completed)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRemote returns true if the error came back from the Google Ads API.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// KindOf returns the classification of err.
func KindOf(err error) Kind {
	var (
		ve *ValidationError
		nf *NotFoundError
		re *RemoteError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &nf):
		return KindNotFound
	case errors.As(err, &re):
		return re.Kind()
	default:
		return KindUnexpected
	}
}
