// Package schema validates and normalizes tool arguments before any remote
// call is made. Every function is pure: input in, cleaned value or
// *errors.ValidationError out.
package schema

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/olgasafonova/google-ads-mcp-server/internal/errors"
)

// CustomerIDLength is the number of digits in a Google Ads customer ID.
const CustomerIDLength = 10

var datePattern = regexp.MustCompile(`^\d{8}$`)

// CleanCustomerID removes formatting characters from a customer ID.
func CleanCustomerID(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
}

// CustomerID validates a customer ID, accepting the dashed display form
// ("123-456-7890") and returning the bare 10-digit form.
func CustomerID(raw string) (string, error) {
	cleaned := CleanCustomerID(raw)
	if n := utf8.RuneCountInString(cleaned); n != CustomerIDLength {
		return "", apperrors.NewValidationError("customer_id", raw,
			fmt.Sprintf("Customer ID must be %d digits, got %d", CustomerIDLength, n))
	}
	if !isAllDigits(cleaned) {
		return "", apperrors.NewValidationError("customer_id", raw, "Customer ID must contain only digits")
	}
	return cleaned, nil
}

// ID validates a required numeric entity ID (campaign, ad group, ...).
func ID(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", apperrors.NewValidationError(field, "", field+" is required")
	}
	if !isAllDigits(v) {
		return "", apperrors.NewValidationError(field, raw, field+" must contain only digits")
	}
	return v, nil
}

// OptionalID validates a numeric entity ID that may be omitted.
func OptionalID(field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return ID(field, raw)
}

// IDs validates a list of numeric IDs with a minimum count.
func IDs(field string, raw []string, minCount int) ([]string, error) {
	if err := Count(field, len(raw), minCount, -1); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		id, err := ID(field, r)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// Refs validates a list of opaque references (composite "a~b" keys or
// resource names) that only need to be non-empty.
func Refs(field string, raw []string, minCount int) ([]string, error) {
	if err := Count(field, len(raw), minCount, -1); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		v := strings.TrimSpace(r)
		if v == "" {
			return nil, apperrors.NewValidationError(field, "", field+" must not contain empty values")
		}
		out = append(out, v)
	}
	return out, nil
}

// Bounded resolves an optional integer against its default and closed
// interval [min, max]. A negative max means no upper bound.
func Bounded(field string, v *int, def, min, max int) (int, error) {
	if v == nil {
		return def, nil
	}
	n := *v
	if n < min || (max >= 0 && n > max) {
		return 0, apperrors.NewValidationError(field, fmt.Sprint(n), boundsMessage(field, min, max))
	}
	return n, nil
}

// Min checks a required integer lower bound.
func Min(field string, v int64, min int64) error {
	if v < min {
		return apperrors.NewValidationError(field, fmt.Sprint(v),
			fmt.Sprintf("%s must be at least %d", field, min))
	}
	return nil
}

// Range checks a required integer against [min, max].
func Range(field string, v, min, max int) error {
	if v < min || v > max {
		return apperrors.NewValidationError(field, fmt.Sprint(v), boundsMessage(field, min, max))
	}
	return nil
}

// Count checks a list length against [min, max]. A negative max means no
// upper bound.
func Count(field string, n, min, max int) error {
	if n < min {
		if min == 1 {
			return apperrors.NewValidationError(field, "", field+" must contain at least 1 item")
		}
		return apperrors.NewValidationError(field, "", fmt.Sprintf("%s must contain at least %d items", field, min))
	}
	if max >= 0 && n > max {
		return apperrors.NewValidationError(field, "", fmt.Sprintf("%s must contain at most %d items, got %d", field, max, n))
	}
	return nil
}

// Text checks a single string against a length range.
func Text(field, v string, min, max int) (string, error) {
	v = strings.TrimSpace(v)
	n := utf8.RuneCountInString(v)
	if n < min {
		if min == 1 {
			return "", apperrors.NewValidationError(field, "", field+" is required")
		}
		return "", apperrors.NewValidationError(field, v, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	if max >= 0 && n > max {
		return "", apperrors.NewValidationError(field, v, fmt.Sprintf("%s too long (max %d chars)", field, max))
	}
	return v, nil
}

// Texts checks a list of creative texts: item count within [minCount,
// maxCount] and every item at most maxLen characters. The label names the
// item kind in the error ("Headline", "Description").
func Texts(field, label string, items []string, maxLen, minCount, maxCount int) ([]string, error) {
	if err := Count(field, len(items), minCount, maxCount); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, apperrors.NewValidationError(field, "", field+" must not contain empty values")
		}
		if utf8.RuneCountInString(item) > maxLen {
			return nil, apperrors.NewValidationError(field, item,
				fmt.Sprintf("%s too long (max %d chars): %s", label, maxLen, item))
		}
		out = append(out, item)
	}
	return out, nil
}

// Date validates an optional YYYYMMDD date.
func Date(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	if !datePattern.MatchString(v) {
		return "", apperrors.NewValidationError(field, v, field+" must use YYYYMMDD format")
	}
	return v, nil
}

// Minute validates an ad schedule minute.
func Minute(field string, v int) error {
	switch v {
	case 0, 15, 30, 45:
		return nil
	}
	return apperrors.NewValidationError(field, fmt.Sprint(v), "Minutes must be 0, 15, 30, or 45")
}

func boundsMessage(field string, min, max int) string {
	if max < 0 {
		return fmt.Sprintf("%s must be at least %d", field, min)
	}
	return fmt.Sprintf("%s must be between %d and %d", field, min, max)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
