package application

import (
	"fmt"
	"strings"

	"diario/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateKind checks if a value names a known tag kind.
// Returns a ValidationError if it does not.
func ValidateKind(fieldName, value string) error {
	if _, ok := domain.ParseItemKind(value); !ok {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown kind %q (expected food or symptom)", value),
		}
	}
	return nil
}
