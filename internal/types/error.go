package types

import "fmt"

// ValidationError reports a request value that violates a declared column
// bound or the item type vocabulary before it reaches the database.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// FieldTooLong builds the error for a value exceeding a column bound.
// Values over the bound are rejected outright, never truncated.
func FieldTooLong(field string, limit int) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("exceeds maximum length of %d characters", limit),
	}
}

// FieldRequired builds the error for a missing required value.
func FieldRequired(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

// UnknownItemType builds the error for an out-of-vocabulary item type name.
func UnknownItemType(field, value string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("unknown item type %q", value),
	}
}
