package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "cardID" -> "card ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"boardID":      "board ID",
		"listID":       "list ID",
		"cardID":       "card ID",
		"boardPattern": "board pattern",
		"listPattern":  "list pattern",
		"cardPattern":  "card pattern",
		"labelName":    "label name",
		"objectType":   "object type",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateObjectType parses a user supplied object type.
// Returns a ValidationError wrapping ErrInvalidType if it is unknown.
func ValidateObjectType(fieldName, value string) (ObjectType, error) {
	if err := ValidateRequired(fieldName, value); err != nil {
		return ObjectTypeUnknown, err
	}
	t, err := ParseObjectType(value)
	if err != nil {
		return ObjectTypeUnknown, &ValidationError{
			Field:   fieldName,
			Message: err.Error(),
		}
	}
	return t, nil
}

// ValidatePatterns checks that a list pattern is only given with a board
// pattern and a card pattern only with a list pattern
func ValidatePatterns(board, list, card string) error {
	if list != "" && board == "" {
		return &ValidationError{
			Field:   "listPattern",
			Message: "a list pattern requires a board pattern",
		}
	}
	if card != "" && list == "" {
		return &ValidationError{
			Field:   "cardPattern",
			Message: "a card pattern requires a list pattern",
		}
	}
	return nil
}
