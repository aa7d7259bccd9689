package application

import (
	"errors"
	"fmt"

	"tro/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = domain.ErrNoMatch
	ErrAmbiguous    = domain.ErrMultipleMatches
	ErrInvalidType  = errors.New("invalid object type")
	ErrMissingCard  = errors.New("unable to find card")
	ErrMissingBoard = errors.New("unable to retrieve board")
	ErrMissingList  = errors.New("unable to find list")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TypeError is returned when an object type name cannot be parsed
type TypeError struct {
	Value string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("unknown object type %q (expected board, list or card)", e.Value)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrInvalidType
}
