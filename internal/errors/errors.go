package errors

import (
	"errors"
	"fmt"
)

// Entity names used in error messages
const (
	EntityFranchise = "franchise"
	EntityBranch    = "branch"
	EntityProduct   = "product"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError.
// Only the entity kind is compared so that the sentinels below match any id.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// IntegrityError reports a dangling reference left behind by a cascade.
// It points at a broken transaction boundary, never at bad caller input.
type IntegrityError struct {
	Entity  string
	ID      string
	Message string
}

func (e *IntegrityError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("integrity violation on %s %s: %s", e.Entity, e.ID, e.Message)
	}
	return fmt.Sprintf("integrity violation on %s: %s", e.Entity, e.Message)
}

// Entity Not Found Errors
var (
	ErrFranchiseNotFound = &NotFoundError{Entity: EntityFranchise}
	ErrBranchNotFound    = &NotFoundError{Entity: EntityBranch}
	ErrProductNotFound   = &NotFoundError{Entity: EntityProduct}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsIntegrity checks if an error is an IntegrityError
func IsIntegrity(err error) bool {
	var integrityErr *IntegrityError
	return errors.As(err, &integrityErr)
}

// NewNotFoundError creates a new NotFoundError for the given entity and identifier
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(entity, id, message string) error {
	return &IntegrityError{Entity: entity, ID: id, Message: message}
}
