package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	Name   string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
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

// InsufficientStockError represents a borrow request exceeding the
// quantity-on-hand. Carries enough context for an actionable client message.
type InsufficientStockError struct {
	Component string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.Component, e.Requested, e.Available)
}

// ReturnExceedsOutstandingError represents a return request larger than the
// component's borrowed-but-not-yet-returned quantity.
type ReturnExceedsOutstandingError struct {
	Component   string
	Requested   int
	Outstanding int
}

func (e *ReturnExceedsOutstandingError) Error() string {
	return fmt.Sprintf("return exceeds outstanding for %q: requested %d, outstanding %d",
		e.Component, e.Requested, e.Outstanding)
}

// StorageError represents a persistence-layer fault. Transient; safe to retry
// with backoff.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// PartialFailureError represents a stock adjustment and its ledger record
// diverging: one write applied, the other did not. Surfaced distinctly so
// operators can reconcile from the transaction log.
type PartialFailureError struct {
	Component string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure for %q: stock and ledger may have diverged: %v", e.Component, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrComponentNotFound   = &NotFoundError{Entity: "component"}
	ErrTransactionNotFound = &NotFoundError{Entity: "transaction"}
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

// IsInsufficientStock checks if an error is an InsufficientStockError
func IsInsufficientStock(err error) bool {
	var stockErr *InsufficientStockError
	return errors.As(err, &stockErr)
}

// IsReturnExceedsOutstanding checks if an error is a ReturnExceedsOutstandingError
func IsReturnExceedsOutstanding(err error) bool {
	var returnErr *ReturnExceedsOutstandingError
	return errors.As(err, &returnErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsPartialFailure checks if an error is a PartialFailureError
func IsPartialFailure(err error) bool {
	var partialErr *PartialFailureError
	return errors.As(err, &partialErr)
}

// NewNotFoundError creates a new NotFoundError for a named entity
func NewNotFoundError(entity, name string) error {
	return &NotFoundError{Entity: entity, Name: name}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStorageError wraps a persistence fault with the failed operation
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
