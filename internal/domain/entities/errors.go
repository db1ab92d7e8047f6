package entities

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the core. Callers match them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrBusinessRule = errors.New("business rule violation")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("concurrent modification")
)

// NotFoundError reports a missing entity, or one hidden by a visibility filter.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// BusinessRuleError reports a violated precondition. It is terminal: the caller
// has to correct the input and resubmit.
type BusinessRuleError struct {
	Reason string
}

func NewBusinessRule(reason string) *BusinessRuleError {
	return &BusinessRuleError{Reason: reason}
}

func (e *BusinessRuleError) Error() string { return e.Reason }

func (e *BusinessRuleError) Is(target error) bool { return target == ErrBusinessRule }

// ValidationError reports malformed input rejected before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

var (
	ErrInactiveCustomer          = NewBusinessRule("customer is inactive")
	ErrVehicleCustomerMismatch   = NewBusinessRule("vehicle does not belong to informed customer")
	ErrCompleteWithoutLineItems  = NewBusinessRule("cannot complete without registered services")
	ErrFinalValueRequired        = NewBusinessRule("final value required to complete")
	ErrDeleteCompletedOrder      = NewBusinessRule("cannot delete a completed order")
	ErrCancelledOrderImmutable   = NewBusinessRule("cancelled order cannot be changed")
	ErrCancelThroughUpdate       = NewBusinessRule("use the cancel operation to cancel an order")
	ErrInactiveLineItem          = NewBusinessRule("cannot update an inactive line item without reactivating it")
	ErrDocumentAlreadyRegistered = NewBusinessRule("document already registered")
	ErrPlateAlreadyRegistered    = NewBusinessRule("plate already registered")
	ErrVehicleInactiveCustomer   = NewBusinessRule("cannot register vehicle for inactive customer")
	ErrOrderNotPayable           = NewBusinessRule("only completed orders can be paid")
)
