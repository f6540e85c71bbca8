package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// ErrUnauthorized is returned when the caller has no valid session
var ErrUnauthorized = errors.New("unauthorized")

// Common error types
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// NewNotFound builds an ErrNotFound for the given entity
func NewNotFound(entity, id string) error {
	return &ErrNotFound{Entity: entity, ID: id}
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// PermissionError represents insufficient permissions for an operation
type PermissionError struct {
	Resource Resource `json:"resource"`
	Action   Action   `json:"action"`
	Message  string   `json:"message"`
}

// Error implements the error interface
func (e *PermissionError) Error() string {
	return e.Message
}

// NewPermissionError creates a new permission error
func NewPermissionError(resource Resource, action Action, message string) *PermissionError {
	return &PermissionError{
		Resource: resource,
		Action:   action,
		Message:  message,
	}
}

// ErrConflict covers capacity, uniqueness and dependency graph violations
type ErrConflict struct {
	Entity  string
	Message string
}

func (e *ErrConflict) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("conflict: %s", e.Message)
	}
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Message)
}

// NewConflict builds an ErrConflict
func NewConflict(entity, message string) error {
	return &ErrConflict{Entity: entity, Message: message}
}

// CouponRejectReason is the machine readable reason a coupon cannot be applied
type CouponRejectReason string

const (
	CouponInactive      CouponRejectReason = "inactive"
	CouponNotYetValid   CouponRejectReason = "not_yet_valid"
	CouponExpired       CouponRejectReason = "expired"
	CouponExhausted     CouponRejectReason = "exhausted"
	CouponUserLimit     CouponRejectReason = "user_limit"
	CouponNotApplicable CouponRejectReason = "not_applicable"
	CouponMinPurchase   CouponRejectReason = "min_purchase"
	CouponUnknown       CouponRejectReason = "not_found"
)

// ErrCouponRejected is a validation failure with a reason clients can switch on
type ErrCouponRejected struct {
	Reason CouponRejectReason
}

func (e *ErrCouponRejected) Error() string {
	return fmt.Sprintf("coupon rejected: %s", e.Reason)
}

// ErrRateLimited is returned when a caller exceeded its request budget
type ErrRateLimited struct {
	RetryAfter time.Duration
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry in %d seconds", e.RetryAfterSeconds())
}

// RetryAfterSeconds rounds the wait up to whole seconds, never below one
func (e *ErrRateLimited) RetryAfterSeconds() int {
	secs := int(e.RetryAfter / time.Second)
	if e.RetryAfter%time.Second != 0 {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	return secs
}

// IsNotFound reports whether err wraps an ErrNotFound
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a validation failure, coupon rejections included
func IsValidation(err error) bool {
	var ve ValidationError
	if errors.As(err, &ve) {
		return true
	}
	var cr *ErrCouponRejected
	return errors.As(err, &cr)
}

// IsConflict reports whether err wraps an ErrConflict
func IsConflict(err error) bool {
	var c *ErrConflict
	return errors.As(err, &c)
}

// uniqueViolation is the postgres SQLSTATE for unique_violation
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err wraps a postgres unique constraint failure
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
