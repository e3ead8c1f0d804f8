// Package errors provides custom error types for the Tally engine.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Account errors.
var (
	ErrAccountNotFound   = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrInsufficientFunds = &AppError{Code: "INSUFFICIENT_FUNDS", Message: "Insufficient account balance", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Goal errors.
var (
	ErrGoalNotFound = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
)

// Bill errors.
var (
	ErrBillNotFound            = &AppError{Code: "BILL_NOT_FOUND", Message: "Bill not found", StatusCode: http.StatusNotFound}
	ErrBillParticipantNotFound = &AppError{Code: "BILL_PARTICIPANT_NOT_FOUND", Message: "Bill participant not found", StatusCode: http.StatusNotFound}
	ErrBillNotPending          = &AppError{Code: "BILL_NOT_PENDING", Message: "Bill is no longer pending", StatusCode: http.StatusConflict}
	ErrSplitMismatch           = &AppError{Code: "SPLIT_MISMATCH", Message: "Participant amounts do not add up to the bill total", StatusCode: http.StatusBadRequest}
)

// Debt errors.
var (
	ErrDebtNotFound        = &AppError{Code: "DEBT_NOT_FOUND", Message: "Debt not found", StatusCode: http.StatusNotFound}
	ErrDebtPaymentNotFound = &AppError{Code: "DEBT_PAYMENT_NOT_FOUND", Message: "Debt payment not found", StatusCode: http.StatusNotFound}
	ErrOverpayment         = &AppError{Code: "OVERPAYMENT", Message: "Payment would exceed the debt amount", StatusCode: http.StatusBadRequest}
)

// PartialFailure reports a multi-step mutation that failed after one or more
// earlier steps had already committed. The store offers no cross-record
// atomicity, so the committed steps cannot be rolled back; the caller must
// know exactly which steps went through so the inconsistency can be
// compensated or reconciled manually.
type PartialFailure struct {
	Op        string   `json:"op"`        // the mutation that was attempted
	Completed []string `json:"completed"` // steps that committed before the failure
	Failed    string   `json:"failed"`    // the step that failed
	Err       error    `json:"-"`
}

// Error implements the error interface.
func (e *PartialFailure) Error() string {
	return fmt.Sprintf("%s: step %q failed after [%s] committed: %v",
		e.Op, e.Failed, strings.Join(e.Completed, ", "), e.Err)
}

// Unwrap returns the underlying step error.
func (e *PartialFailure) Unwrap() error { return e.Err }

// NewPartialFailure constructs a PartialFailure for the given operation.
func NewPartialFailure(op string, completed []string, failed string, err error) *PartialFailure {
	return &PartialFailure{Op: op, Completed: completed, Failed: failed, Err: err}
}
