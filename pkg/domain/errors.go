// Package domain holds the error taxonomy shared by all services.
// Every business-rule violation is an *Error carrying a stable code and a
// human-readable description; the boundary layer maps codes to HTTP statuses.
package domain

import "errors"

// ErrorCode identifies one class of domain failure. Codes are part of the
// external contract and never change.
type ErrorCode string

const (
	CodeUserNotFound               ErrorCode = "USER_NOT_FOUND"
	CodeAccountNotFound            ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeUserAccountUnMatch         ErrorCode = "USER_ACCOUNT_UN_MATCH"
	CodeAccountAlreadyUnregistered ErrorCode = "ACCOUNT_ALREADY_UNREGISTERED"
	CodeBalanceNotEmpty            ErrorCode = "BALANCE_NOT_EMPTY"
	CodeMaxAccountPerUser10        ErrorCode = "MAX_ACCOUNT_PER_USER_10"
	CodeAmountExceedBalance        ErrorCode = "AMOUNT_EXCEED_BALANCE"
	CodeTransactionNotFound        ErrorCode = "TRANSACTION_NOT_FOUND"
	CodeTransactionAccountUnMatch  ErrorCode = "TRANSACTION_ACCOUNT_UN_MATCH"
	CodeCancelMustFully            ErrorCode = "CANCEL_MUST_FULLY"
	CodeTooOldOrderToCancel        ErrorCode = "TOO_OLD_ORDER_TO_CANCEL"
	CodeInvalidRequest             ErrorCode = "INVALID_REQUEST"
	CodeInternalServerError        ErrorCode = "INTERNAL_SERVER_ERROR"
)

var descriptions = map[ErrorCode]string{
	CodeUserNotFound:               "user not found",
	CodeAccountNotFound:            "account not found",
	CodeUserAccountUnMatch:         "user and account owner do not match",
	CodeAccountAlreadyUnregistered: "account is already unregistered",
	CodeBalanceNotEmpty:            "account balance is not empty",
	CodeMaxAccountPerUser10:        "a user may own at most 10 accounts",
	CodeAmountExceedBalance:        "amount exceeds account balance",
	CodeTransactionNotFound:        "transaction not found",
	CodeTransactionAccountUnMatch:  "transaction does not belong to this account",
	CodeCancelMustFully:            "cancellation must match the full transaction amount",
	CodeTooOldOrderToCancel:        "transaction is too old to cancel",
	CodeInvalidRequest:             "invalid request",
	CodeInternalServerError:        "internal server error",
}

// Description returns the human-readable text for the code.
func (c ErrorCode) Description() string {
	return descriptions[c]
}

// Error is the single domain error kind. Two Errors compare equal under
// errors.Is when their codes match, so the sentinels below work as targets
// even for errors rebuilt from a bare code.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is reports whether target is a domain Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewError builds an Error for the given code with its standard description.
func NewError(code ErrorCode) *Error {
	return &Error{Code: code, Message: code.Description()}
}

// Sentinel instances for every code in the taxonomy.
var (
	ErrUserNotFound               = NewError(CodeUserNotFound)
	ErrAccountNotFound            = NewError(CodeAccountNotFound)
	ErrUserAccountUnMatch         = NewError(CodeUserAccountUnMatch)
	ErrAccountAlreadyUnregistered = NewError(CodeAccountAlreadyUnregistered)
	ErrBalanceNotEmpty            = NewError(CodeBalanceNotEmpty)
	ErrMaxAccountPerUser10        = NewError(CodeMaxAccountPerUser10)
	ErrAmountExceedBalance        = NewError(CodeAmountExceedBalance)
	ErrTransactionNotFound        = NewError(CodeTransactionNotFound)
	ErrTransactionAccountUnMatch  = NewError(CodeTransactionAccountUnMatch)
	ErrCancelMustFully            = NewError(CodeCancelMustFully)
	ErrTooOldOrderToCancel        = NewError(CodeTooOldOrderToCancel)
	ErrInvalidRequest             = NewError(CodeInvalidRequest)
	ErrInternalServerError        = NewError(CodeInternalServerError)
)
