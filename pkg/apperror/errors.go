package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Input Validation (VAL) ----

// Validation returns a generic field-format validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidPhoneNumber() *AppError {
	return New("VAL_002", "Phone number must contain between 9 and 10 digits", http.StatusBadRequest)
}

func ErrInvalidDocumentNumber() *AppError {
	return New("VAL_003", "Document number must contain between 8 and 12 digits", http.StatusBadRequest)
}

func ErrInvalidImei() *AppError {
	return New("VAL_004", "IMEI must contain exactly 15 digits", http.StatusBadRequest)
}

func ErrInvalidEmail() *AppError {
	return New("VAL_005", "Invalid email format", http.StatusBadRequest)
}

// ---- Wallet Lifecycle (WAL) ----

func ErrDuplicateField(field string) *AppError {
	return New("WAL_001", fmt.Sprintf("%s is already registered", field), http.StatusConflict)
}

// ErrWalletNotFound names which side is missing when side is non-empty
// ("Sender", "Receiver").
func ErrWalletNotFound(side string) *AppError {
	if side == "" {
		return New("WAL_002", "Wallet not found", http.StatusNotFound)
	}
	return New("WAL_002", fmt.Sprintf("%s wallet not found", side), http.StatusNotFound)
}

// ---- Transaction Business Logic (TXN) ----

func ErrInsufficientFunds() *AppError {
	return New("TXN_001", "Insufficient funds for transaction", http.StatusPaymentRequired)
}

func ErrSameParties() *AppError {
	return New("TXN_002", "Sender and receiver phone numbers must be different", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("TXN_003", "Amount must be a positive decimal", http.StatusBadRequest)
}

func ErrTimeout() *AppError {
	return New("TXN_004", "Operation timed out", http.StatusGatewayTimeout)
}

// ---- Authentication & Authorization (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrMissingToken() *AppError {
	return New("AUTH_002", "Missing or invalid token", http.StatusUnauthorized)
}

func ErrWrongOwner(action string) *AppError {
	return New("AUTH_003", fmt.Sprintf("You can only %s from your registered phone number", action), http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrPersistence(err error) *AppError {
	return Wrap("SYS_001", "Internal storage error", http.StatusInternalServerError, err)
}

func ErrPublish(err error) *AppError {
	return Wrap("SYS_002", "Failed to publish event", http.StatusInternalServerError, err)
}

// InternalError wraps an unclassified internal error.
func InternalError(err error) *AppError {
	return Wrap("SYS_000", "Internal server error", http.StatusInternalServerError, err)
}
