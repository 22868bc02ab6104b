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

// ---- Unit Lifecycle (UNIT) ----

func ErrDuplicateUnit(unitID string) *AppError {
	return New("UNIT_001", fmt.Sprintf("Blood unit %s already registered", unitID), http.StatusConflict)
}

func ErrUnitNotFound(unitID string) *AppError {
	return New("UNIT_002", fmt.Sprintf("Blood unit %s not found", unitID), http.StatusNotFound)
}

// ErrInvalidTransition reports a status change not allowed from the unit's
// current status, including losing a race against a concurrent transition.
func ErrInvalidTransition(unitID string, from, to string) *AppError {
	return New("UNIT_003", fmt.Sprintf("Blood unit %s cannot move from %s to %s", unitID, from, to), http.StatusConflict)
}

func ErrUnknownBank(bankID string) *AppError {
	return New("UNIT_004", fmt.Sprintf("Blood bank %s is not registered", bankID), http.StatusUnprocessableEntity)
}

// ---- Test Panels & Compatibility (TEST) ----

func ErrPanelValidation(field string, reason string) *AppError {
	return New("TEST_001", fmt.Sprintf("Invalid test panel: field %q %s", field, reason), http.StatusBadRequest)
}

func ErrInvalidBloodType(value string) *AppError {
	return New("TEST_002", fmt.Sprintf("Invalid blood type %q", value), http.StatusBadRequest)
}

func ErrArtifactNotFound(contentID string) *AppError {
	return New("TEST_003", fmt.Sprintf("Test artifact %s not found", contentID), http.StatusNotFound)
}

// ---- Bank & Hospital Accounts (BANK) ----

func ErrLicenseExists() *AppError {
	return New("BANK_001", "License number already registered", http.StatusConflict)
}

func ErrBankNotFound() *AppError {
	return New("BANK_002", "Blood bank not found", http.StatusNotFound)
}

func ErrHospitalNotFound() *AppError {
	return New("BANK_003", "Hospital not found", http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_003", "Caller is not authorized for this resource", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorageTimeout(err error) *AppError {
	return Wrap("SYS_001", "Storage operation timed out", http.StatusServiceUnavailable, err)
}

func ErrStorageUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Storage backend unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_003 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_003", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-shape validation error.
func Validation(message string) *AppError {
	return New("TEST_001", message, http.StatusBadRequest)
}
