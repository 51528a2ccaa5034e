package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidCredentials  = 4011
	CodeInvalidScore        = 4002
	CodeUserNotFound        = 4040
	CodeInvalidSessionIndex = 4041
	CodeDuplicateEmail      = 4091
	CodeConstraintViolation = 4005

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeStoreUnavailable = 5030
	CodePoolNotGenerated = 5031
)

// Base error types
var (
	// ErrDuplicateEmail is returned when registering an email that is already taken
	ErrDuplicateEmail = errors.New("email exists")

	// ErrInvalidCredentials is returned when the email/password pair does not match a user
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSessionIndex is returned when a session number is outside the generated partition
	ErrInvalidSessionIndex = errors.New("invalid session index")

	// ErrInvalidSessionSize is returned when the partition batch size is not positive
	ErrInvalidSessionSize = errors.New("session size must be positive")

	// ErrInvalidScore is returned when a completion reports an impossible score
	ErrInvalidScore = errors.New("invalid score")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrPoolNotGenerated is returned when the question pool has not been persisted yet
	ErrPoolNotGenerated = errors.New("question pool not generated")

	// ErrPoolAlreadyExists is returned when saving a pool over an existing one
	ErrPoolAlreadyExists = errors.New("question pool already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStoreIO is returned when the backing file cannot be read or written
	ErrStoreIO = errors.New("store I/O error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidScore):
		return CodeInvalidScore
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrInvalidSessionIndex):
		return CodeInvalidSessionIndex
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrPoolNotGenerated):
		return CodePoolNotGenerated
	case errors.Is(err, ErrStoreIO), errors.Is(err, ErrDatabaseConnection):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// SessionError represents an error related to a quiz session request
type SessionError struct {
	SessionNumber int
	SessionCount  int
	Email         string
	Err           error
}

// Error implements the error interface for SessionError
func (e *SessionError) Error() string {
	return fmt.Sprintf("session %d (of %d) failed for %q: %v",
		e.SessionNumber, e.SessionCount, e.Email, e.Err)
}

// Unwrap returns the underlying error
func (e *SessionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SessionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "session_error",
		"session_number": e.SessionNumber,
		"session_count":  e.SessionCount,
		"email":          e.Email,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewSessionError creates a detailed session error
func NewSessionError(sessionNumber, sessionCount int, email string, err error) error {
	return &SessionError{
		SessionNumber: sessionNumber,
		SessionCount:  sessionCount,
		Email:         email,
		Err:           err,
	}
}

// StoreError wraps a failure of the backing store with the operation that caused it
type StoreError struct {
	Operation string
	Path      string
	Err       error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed (%s): %v", e.Operation, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports ErrStoreIO for every store failure
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreIO
}

// NewStoreError creates a store error for the given operation and file path
func NewStoreError(operation, path string, err error) error {
	return &StoreError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// IsDuplicateEmailError checks if the error is a duplicate registration error
func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

// IsInvalidCredentialsError checks if the error is a login mismatch
func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsInvalidSessionIndexError checks if the error is an out-of-range session request
func IsInvalidSessionIndexError(err error) bool {
	return errors.Is(err, ErrInvalidSessionIndex)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInvalidSessionIndex) ||
		errors.Is(err, ErrPoolNotGenerated)
}
