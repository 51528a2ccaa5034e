package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrDuplicateEmail.Error() != "email exists" {
		t.Errorf("ErrDuplicateEmail has unexpected message: %s", ErrDuplicateEmail.Error())
	}
	if ErrInvalidCredentials.Error() != "invalid credentials" {
		t.Errorf("ErrInvalidCredentials has unexpected message: %s", ErrInvalidCredentials.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidCredentials", ErrInvalidCredentials, 4011},
		{"InvalidScore", ErrInvalidScore, 4002},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"InvalidSessionIndex", ErrInvalidSessionIndex, 4041},
		{"DuplicateEmail", ErrDuplicateEmail, 4091},
		{"PoolNotGenerated", ErrPoolNotGenerated, 5031},
		{"StoreIO", ErrStoreIO, 5030},
		{"DatabaseConnection", ErrDatabaseConnection, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrDuplicateEmail), 4091},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestSessionError(t *testing.T) {
	err := NewSessionError(7, 5, "a@b.com", ErrInvalidSessionIndex)

	expectedMsg := `session 7 (of 5) failed for "a@b.com": invalid session index`
	if err.Error() != expectedMsg {
		t.Errorf("SessionError.Error() = %s, want %s", err.Error(), expectedMsg)
	}

	if !errors.Is(err, ErrInvalidSessionIndex) {
		t.Error("SessionError should unwrap to ErrInvalidSessionIndex")
	}
	if !IsInvalidSessionIndexError(err) {
		t.Error("IsInvalidSessionIndexError should be true for wrapped session error")
	}

	var sessionErr *SessionError
	if !errors.As(err, &sessionErr) {
		t.Fatal("errors.As should find *SessionError")
	}

	fields := sessionErr.LogFields()
	if fields["error_type"] != "session_error" {
		t.Errorf("LogFields error_type = %v, want session_error", fields["error_type"])
	}
	if fields["session_number"] != 7 {
		t.Errorf("LogFields session_number = %v, want 7", fields["session_number"])
	}
	if fields["error_code"] != CodeInvalidSessionIndex {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeInvalidSessionIndex)
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewStoreError("write", "/tmp/db.json", cause)

	if !errors.Is(err, ErrStoreIO) {
		t.Error("StoreError should match ErrStoreIO")
	}
	if !errors.Is(err, cause) {
		t.Error("StoreError should unwrap to its cause")
	}
	if ErrorCode(err) != CodeStoreUnavailable {
		t.Errorf("ErrorCode(StoreError) = %d, want %d", ErrorCode(err), CodeStoreUnavailable)
	}
}

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should be a not found error")
	}
	if !IsNotFoundError(fmt.Errorf("ctx: %w", ErrPoolNotGenerated)) {
		t.Error("wrapped ErrPoolNotGenerated should be a not found error")
	}
	if IsNotFoundError(ErrDuplicateEmail) {
		t.Error("ErrDuplicateEmail should not be a not found error")
	}
	if !IsDuplicateEmailError(ErrDuplicateEmail) {
		t.Error("IsDuplicateEmailError should match ErrDuplicateEmail")
	}
	if !IsInvalidCredentialsError(ErrInvalidCredentials) {
		t.Error("IsInvalidCredentialsError should match ErrInvalidCredentials")
	}
}
