package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewFormatsCodeAndMessage(t *testing.T) {
	err := New(ErrCodeInvalidLength, "invalid length: %q", "12xy")

	if err.Code != ErrCodeInvalidLength {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidLength)
	}
	if err.Message != `invalid length: "12xy"` {
		t.Errorf("Message = %q", err.Message)
	}
	if got, want := err.Error(), `INVALID_LENGTH: invalid length: "12xy"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := Wrap(ErrCodeInvalidManifest, cause, "parse doc.toml")

	if got, want := err.Error(), "INVALID_MANIFEST: parse doc.toml: unexpected end of input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want the cause", errors.Unwrap(err))
	}
}

func TestIs(t *testing.T) {
	pageErr := New(ErrCodeInvalidPage, "page height must be positive")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", pageErr, ErrCodeInvalidPage, true},
		{"different code", pageErr, ErrCodeInvalidBlock, false},
		{"wrapped by fmt", fmt.Errorf("typeset: %w", pageErr), ErrCodeInvalidPage, true},
		{"outer code wins over inner", Wrap(ErrCodeInternal, pageErr, "typeset"), ErrCodeInternal, true},
		{"plain error", errors.New("boom"), ErrCodeInternal, false},
		{"nil error", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %v) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"coded error", New(ErrCodeDocumentNotFound, "no such document"), ErrCodeDocumentNotFound},
		{"coded error behind fmt", fmt.Errorf("api: %w", New(ErrCodeTimeout, "fetch timed out")), ErrCodeTimeout},
		{"plain error", errors.New("boom"), ""},
		{"nil error", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessageHidesCodeAndCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetch manifest")

	if got := UserMessage(err); got != "fetch manifest" {
		t.Errorf("UserMessage() = %q, want %q", got, "fetch manifest")
	}

	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain failure")
	}
}
