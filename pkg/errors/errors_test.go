package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidVariant, "unknown variant: %s", "mars")

	if err.Code != ErrCodeInvalidVariant {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidVariant)
	}

	if err.Message != "unknown variant: mars" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown variant: mars")
	}

	expected := "INVALID_VARIANT: unknown variant: mars"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeExport, cause, "write document")

	if err.Code != ErrCodeExport {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeExport)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	want := "EXPORT_FAILED: write document: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidFormat, "test"),
			code:     ErrCodeInvalidFormat,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidFormat, "test"),
			code:     ErrCodeExport,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeExport, New(ErrCodeCapture, "inner"), "outer"),
			code:     ErrCodeExport,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHas(t *testing.T) {
	err := Wrap(ErrCodeExport, Wrap(ErrCodeDocument, New(ErrCodeCapture, "x"), "y"), "z")

	for _, code := range []Code{ErrCodeExport, ErrCodeDocument, ErrCodeCapture} {
		if !Has(err, code) {
			t.Errorf("Has(err, %s) = false, want true", code)
		}
	}
	if Has(err, ErrCodeInvalidVariant) {
		t.Error("Has(err, INVALID_VARIANT) = true, want false")
	}
	if Has(errors.New("plain"), ErrCodeExport) {
		t.Error("Has(plain, EXPORT_FAILED) = true, want false")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidConfig, "bad")); got != ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidConfig)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidStyle, "invalid style: %q", "neon")); got != `invalid style: "neon"` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain")
	}
}
