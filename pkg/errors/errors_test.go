package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEmptyPalette, "no valid colors in %s", "ocean.hex")

	if err.Code != ErrCodeEmptyPalette {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEmptyPalette)
	}

	if err.Message != "no valid colors in ocean.hex" {
		t.Errorf("Message = %v", err.Message)
	}

	expected := "EMPTY_PALETTE: no valid colors in ocean.hex"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeWriteFailed, cause, "write atlas")

	if err.Code != ErrCodeWriteFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeWriteFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrCodeEmptyPalette, "msg"),
			code: ErrCodeEmptyPalette,
			want: true,
		},
		{
			name: "different code",
			err:  New(ErrCodeEmptyPalette, "msg"),
			code: ErrCodeInvalidPath,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			code: ErrCodeEmptyPalette,
			want: false,
		},
		{
			name: "wrapped structured error",
			err:  Wrap(ErrCodeInvalidManifest, errors.New("cause"), "msg"),
			code: ErrCodeInvalidManifest,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeEncodeFailed, "msg")); got != ErrCodeEncodeFailed {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeEncodeFailed)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode of plain error = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeEmptyPalette, "no valid colors in ocean.hex")
	if got := UserMessage(err); got != "no valid colors in ocean.hex" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage of plain error = %q", got)
	}
}
