package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidScenario, "route %q has no endpoints", "demo")
	want := `INVALID_SCENARIO: route "demo" has no endpoints`
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "routing failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if got := err.Error(); got != "INTERNAL_ERROR: routing failed: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeUnroutable, "no path")

	if !Is(err, ErrCodeUnroutable) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is should not match a different code")
	}
	if got := GetCode(err); got != ErrCodeUnroutable {
		t.Errorf("GetCode = %q; want UNROUTABLE", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode of plain error = %q; want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "margin is negative")
	if got := UserMessage(err); got != "margin is negative" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage of plain error = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{ErrCodeInvalidConfig, 400},
		{ErrCodeInvalidScenario, 400},
		{ErrCodeInvalidFormat, 400},
		{ErrCodeUnroutable, 422},
		{ErrCodeNotFound, 404},
		{ErrCodeInternal, 500},
		{Code("SOMETHING_ELSE"), 500},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.code); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d; want %d", tt.code, got, tt.want)
		}
	}
}
