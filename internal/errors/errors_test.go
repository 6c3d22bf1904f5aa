package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Severity Tests
// -----------------------------------------------------------------------------

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// InputShapeError Tests
// -----------------------------------------------------------------------------

func TestNewInputShapeError(t *testing.T) {
	err := NewInputShapeError("water", "3 numbers: Y k n")

	if err.Algorithm != "water" {
		t.Errorf("Algorithm = %q, want %q", err.Algorithm, "water")
	}
	if err.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityWarning)
	}
	if !err.IsUserFacing() {
		t.Error("IsUserFacing() = false, want true")
	}
	if err.Got != -1 {
		t.Errorf("Got = %d, want -1 before WithGot", err.Got)
	}
}

func TestInputShapeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *InputShapeError
		want string
	}{
		{
			name: "algorithm only",
			err:  NewInputShapeError("water", "3 numbers: Y k n"),
			want: "input error [algorithm=water]: expected 3 numbers: Y k n",
		},
		{
			name: "with count",
			err:  NewInputShapeError("poker", "10 card values").WithGot(4),
			want: "input error [algorithm=poker, got=4]: expected 10 card values",
		},
		{
			name: "with cause",
			err:  NewInputShapeError("", "a count").WithCause(fmt.Errorf("boom")),
			want: "input error: expected a count: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputShapeError_Is(t *testing.T) {
	err := NewInputShapeError("findthree", "10 numbers")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("InputShapeError should match ErrInvalidInput")
	}
	if !errors.Is(err, &InputShapeError{}) {
		t.Error("InputShapeError should match its own type")
	}
	if errors.Is(err, ErrSearchExhausted) {
		t.Error("InputShapeError should not match ErrSearchExhausted")
	}

	wrapped := Wrap(err, "simulate")
	var shape *InputShapeError
	if !errors.As(wrapped, &shape) {
		t.Fatal("errors.As should find the InputShapeError through Wrap")
	}
	if shape.Algorithm != "findthree" {
		t.Errorf("Algorithm = %q, want %q", shape.Algorithm, "findthree")
	}
}

// -----------------------------------------------------------------------------
// SearchExhaustedError Tests
// -----------------------------------------------------------------------------

func TestSearchExhaustedError(t *testing.T) {
	err := NewSearchExhaustedError("queue", 10).WithLastValue(70)

	want := "search error [algorithm=queue]: no answer within 10 iterations"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.LastValue != 70 {
		t.Errorf("LastValue = %d, want 70", err.LastValue)
	}
	if !errors.Is(err, ErrSearchExhausted) {
		t.Error("SearchExhaustedError should match ErrSearchExhausted")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Error("SearchExhaustedError should not match ErrInvalidInput")
	}
	if err.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityError)
	}
}

// -----------------------------------------------------------------------------
// Semantic Error Tests
// -----------------------------------------------------------------------------

func TestNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewNotFoundError("algorithm", "bubble")
		if err.Error() != "algorithm 'bubble' not found" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("with cause", func(t *testing.T) {
		err := NewNotFoundError("algorithm", "bubble").WithCause(ErrUnknownAlgorithm)
		if err.Error() != "algorithm 'bubble' not found: unknown algorithm" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, ErrUnknownAlgorithm) {
			t.Error("should match ErrUnknownAlgorithm through cause")
		}
		if !errors.Is(err, &NotFoundError{}) {
			t.Error("should match its own type")
		}
	})
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("not an integer"),
			want: "validation error: not an integer",
		},
		{
			name: "field and value",
			err:  NewValidationError("not an integer").WithField("token").WithValue("abc"),
			want: "validation error [field=token, value=abc]: not an integer",
		},
		{
			name: "with cause",
			err:  NewValidationError("bad").WithCause(fmt.Errorf("inner")),
			want: "validation error: bad: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := NewValidationError("bad token")
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !errors.Is(err, &ValidationError{}) {
		t.Error("ValidationError should match its own type")
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", New("plain"), false},
		{"input shape", NewInputShapeError("water", "3 numbers"), true},
		{"wrapped validation", Wrap(NewValidationError("x"), "ctx"), true},
		{"search exhausted", NewSearchExhaustedError("queue", 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{"nil", nil, SeverityDebug},
		{"plain", New("plain"), SeverityError},
		{"input shape", NewInputShapeError("water", "x"), SeverityWarning},
		{"not found", NewNotFoundError("algorithm", "x"), SeverityWarning},
		{"search exhausted", NewSearchExhaustedError("queue", 1), SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSeverity(tt.err); got != tt.want {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInputError(t *testing.T) {
	if IsInputError(nil) {
		t.Error("nil should not be an input error")
	}
	if !IsInputError(NewInputShapeError("water", "x")) {
		t.Error("InputShapeError should be an input error")
	}
	if !IsInputError(Wrap(NewValidationError("x"), "parse")) {
		t.Error("wrapped ValidationError should be an input error")
	}
	if IsInputError(NewSearchExhaustedError("queue", 1)) {
		t.Error("SearchExhaustedError should not be an input error")
	}
}

// -----------------------------------------------------------------------------
// Wrap Tests
// -----------------------------------------------------------------------------

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := New("base")
	err := Wrap(base, "context")
	if err.Error() != "context: base" {
		t.Errorf("Error() = %q, want %q", err.Error(), "context: base")
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match base")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(New("base"), "simulate %s", "poker")
	if !strings.HasPrefix(err.Error(), "simulate poker: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}
