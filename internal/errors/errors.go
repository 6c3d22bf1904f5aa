// Package errors provides centralized error definitions and error handling utilities
// for stepthrough. It defines domain-specific errors for the simulators, semantic
// error types, and classification helpers used by the CLI and the TUI to decide
// how an error is shown.
//
// # Error Types
//
// Domain-specific errors represent failures of a simulator run:
//   - InputShapeError: the input text does not have the shape an algorithm needs
//   - SearchExhaustedError: a bounded search ran out of iterations
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found (for example an unknown algorithm ID)
//   - ValidationError: invalid input token or configuration value
//
// # Usage
//
//	err := errors.NewInputShapeError("poker", "10 card values")
//	if errors.Is(err, errors.ErrInvalidInput) { ... }
//
//	var shape *errors.InputShapeError
//	if errors.As(err, &shape) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors caused by user input that the user can fix.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrSearchExhausted indicates that a bounded search ended without an answer.
	ErrSearchExhausted = New("search bound exhausted")
	// ErrUnknownAlgorithm indicates that no simulator is registered for an ID.
	ErrUnknownAlgorithm = New("unknown algorithm")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// TraceError is the base interface for all stepthrough errors.
type TraceError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users as-is.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// InputShapeError reports input text that does not carry the values an
// algorithm needs.
//
// Example:
//
//	err := errors.NewInputShapeError("water", "3 numbers: Y k n")
//	fmt.Println(err) // "input error [algorithm=water]: expected 3 numbers: Y k n"
type InputShapeError struct {
	baseError
	Algorithm string
	Expected  string
	Got       int
}

// NewInputShapeError creates a new InputShapeError.
func NewInputShapeError(algorithm, expected string) *InputShapeError {
	return &InputShapeError{
		baseError: baseError{
			message:    "expected " + expected,
			severity:   SeverityWarning,
			userFacing: true,
		},
		Algorithm: algorithm,
		Expected:  expected,
		Got:       -1,
	}
}

// WithGot records how many numbers were actually supplied.
func (e *InputShapeError) WithGot(n int) *InputShapeError {
	e.Got = n
	return e
}

// WithCause adds a cause to the error.
func (e *InputShapeError) WithCause(cause error) *InputShapeError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *InputShapeError) Error() string {
	var parts []string
	if e.Algorithm != "" {
		parts = append(parts, fmt.Sprintf("algorithm=%s", e.Algorithm))
	}
	if e.Got >= 0 {
		parts = append(parts, fmt.Sprintf("got=%d", e.Got))
	}

	prefix := "input error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("input error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *InputShapeError) Is(target error) bool {
	if _, ok := target.(*InputShapeError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// SearchExhaustedError reports a bounded search that ran out of iterations
// before the answer was found.
//
// Example:
//
//	err := errors.NewSearchExhaustedError("queue", 1000)
//	fmt.Println(err) // "search error [algorithm=queue]: no answer within 1000 iterations"
type SearchExhaustedError struct {
	baseError
	Algorithm  string
	Iterations int
	LastValue  int64
}

// NewSearchExhaustedError creates a new SearchExhaustedError.
func NewSearchExhaustedError(algorithm string, iterations int) *SearchExhaustedError {
	return &SearchExhaustedError{
		baseError: baseError{
			message:    fmt.Sprintf("no answer within %d iterations", iterations),
			cause:      ErrSearchExhausted,
			severity:   SeverityError,
			userFacing: true,
		},
		Algorithm:  algorithm,
		Iterations: iterations,
	}
}

// WithLastValue records the last candidate the search examined.
func (e *SearchExhaustedError) WithLastValue(v int64) *SearchExhaustedError {
	e.LastValue = v
	return e
}

// Error returns the formatted error message.
func (e *SearchExhaustedError) Error() string {
	prefix := "search error"
	if e.Algorithm != "" {
		prefix = fmt.Sprintf("search error [algorithm=%s]", e.Algorithm)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *SearchExhaustedError) Is(target error) bool {
	if _, ok := target.(*SearchExhaustedError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("algorithm", "bubble")
//	fmt.Println(err) // "algorithm 'bubble' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("not an integer")
//	err = err.WithField("token").WithValue("abc")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    m.errorMessage = err.Error()
//	} else {
//	    m.errorMessage = "An internal error occurred"
//	    logger.Error("internal error", "error", err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var traceErr TraceError
	if As(err, &traceErr) {
		return traceErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TraceError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var traceErr TraceError
	if As(err, &traceErr) {
		return traceErr.Severity()
	}

	return SeverityError
}

// IsInputError returns true if the error was caused by the user's input text
// (a wrong shape or a rejected token) rather than by the simulator itself.
func IsInputError(err error) bool {
	if err == nil {
		return false
	}

	var shape *InputShapeError
	var validation *ValidationError
	return As(err, &shape) || As(err, &validation)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
// Unlike fmt.Errorf with %w, this returns nil when err is nil.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to build trace")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to simulate %s", id)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
