package scanerr

import (
	"fmt"
	"strings"
)

// Standard error codes used across the library for consistent error reporting.
const (
	// CodeFormatMismatch indicates the input line did not match the
	// pattern compiled from the format string.
	CodeFormatMismatch = "FORMAT_MISMATCH"

	// CodeConversion indicates a conversion function rejected a value.
	CodeConversion = "CONVERSION_FAILED"

	// CodeCountOutOfRange indicates the token count fell outside the
	// configured inclusive bounds.
	CodeCountOutOfRange = "COUNT_OUT_OF_RANGE"

	// CodeNotLiteral indicates the input line could not be parsed as a
	// pure literal expression.
	CodeNotLiteral = "NOT_A_LITERAL"
)

// Error is the structured error type for scanln operations.
// It records which operation failed, a standard error code, and the
// payload fields relevant to that code. All errors raised by the
// library are of this type, so callers can catch broadly with
// errors.As or narrowly with the Is* predicates.
type Error struct {
	// Op is the operation that failed: "scanf", "split", or "eval".
	Op string

	// Code is one of the Code* constants.
	Code string

	// Message is a human-readable description.
	Message string

	// Format is the offending format string. Set for CodeFormatMismatch.
	Format string

	// Input is the raw input line. Set for CodeNotLiteral.
	Input string

	// Count, Min, and Max describe the failed count check.
	// Set for CodeCountOutOfRange.
	Count, Min, Max int

	// Cause is the underlying error, if any. Set for CodeConversion.
	Cause error
}

// FormatMismatch reports that the input line did not match the pattern
// compiled from format.
func FormatMismatch(op, format string) *Error {
	return &Error{
		Op:      op,
		Code:    CodeFormatMismatch,
		Message: fmt.Sprintf("input does not match format string %q", format),
		Format:  format,
	}
}

// Conversion reports that a conversion function rejected a value.
// The original failure is retained as the cause.
func Conversion(op string, cause error) *Error {
	return &Error{
		Op:      op,
		Code:    CodeConversion,
		Message: "cannot convert input to the requested type",
		Cause:   cause,
	}
}

// CountOutOfRange reports that count tokens were read when between min
// and max (inclusive) were required.
func CountOutOfRange(op string, count, min, max int) *Error {
	return &Error{
		Op:      op,
		Code:    CodeCountOutOfRange,
		Message: fmt.Sprintf("input count %d is not in range [%d, %d]", count, min, max),
		Count:   count,
		Min:     min,
		Max:     max,
	}
}

// NotLiteral reports that input is not a pure literal expression.
func NotLiteral(op, input string) *Error {
	return &Error{
		Op:      op,
		Code:    CodeNotLiteral,
		Message: fmt.Sprintf("input %q is not a literal expression", input),
		Input:   input,
	}
}

// Error implements the error interface.
// It formats the error as: "op [code]: message: cause".
func (e *Error) Error() string {
	parts := []string{fmt.Sprintf("%s [%s]", e.Op, e.Code)}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause error, enabling errors.Is and
// errors.As to traverse the chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error equality for errors.Is. Two Error values match
// when they share the same Op and Code; a zero field on the target
// matches any value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// As implements error type assertion for errors.As.
func (e *Error) As(target any) bool {
	t, ok := target.(**Error)
	if !ok {
		return false
	}
	*t = e
	return true
}
