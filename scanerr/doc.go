// Package scanerr provides the structured error type raised by the scanln library.
//
// # Overview
//
// Every failure surfaced by scanln is a *scanerr.Error carrying the operation
// that failed, a standard error code, and any payload relevant to the code
// (the format string, the raw input line, or the observed token count and its
// configured bounds). Underlying conversion failures are preserved as a cause
// chain compatible with errors.Is and errors.As.
//
// # Error Codes
//
//   - CodeFormatMismatch: the input line did not match the compiled format pattern
//   - CodeConversion: a conversion function rejected a captured value
//   - CodeCountOutOfRange: the split token count fell outside [Min, Max]
//   - CodeNotLiteral: the input line is not a pure literal expression
//
// # Usage
//
// Catch any scanln error:
//
//	var serr *scanerr.Error
//	if errors.As(err, &serr) {
//	    fmt.Println(serr.Code)
//	}
//
// Or check a specific kind:
//
//	if scanerr.IsCountOutOfRange(err) {
//	    // re-prompt the user
//	}
package scanerr
