package scanerr

import "errors"

func hasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsFormatMismatch reports whether err is a CodeFormatMismatch error.
func IsFormatMismatch(err error) bool { return hasCode(err, CodeFormatMismatch) }

// IsConversion reports whether err is a CodeConversion error.
func IsConversion(err error) bool { return hasCode(err, CodeConversion) }

// IsCountOutOfRange reports whether err is a CodeCountOutOfRange error.
func IsCountOutOfRange(err error) bool { return hasCode(err, CodeCountOutOfRange) }

// IsNotLiteral reports whether err is a CodeNotLiteral error.
func IsNotLiteral(err error) bool { return hasCode(err, CodeNotLiteral) }
