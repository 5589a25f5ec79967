package literal

import "fmt"

// Tuple is an ordered, fixed-shape sequence literal, distinct from a
// list so callers can tell `(1, 2)` apart from `[1, 2]`.
type Tuple []any

// Set is an unordered collection of comparable scalar elements.
type Set map[any]bool

// ParseError describes a failure to parse an input as a pure literal.
type ParseError struct {
	// Pos is the byte offset in the input where parsing failed.
	Pos int

	// Msg describes what was expected or rejected.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("literal: %s at offset %d", e.Msg, e.Pos)
}

// hashable reports whether v may be used as a dict key or set element.
// Only comparable scalars qualify; containers are rejected up front so
// a malformed key can never panic a map insert.
func hashable(v any) bool {
	switch v.(type) {
	case nil, bool, int, float64, string:
		return true
	default:
		return false
	}
}
