// Package literal parses a restricted literal expression grammar.
//
// # Overview
//
// The grammar covers constant values only: integers (decimal, hex, octal,
// binary, with an optional sign), floats, quoted strings, the keywords
// True, False, and None, and arbitrarily nested tuples, lists, dicts, and
// sets of those. Operators, names, calls, and any other executable syntax
// are rejected, so parsing a string with this package can never run code.
//
// # Value Mapping
//
// Parsed values use plain Go types where one exists:
//
//   - integers: int
//   - floats: float64
//   - strings: string
//   - True/False: bool
//   - None: nil
//   - lists: []any
//   - tuples: Tuple
//   - dicts: map[any]any
//   - sets: Set
//
// Dict keys and set elements are limited to comparable scalars; a
// container in key position is a parse error.
//
// # Usage
//
//	v, err := literal.Parse(`{"name": "John", "scores": [70.5, 80]}`)
//	if err != nil {
//	    // not a pure literal
//	}
package literal
