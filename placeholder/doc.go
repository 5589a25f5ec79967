// Package placeholder defines the format placeholder table used by scanln.
//
// # Overview
//
// A placeholder tag is a two-character marker, a '%' sentinel followed by a
// letter, standing for a capture-and-convert point in a format string. The
// Table maps tags to conversion functions. Default returns a fresh copy of
// the built-in table:
//
//   - %a: any literal expression, via literal.Parse
//   - %d: decimal integer
//   - %f: float
//   - %o: octal integer
//   - %s: string, returned as captured
//   - %x: hexadecimal integer
//
// The built-in baseline is never mutated. Callers extend a table by merging
// their own entries into a copy, so expansions made for one call never leak
// into another:
//
//	t := placeholder.Default().Merge(placeholder.Table{
//	    "%b": placeholder.IntBase(2),
//	})
//
// Expansion tables can also be declared in YAML, keyed by tag with a builtin
// conversion kind per entry; see LoadYAML.
package placeholder
