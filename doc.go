// Package scanln reads typed values from single lines of console input.
//
// Plain line reads hand back one untyped string and leave the parsing,
// splitting, and converting to the caller. scanln wraps the read with
// three small engines that do that work:
//
//   - Scanf: scanf-style format strings with placeholder tags
//   - Split: separator-based splitting with one conversion and a count range
//   - Eval: safe evaluation of a literal expression
//
// # Format Strings
//
// A format string mixes literal text with two-character placeholder tags.
// The built-in tags are %a (literal expression), %d (decimal integer),
// %f (float), %o (octal integer), %s (string), and %x (hex integer):
//
//	vals, err := scanln.Scanf("who? ", "%s, %d, %f")
//	// input "John, 30, 70.5" yields []any{"John", 30, 70.5}
//
// Literal text in the format must match the line exactly. With the
// NoEscape option the format is raw regular expression syntax instead,
// so it can express flexible matching around the tags:
//
//	vals, err := scanln.Scanf("who? ", "%s, *%d, *%f", scanln.NoEscape())
//	// input "John,  30, 70.5" also yields []any{"John", 30, 70.5}
//
// Tags can be added or overridden per call with Expand, per Scanner with
// WithTable, or declared in YAML via placeholder.LoadYAML. Any two-byte
// run equal to a known tag is treated as a placeholder, even when the
// author meant it literally; there is no escape syntax for tags.
//
// # Splitting
//
//	nums, err := scanln.Split("numbers? ", scanln.As(placeholder.Int),
//	    scanln.Count(1, 5))
//
// # Literal Evaluation
//
// Eval accepts only pure literals: numbers, strings, True/False/None,
// and nested tuples, lists, dicts, and sets. It never executes input,
// so "2+2" is rejected rather than computed.
//
// # Errors
//
// Every failure is a *scanerr.Error with a code identifying the kind:
// format mismatch, conversion failure, count out of range, or not a
// literal. See package scanerr.
//
// # Concurrency
//
// Calls block until a full line is available and perform exactly one
// read each. The library is synchronous and single-threaded by design;
// concurrent calls against one Scanner are not supported.
package scanln
