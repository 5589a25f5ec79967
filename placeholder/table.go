package placeholder

import (
	"sort"
	"strconv"
	"strings"

	"github.com/scanln/scanln/literal"
)

// Conversion turns one captured substring into a typed value.
// It must not have side effects on the parse; on invalid data it
// returns an error, which the calling engine surfaces as a
// conversion failure.
type Conversion func(string) (any, error)

// Table maps two-character placeholder tags to conversion functions.
type Table map[string]Conversion

// baseline is the immutable built-in tag set. Default hands out copies;
// nothing in the library writes to it.
var baseline = Table{
	"%a": Literal,
	"%d": Int,
	"%f": Float,
	"%o": Octal,
	"%s": String,
	"%x": Hex,
}

// Default returns a fresh copy of the built-in placeholder table.
func Default() Table {
	return baseline.Clone()
}

// Clone returns a shallow copy of the table. A nil table clones to an
// empty, usable table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for tag, conv := range t {
		out[tag] = conv
	}
	return out
}

// Merge unions overrides into t in place, overrides winning on tag
// collision, and returns t for chaining. Merge into a Clone (or a
// Default copy) to extend a table without touching the original.
func (t Table) Merge(overrides Table) Table {
	for tag, conv := range overrides {
		t[tag] = conv
	}
	return t
}

// Lookup returns the conversion registered for tag.
func (t Table) Lookup(tag string) (Conversion, bool) {
	conv, ok := t[tag]
	return conv, ok
}

// Tags returns the table's tags in sorted order. The pattern compiler
// substitutes tags in this order so identical inputs always compile to
// identical patterns.
func (t Table) Tags() []string {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Built-in conversions. Integer and float conversions tolerate
// surrounding whitespace in the captured text.

// Literal parses the captured text as a literal expression.
func Literal(s string) (any, error) {
	return literal.Parse(s)
}

// Int converts the captured text as a decimal integer.
func Int(s string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, err
	}
	return int(n), nil
}

// Float converts the captured text as a floating point number.
func Float(s string) (any, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Octal converts the captured text as a base-8 integer.
func Octal(s string) (any, error) {
	return IntBase(8)(s)
}

// Hex converts the captured text as a base-16 integer.
func Hex(s string) (any, error) {
	return IntBase(16)(s)
}

// String returns the captured text unchanged.
func String(s string) (any, error) {
	return s, nil
}

// IntBase returns a Conversion parsing integers in the given base,
// 2 through 36.
func IntBase(base int) Conversion {
	return func(s string) (any, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), base, 64)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	}
}
