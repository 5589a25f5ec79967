// Package pattern compiles scanln format strings into regular expressions.
//
// Compilation is two independent passes over the format string. The first
// pass produces the match pattern: the surrounding text is optionally
// regex-escaped, then every placeholder tag is replaced by a capturing
// group. The second pass slides a two-byte window over the original,
// unescaped format and collects the conversion function for every tag
// occurrence in left-to-right order. The passes stay separate so the
// group/conversion alignment is testable on its own, but they must agree:
// group i of a match is always converted by conversion i.
//
// Any two-byte run that equals a known tag is a placeholder, even inside
// text the author meant literally. There is no syntax to suppress a tag.
package pattern

import (
	"regexp"
	"strings"

	"github.com/scanln/scanln/placeholder"
)

// Options control how a format string is compiled.
type Options struct {
	// CaptureWhitespace widens capture groups from `(\S+)` to `(.+)`,
	// letting a single placeholder match text containing spaces.
	CaptureWhitespace bool

	// EscapeText regex-escapes the format string before substitution,
	// so literal text matches itself exactly. When false, the format
	// is raw regex and may carry its own anchors, classes, and groups.
	EscapeText bool
}

// group returns the capturing group placeholders compile to.
func (o Options) group() string {
	if o.CaptureWhitespace {
		return `(.+)`
	}
	return `(\S+)`
}

// Substitute returns the match pattern for format: the format text,
// escaped per opts, with every occurrence of every tag in table
// replaced by a capturing group. Tags are substituted in sorted order,
// so the result is a pure function of its inputs.
func Substitute(format string, table placeholder.Table, opts Options) string {
	out := format
	if opts.EscapeText {
		out = regexp.QuoteMeta(format)
	}
	group := opts.group()
	for _, tag := range table.Tags() {
		needle := tag
		if opts.EscapeText {
			needle = regexp.QuoteMeta(tag)
		}
		out = strings.ReplaceAll(out, needle, group)
	}
	return out
}

// ScanTags walks the original format left to right and returns the
// conversion for each tag occurrence, in order. The window is two
// bytes wide and advances one byte at a time, so detection is
// independent of the escaping applied by Substitute.
func ScanTags(format string, table placeholder.Table) []placeholder.Conversion {
	var convs []placeholder.Conversion
	for i := 0; i+2 <= len(format); i++ {
		if conv, ok := table.Lookup(format[i : i+2]); ok {
			convs = append(convs, conv)
		}
	}
	return convs
}

// Compile runs both passes and compiles the pattern anchored at the
// start of the input, mirroring a match-from-beginning scan. A format
// whose raw regex does not compile surfaces the regexp error as is.
func Compile(format string, table placeholder.Table, opts Options) (*regexp.Regexp, []placeholder.Conversion, error) {
	re, err := regexp.Compile(`\A(?:` + Substitute(format, table, opts) + `)`)
	if err != nil {
		return nil, nil, err
	}
	return re, ScanTags(format, table), nil
}
