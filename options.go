package scanln

import (
	"github.com/scanln/scanln/lineio"
	"github.com/scanln/scanln/placeholder"
)

// Option configures a Scanner.
type Option func(*Scanner)

// WithReader sets the line reader a Scanner draws input from.
// The default reads from standard input and writes prompts to
// standard output.
func WithReader(r lineio.Reader) Option {
	return func(s *Scanner) {
		s.reader = r
	}
}

// WithTable replaces the Scanner's placeholder table. The table is
// used as given; pass a placeholder.Default copy extended with Merge
// to build on the built-in tags.
func WithTable(t placeholder.Table) Option {
	return func(s *Scanner) {
		s.table = t
	}
}

// ScanOption configures a single Scanf call.
type ScanOption func(*scanConfig)

type scanConfig struct {
	expand     placeholder.Table
	whitespace bool
	escape     bool
}

// Expand merges extra placeholder tags into a copy of the Scanner's
// table for this call only. Entries override built-in tags on
// collision.
func Expand(t placeholder.Table) ScanOption {
	return func(c *scanConfig) {
		c.expand = t
	}
}

// CaptureWhitespace lets each placeholder capture text containing
// whitespace. By default a placeholder stops at the first whitespace
// character.
func CaptureWhitespace() ScanOption {
	return func(c *scanConfig) {
		c.whitespace = true
	}
}

// NoEscape treats the format string as raw regular expression syntax
// instead of escaping it, so the format can carry its own character
// classes, repetitions, and groups around the placeholder tags.
func NoEscape() ScanOption {
	return func(c *scanConfig) {
		c.escape = false
	}
}

// SplitOption configures a single Split call.
type SplitOption func(*splitConfig)

type splitConfig struct {
	conv   placeholder.Conversion
	sep    string
	sepSet bool
	min    int
	max    int
}

// As sets the conversion applied to every token.
func As(conv placeholder.Conversion) SplitOption {
	return func(c *splitConfig) {
		c.conv = conv
	}
}

// Sep splits the line on every occurrence of sep instead of on
// whitespace runs. Unlike the default, empty tokens are kept. An
// empty sep splits the line after every UTF-8 rune, following
// strings.Split.
func Sep(sep string) SplitOption {
	return func(c *splitConfig) {
		c.sep = sep
		c.sepSet = true
	}
}

// Count bounds the accepted token count to [min, max] inclusive.
func Count(min, max int) SplitOption {
	return func(c *splitConfig) {
		c.min = min
		c.max = max
	}
}

// EvalOption configures a single Eval call.
type EvalOption func(*evalConfig)

type evalConfig struct {
	conv func(any) (any, error)
}

// Into applies fn to the parsed literal before it is returned.
func Into(fn func(any) (any, error)) EvalOption {
	return func(c *evalConfig) {
		c.conv = fn
	}
}
