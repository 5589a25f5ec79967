package scanln

import (
	"math"
	"strings"

	"github.com/scanln/scanln/lineio"
	"github.com/scanln/scanln/literal"
	"github.com/scanln/scanln/pattern"
	"github.com/scanln/scanln/placeholder"
	"github.com/scanln/scanln/scanerr"
)

// DefaultMaxCount is the upper token-count bound Split uses when no
// Count option is given.
const DefaultMaxCount = math.MaxInt

// Scanner reads typed values from single lines of input. The zero
// configuration reads from standard input with the built-in
// placeholder table; use options to inject a different line reader or
// a pre-extended table.
//
// A Scanner's table is copied before any per-call expansion is merged
// in, so no call can change the behavior of another.
type Scanner struct {
	reader lineio.Reader
	table  placeholder.Table
}

// New returns a Scanner configured by opts.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		reader: lineio.Stdin(),
		table:  placeholder.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scanf reads one line and scans it by format, like a scanf for lines.
//
// The format mixes literal text with placeholder tags (%s, %d, %f, %o,
// %x, %a by default); every tag becomes a capture in the line, and the
// captures are converted left to right by each tag's conversion. The
// match is anchored at the start of the line. Returned values are in
// tag order, one per capture.
//
// Failures: a line that does not match fails with FORMAT_MISMATCH; the
// first conversion to reject its capture aborts the call with
// CONVERSION_FAILED and no partial results.
func (s *Scanner) Scanf(prompt, format string, opts ...ScanOption) ([]any, error) {
	cfg := scanConfig{escape: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	table := s.table.Clone().Merge(cfg.expand)
	re, convs, err := pattern.Compile(format, table, pattern.Options{
		CaptureWhitespace: cfg.whitespace,
		EscapeText:        cfg.escape,
	})
	if err != nil {
		return nil, err
	}

	line, err := s.reader.ReadLine(prompt)
	if err != nil {
		return nil, err
	}

	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil, scanerr.FormatMismatch("scanf", format)
	}

	// With escaping off the caller can embed raw capture groups, in
	// which case groups may outnumber tags; conversion pairs up as far
	// as both lists reach.
	groups := m[1:]
	n := len(groups)
	if len(convs) < n {
		n = len(convs)
	}
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v, err := convs[i](groups[i])
		if err != nil {
			return nil, scanerr.Conversion("scanf", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Split reads one line, splits it into tokens, and converts every
// token with a single conversion (default: the token itself as a
// string). Without a Sep option the line splits on runs of whitespace
// with empty edge tokens discarded; with one, on every occurrence of
// the separator.
//
// The token count is then validated against the inclusive bounds set
// by Count (defaults 1 and DefaultMaxCount). Conversion failures abort
// with CONVERSION_FAILED before the count is checked; an out-of-bounds
// count fails with COUNT_OUT_OF_RANGE. Token order is preserved.
func (s *Scanner) Split(prompt string, opts ...SplitOption) ([]any, error) {
	cfg := splitConfig{conv: placeholder.String, min: 1, max: DefaultMaxCount}
	for _, opt := range opts {
		opt(&cfg)
	}

	line, err := s.reader.ReadLine(prompt)
	if err != nil {
		return nil, err
	}

	var tokens []string
	if cfg.sepSet {
		tokens = strings.Split(line, cfg.sep)
	} else {
		tokens = strings.Fields(line)
	}

	out := make([]any, 0, len(tokens))
	for _, tok := range tokens {
		v, err := cfg.conv(tok)
		if err != nil {
			return nil, scanerr.Conversion("split", err)
		}
		out = append(out, v)
	}
	if len(out) < cfg.min || len(out) > cfg.max {
		return nil, scanerr.CountOutOfRange("split", len(out), cfg.min, cfg.max)
	}
	return out, nil
}

// Eval reads one line and parses it as a pure literal expression:
// numbers, strings, True/False/None, and nested tuples, lists, dicts,
// and sets of those. Nothing is executed; any other syntax fails with
// NOT_A_LITERAL carrying the raw line. An optional Into conversion is
// applied to the parsed value, and its failure surfaces as
// CONVERSION_FAILED.
func (s *Scanner) Eval(prompt string, opts ...EvalOption) (any, error) {
	var cfg evalConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	line, err := s.reader.ReadLine(prompt)
	if err != nil {
		return nil, err
	}

	v, err := literal.Parse(line)
	if err != nil {
		serr := scanerr.NotLiteral("eval", line)
		serr.Cause = err
		return nil, serr
	}
	if cfg.conv != nil {
		v, err = cfg.conv(v)
		if err != nil {
			return nil, scanerr.Conversion("eval", err)
		}
	}
	return v, nil
}
