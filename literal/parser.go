package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse evaluates src as a single literal expression and returns the
// resulting value. A top-level comma produces a bare Tuple, matching
// the usual tuple-without-parentheses notation. Anything that is not a
// pure literal fails with *ParseError.
func Parse(src string) (any, error) {
	p := &parser{src: src}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.done() {
		return v, nil
	}
	if p.peek() != ',' {
		return nil, p.errorf("unexpected character %q after literal", p.peek())
	}

	// Bare top-level tuple: "1, 2" or "1,".
	tup := Tuple{v}
	for {
		p.pos++ // consume ','
		p.skipSpace()
		if p.done() {
			return tup, nil
		}
		elem, err := p.value()
		if err != nil {
			return nil, err
		}
		tup = append(tup, elem)
		p.skipSpace()
		if p.done() {
			return tup, nil
		}
		if p.peek() != ',' {
			return nil, p.errorf("expected ',' in tuple, got %q", p.peek())
		}
	}
}

type parser struct {
	src string
	pos int
}

func (p *parser) done() bool { return p.pos >= len(p.src) }

// peek returns the byte at the cursor. Structural characters are all
// ASCII, so byte-level dispatch is safe; multi-byte runes only ever
// appear inside quoted strings.
func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) value() (any, error) {
	if p.done() {
		return nil, p.errorf("unexpected end of input")
	}
	switch c := p.peek(); {
	case c == '(':
		return p.tuple()
	case c == '[':
		return p.list()
	case c == '{':
		return p.dictOrSet()
	case c == '\'' || c == '"':
		return p.string()
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	case c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
		return p.keyword()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

// keyword accepts the three constant names and nothing else.
func (p *parser) keyword() (any, error) {
	start := p.pos
	for !p.done() {
		c := p.peek()
		if c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			p.pos++
			continue
		}
		break
	}
	switch word := p.src[start:p.pos]; word {
	case "True":
		return true, nil
	case "False":
		return false, nil
	case "None":
		return nil, nil
	default:
		p.pos = start
		return nil, p.errorf("name %q is not a literal", word)
	}
}

func (p *parser) number() (any, error) {
	start := p.pos
	if c := p.peek(); c == '+' || c == '-' {
		p.pos++
	}

	// Prefixed integer bases go straight to ParseInt with base 0,
	// which understands 0x/0o/0b prefixes and digit underscores.
	if rest := p.src[p.pos:]; len(rest) >= 2 && rest[0] == '0' &&
		strings.ContainsRune("xXoObB", rune(rest[1])) {
		p.pos += 2
		for !p.done() && isBaseDigit(p.peek()) {
			p.pos++
		}
		n, err := strconv.ParseInt(p.src[start:p.pos], 0, 64)
		if err != nil {
			return nil, &ParseError{Pos: start, Msg: "malformed integer literal"}
		}
		return int(n), nil
	}

	isFloat := false
	digits := func() {
		for !p.done() && (p.peek() == '_' || (p.peek() >= '0' && p.peek() <= '9')) {
			p.pos++
		}
	}
	digits()
	if !p.done() && p.peek() == '.' {
		isFloat = true
		p.pos++
		digits()
	}
	if !p.done() && (p.peek() == 'e' || p.peek() == 'E') {
		isFloat = true
		p.pos++
		if !p.done() && (p.peek() == '+' || p.peek() == '-') {
			p.pos++
		}
		digits()
	}

	text := p.src[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &ParseError{Pos: start, Msg: "malformed float literal"}
		}
		return f, nil
	}
	// ParseInt only understands digit underscores with base 0, which
	// would reinterpret a leading zero as octal. Check placement here,
	// then strip.
	if !underscoresBetweenDigits(text) {
		return nil, &ParseError{Pos: start, Msg: "malformed integer literal"}
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 10, 64)
	if err != nil {
		return nil, &ParseError{Pos: start, Msg: "malformed integer literal"}
	}
	return int(n), nil
}

// underscoresBetweenDigits reports whether every underscore in s has a
// digit on both sides, the only placement the grammar allows.
func underscoresBetweenDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i+1 == len(s) {
			return false
		}
		if s[i-1] < '0' || s[i-1] > '9' || s[i+1] < '0' || s[i+1] > '9' {
			return false
		}
	}
	return true
}

func isBaseDigit(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (p *parser) string() (any, error) {
	quote := p.peek()
	p.pos++
	var b strings.Builder
	for {
		if p.done() {
			return nil, p.errorf("unterminated string literal")
		}
		c := p.peek()
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if err := p.escape(&b); err != nil {
				return nil, err
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

// escape decodes one backslash escape into b. Unknown escapes keep the
// backslash, the same leniency string literals traditionally get.
func (p *parser) escape(b *strings.Builder) error {
	if p.done() {
		return p.errorf("trailing backslash in string literal")
	}
	c := p.peek()
	p.pos++
	switch c {
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'v':
		b.WriteByte('\v')
	case 'x':
		return p.hexEscape(b, 2)
	case 'u':
		return p.hexEscape(b, 4)
	case 'U':
		return p.hexEscape(b, 8)
	default:
		if c >= '0' && c <= '7' {
			p.pos--
			return p.octalEscape(b)
		}
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return nil
}

func (p *parser) hexEscape(b *strings.Builder, width int) error {
	if p.pos+width > len(p.src) {
		return p.errorf("truncated \\x/\\u escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+width], 16, 32)
	if err != nil {
		return p.errorf("malformed \\x/\\u escape")
	}
	p.pos += width
	if width == 2 {
		b.WriteByte(byte(n))
	} else {
		b.WriteRune(rune(n))
	}
	return nil
}

func (p *parser) octalEscape(b *strings.Builder) error {
	n := 0
	for i := 0; i < 3 && !p.done() && p.peek() >= '0' && p.peek() <= '7'; i++ {
		n = n*8 + int(p.peek()-'0')
		p.pos++
	}
	b.WriteByte(byte(n))
	return nil
}

func (p *parser) list() (any, error) {
	p.pos++ // consume '['
	out := []any{}
	p.skipSpace()
	for {
		if p.done() {
			return nil, p.errorf("unterminated list literal")
		}
		if p.peek() == ']' {
			p.pos++
			return out, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if err := p.separator(']'); err != nil {
			return nil, err
		}
	}
}

// tuple parses a parenthesized expression. A lone value in parentheses
// is that value; only a comma makes it a Tuple.
func (p *parser) tuple() (any, error) {
	p.pos++ // consume '('
	p.skipSpace()
	if p.done() {
		return nil, p.errorf("unterminated tuple literal")
	}
	if p.peek() == ')' {
		p.pos++
		return Tuple{}, nil
	}
	first, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.done() {
		return nil, p.errorf("unterminated tuple literal")
	}
	if p.peek() == ')' {
		p.pos++
		return first, nil
	}
	if p.peek() != ',' {
		return nil, p.errorf("expected ',' or ')' in tuple, got %q", p.peek())
	}
	out := Tuple{first}
	for {
		p.pos++ // consume ','
		p.skipSpace()
		if p.done() {
			return nil, p.errorf("unterminated tuple literal")
		}
		if p.peek() == ')' {
			p.pos++
			return out, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipSpace()
		if p.done() {
			return nil, p.errorf("unterminated tuple literal")
		}
		if p.peek() == ')' {
			p.pos++
			return out, nil
		}
		if p.peek() != ',' {
			return nil, p.errorf("expected ',' or ')' in tuple, got %q", p.peek())
		}
	}
}

// dictOrSet disambiguates after the first element: a ':' makes the
// brace literal a dict, anything else a set. Empty braces are a dict.
func (p *parser) dictOrSet() (any, error) {
	p.pos++ // consume '{'
	p.skipSpace()
	if p.done() {
		return nil, p.errorf("unterminated dict or set literal")
	}
	if p.peek() == '}' {
		p.pos++
		return map[any]any{}, nil
	}
	first, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.done() {
		return nil, p.errorf("unterminated dict or set literal")
	}
	if p.peek() == ':' {
		return p.dict(first)
	}
	return p.set(first)
}

func (p *parser) dict(key any) (any, error) {
	out := map[any]any{}
	for {
		if !hashable(key) {
			return nil, p.errorf("unhashable dict key")
		}
		if p.done() || p.peek() != ':' {
			return nil, p.errorf("expected ':' in dict literal")
		}
		p.pos++
		p.skipSpace()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		out[key] = val
		if err := p.separator('}'); err != nil {
			return nil, err
		}
		if p.done() {
			return nil, p.errorf("unterminated dict literal")
		}
		if p.peek() == '}' {
			p.pos++
			return out, nil
		}
		key, err = p.value()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
	}
}

func (p *parser) set(first any) (any, error) {
	out := Set{}
	elem := first
	for {
		if !hashable(elem) {
			return nil, p.errorf("unhashable set element")
		}
		out[elem] = true
		if err := p.separator('}'); err != nil {
			return nil, err
		}
		if p.done() {
			return nil, p.errorf("unterminated set literal")
		}
		if p.peek() == '}' {
			p.pos++
			return out, nil
		}
		var err error
		elem, err = p.value()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
	}
}

// separator consumes an optional ',' between container elements and
// positions the cursor on either the next element or the closer. It
// leaves the closer for the caller so trailing commas work.
func (p *parser) separator(closer byte) error {
	p.skipSpace()
	if p.done() {
		return p.errorf("unterminated literal, expected %q", closer)
	}
	if p.peek() == closer {
		return nil
	}
	if p.peek() != ',' {
		return p.errorf("expected ',' or %q, got %q", closer, p.peek())
	}
	p.pos++
	p.skipSpace()
	return nil
}
