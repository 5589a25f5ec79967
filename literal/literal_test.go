package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{name: "decimal int", input: "4", expected: 4},
		{name: "negative int", input: "-17", expected: -17},
		{name: "positive sign", input: "+3", expected: 3},
		{name: "underscored int", input: "1_000", expected: 1000},
		{name: "hex int", input: "0x1f", expected: 31},
		{name: "octal int", input: "0o17", expected: 15},
		{name: "binary int", input: "0b101", expected: 5},
		{name: "negative hex", input: "-0x10", expected: -16},
		{name: "float", input: "70.5", expected: 70.5},
		{name: "leading dot float", input: ".5", expected: 0.5},
		{name: "trailing dot float", input: "1.", expected: 1.0},
		{name: "exponent float", input: "2e3", expected: 2000.0},
		{name: "signed exponent", input: "1.5e-2", expected: 0.015},
		{name: "double quoted string", input: `"hello"`, expected: "hello"},
		{name: "single quoted string", input: `'hello'`, expected: "hello"},
		{name: "string with escapes", input: `"a\tb\n"`, expected: "a\tb\n"},
		{name: "hex escape", input: `"\x41"`, expected: "A"},
		{name: "unicode escape", input: `"é"`, expected: "é"},
		{name: "escaped quote", input: `'it\'s'`, expected: "it's"},
		{name: "true", input: "True", expected: true},
		{name: "false", input: "False", expected: false},
		{name: "none", input: "None", expected: nil},
		{name: "surrounding whitespace", input: "  42  ", expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseContainers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{name: "empty list", input: "[]", expected: []any{}},
		{name: "int list", input: "[1, 2, 3]", expected: []any{1, 2, 3}},
		{name: "trailing comma list", input: "[1, 2,]", expected: []any{1, 2}},
		{name: "nested list", input: "[[1], [2, 3]]", expected: []any{[]any{1}, []any{2, 3}}},
		{name: "mixed list", input: `[1, "two", 3.0, None]`, expected: []any{1, "two", 3.0, nil}},
		{name: "empty tuple", input: "()", expected: Tuple{}},
		{name: "one tuple", input: "(1,)", expected: Tuple{1}},
		{name: "pair tuple", input: "(1, 2)", expected: Tuple{1, 2}},
		{name: "parenthesized scalar", input: "(5)", expected: 5},
		{name: "bare tuple", input: "1, 2", expected: Tuple{1, 2}},
		{name: "bare single with comma", input: "1,", expected: Tuple{1}},
		{name: "empty dict", input: "{}", expected: map[any]any{}},
		{name: "dict", input: `{"a": 1, "b": 2}`, expected: map[any]any{"a": 1, "b": 2}},
		{name: "nested dict", input: `{"a": [1, 2]}`, expected: map[any]any{"a": []any{1, 2}}},
		{name: "trailing comma dict", input: `{"a": 1,}`, expected: map[any]any{"a": 1}},
		{name: "set", input: "{1, 2, 3}", expected: Set{1: true, 2: true, 3: true}},
		{name: "trailing comma set", input: "{1, 2,}", expected: Set{1: true, 2: true}},
		{name: "deep nesting", input: `("a", {"b": {1, 2}}, [None])`,
			expected: Tuple{"a", map[any]any{"b": Set{1: true, 2: true}}, []any{nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseRejectsNonLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "blank input", input: "   "},
		{name: "operator expression", input: "2+2"},
		{name: "name and operator", input: "2+hello"},
		{name: "bare name", input: "hello"},
		{name: "call", input: "len([1])"},
		{name: "lowercase true", input: "true"},
		{name: "unterminated string", input: `"abc`},
		{name: "unterminated list", input: "[1, 2"},
		{name: "unterminated dict", input: `{"a": 1`},
		{name: "missing dict value", input: `{"a": }`},
		{name: "list as dict key", input: `{[1]: 2}`},
		{name: "list in set", input: "{[1], 2}"},
		{name: "trailing garbage", input: "4 junk"},
		{name: "malformed number", input: "1.2.3"},
		{name: "lone sign", input: "+"},
		{name: "trailing underscore", input: "1_"},
		{name: "doubled underscore", input: "1__0"},
		{name: "underscore after sign", input: "-_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("[1, oops]")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Pos)
	assert.Contains(t, perr.Error(), "offset 4")
}
