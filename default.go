package scanln

// defaultScanner backs the package-level calls: standard input,
// built-in placeholder table.
var defaultScanner = New()

// Scanf reads one line from standard input and scans it by format.
// See Scanner.Scanf.
func Scanf(prompt, format string, opts ...ScanOption) ([]any, error) {
	return defaultScanner.Scanf(prompt, format, opts...)
}

// Split reads one line from standard input and splits it into
// converted tokens. See Scanner.Split.
func Split(prompt string, opts ...SplitOption) ([]any, error) {
	return defaultScanner.Split(prompt, opts...)
}

// Eval reads one line from standard input and parses it as a literal
// expression. See Scanner.Eval.
func Eval(prompt string, opts ...EvalOption) (any, error) {
	return defaultScanner.Eval(prompt, opts...)
}
