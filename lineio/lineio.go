// Package lineio provides the blocking one-line read primitive scanln
// builds on.
//
// The Reader interface is the seam between the parsing engines and the
// terminal: engines ask for exactly one line, optionally shown behind a
// prompt, and tests substitute an in-memory reader for the console.
package lineio

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Reader reads one line of input, optionally displaying a prompt first.
//
// ReadLine blocks until a full line is available. The returned line has
// its trailing newline stripped. When the stream ends before any data,
// ReadLine returns io.EOF; a final line with no terminating newline is
// returned as data.
type Reader interface {
	ReadLine(prompt string) (string, error)
}

type reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader that reads lines from in and writes prompts to
// out with no trailing newline. A nil out discards prompts.
func New(in io.Reader, out io.Writer) Reader {
	if out == nil {
		out = io.Discard
	}
	return &reader{in: bufio.NewReader(in), out: out}
}

// Stdin returns the process-wide Reader bound to os.Stdin and os.Stdout.
func Stdin() Reader {
	return stdin
}

var stdin = New(os.Stdin, os.Stdout)

func (r *reader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", err
		}
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Unterminated final line still counts as input.
			return line, nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
