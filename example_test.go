package scanln_test

import (
	"fmt"
	"strings"

	"github.com/scanln/scanln"
	"github.com/scanln/scanln/lineio"
	"github.com/scanln/scanln/placeholder"
	"github.com/scanln/scanln/scanerr"
)

// from builds a Scanner reading canned input, so the examples run
// without a console. Real programs use scanln.New() or the package
// level functions, which read standard input.
func from(input string) *scanln.Scanner {
	return scanln.New(scanln.WithReader(lineio.New(strings.NewReader(input), nil)))
}

// Example demonstrates scanning one line into typed values.
func Example() {
	s := from("John, 30, 70.5\n")

	vals, err := s.Scanf("profile? ", "%s, %d, %f")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q %d %.1f\n", vals[0], vals[1], vals[2])

	// Output:
	// "John" 30 70.5
}

// ExampleScanner_Scanf_noEscape treats the format as raw regex so it
// can absorb flexible whitespace around the separators.
func ExampleScanner_Scanf_noEscape() {
	s := from("John,  30, 70.5\n")

	vals, err := s.Scanf("", "%s, *%d, *%f", scanln.NoEscape())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(vals)

	// Output:
	// [John 30 70.5]
}

// ExampleScanner_Scanf_expand registers a custom placeholder for one call.
func ExampleScanner_Scanf_expand() {
	s := from("101\n")

	vals, err := s.Scanf("bits? ", "%b", scanln.Expand(placeholder.Table{
		"%b": placeholder.IntBase(2),
	}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(vals[0])

	// Output:
	// 5
}

// ExampleScanner_Split reads a whitespace-separated list of integers.
func ExampleScanner_Split() {
	s := from("1 2 3 4 5\n")

	nums, err := s.Split("numbers? ", scanln.As(placeholder.Int))
	if err != nil {
		fmt.Println(err)
		return
	}

	sum := 0
	for _, n := range nums {
		sum += n.(int)
	}
	fmt.Printf("%d values, sum %d\n", len(nums), sum)

	// Output:
	// 5 values, sum 15
}

// ExampleScanner_Split_count enforces a token count range.
func ExampleScanner_Split_count() {
	s := from("1 2 3 4 5\n")

	_, err := s.Split("", scanln.As(placeholder.Int), scanln.Count(1, 3))
	if scanerr.IsCountOutOfRange(err) {
		fmt.Println(err)
	}

	// Output:
	// split [COUNT_OUT_OF_RANGE]: input count 5 is not in range [1, 3]
}

// ExampleScanner_Eval parses a literal expression without executing it.
func ExampleScanner_Eval() {
	s := from("{'name': 'John', 'scores': [70.5, 80]}\n2+2\n")

	v, err := s.Eval("record? ")
	if err != nil {
		fmt.Println(err)
		return
	}
	m := v.(map[any]any)
	fmt.Println(m["name"], m["scores"])

	// Operators are not literals, so nothing is ever computed.
	_, err = s.Eval("again? ")
	fmt.Println(scanerr.IsNotLiteral(err))

	// Output:
	// John [70.5 80]
	// true
}
