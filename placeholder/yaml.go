package placeholder

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tagSpec is one YAML table entry: a builtin conversion kind plus an
// optional integer base.
type tagSpec struct {
	Kind string `yaml:"kind"`
	Base int    `yaml:"base"`
}

// LoadYAML reads an expansion Table from a YAML document mapping tags
// to builtin conversion kinds. Supported kinds are "literal", "int"
// (with an optional base, default 10), "float", and "string":
//
//	"%b": {kind: int, base: 2}
//	"%e": {kind: float}
//
// The result is typically merged into a Default copy and passed to a
// scan call.
func LoadYAML(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read placeholder table: %w", err)
	}

	var specs map[string]tagSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse placeholder table: %w", err)
	}

	table := make(Table, len(specs))
	for tag, spec := range specs {
		conv, err := spec.conversion()
		if err != nil {
			return nil, fmt.Errorf("placeholder %q: %w", tag, err)
		}
		table[tag] = conv
	}
	return table, nil
}

func (s tagSpec) conversion() (Conversion, error) {
	switch s.Kind {
	case "literal":
		return Literal, nil
	case "int":
		base := s.Base
		if base == 0 {
			base = 10
		}
		if base < 2 || base > 36 {
			return nil, fmt.Errorf("integer base %d out of range", base)
		}
		return IntBase(base), nil
	case "float":
		return Float, nil
	case "string":
		return String, nil
	default:
		return nil, fmt.Errorf("unknown conversion kind %q", s.Kind)
	}
}
