// Package config loads curve definitions and signature records from YAML
// files and parses the integer notation shared by files and command line
// flags.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
)

// ErrUnknownCurve is returned by Lookup for names that are neither defined in
// the file nor built in.
var ErrUnknownCurve = errors.New("unknown curve")

// ParseInt parses a decimal or hexadecimal integer. Hex needs a 0x prefix
// unless it contains a hex letter. A leading minus sign is accepted.
func ParseInt(s string) (*big.Int, error) {
	v := strings.TrimSpace(s)
	neg := strings.HasPrefix(v, "-")
	v = strings.TrimPrefix(v, "-")

	base := 10
	switch {
	case strings.HasPrefix(v, "0x"), strings.HasPrefix(v, "0X"):
		v, base = v[2:], 16
	case strings.ContainsAny(v, "abcdefABCDEF"):
		base = 16
	}

	z, ok := new(big.Int).SetString(v, base)
	if !ok || v == "" {
		return nil, fmt.Errorf("invalid number format: %q", s)
	}
	if neg {
		z.Neg(z)
	}
	return z, nil
}

// Int is a big integer read from YAML as a decimal or hex scalar.
type Int struct {
	*big.Int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Int) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected an integer", value.Line)
	}
	z, err := ParseInt(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	i.Int = z
	return nil
}

// CurveSpec is the YAML form of curve.Params.
type CurveSpec struct {
	Name string `yaml:"name"`
	P    Int    `yaml:"p"`
	A    Int    `yaml:"a"`
	B    Int    `yaml:"b"`
	Gx   Int    `yaml:"gx"`
	Gy   Int    `yaml:"gy"`
	N    Int    `yaml:"n"`
}

// Params converts s to curve parameters. Missing fields stay nil and are
// rejected by curve.New.
func (s CurveSpec) Params() curve.Params {
	return curve.Params{
		Name: s.Name,
		P:    s.P.Int,
		A:    s.A.Int,
		B:    s.B.Int,
		Gx:   s.Gx.Int,
		Gy:   s.Gy.Int,
		N:    s.N.Int,
	}
}

// CurveFile is the top level of a curve definition file:
//
//	curves:
//	  - name: toy23
//	    p: 23
//	    a: 1
//	    b: 1
//	    gx: 3
//	    gy: 10
//	    n: 28
type CurveFile struct {
	Curves []CurveSpec `yaml:"curves"`
}

// CurveSet holds validated curves by name.
type CurveSet struct {
	curves map[string]*curve.Curve
}

// ParseCurves validates every curve in a YAML document.
func ParseCurves(data []byte) (*CurveSet, error) {
	var file CurveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse curve file: %w", err)
	}

	set := &CurveSet{curves: make(map[string]*curve.Curve, len(file.Curves))}
	for i, spec := range file.Curves {
		if spec.Name == "" {
			return nil, fmt.Errorf("curve %d: missing name", i)
		}
		if _, dup := set.curves[spec.Name]; dup {
			return nil, fmt.Errorf("curve %q: defined twice", spec.Name)
		}

		c, err := curve.New(spec.Params())
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", spec.Name, err)
		}
		set.curves[spec.Name] = c
	}
	return set, nil
}

// LoadCurves reads and validates a curve definition file.
func LoadCurves(path string) (*CurveSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve file: %w", err)
	}
	return ParseCurves(data)
}

// Lookup returns the named curve. Curves defined in the set shadow the
// built-in presets. A nil set only knows the presets.
func (s *CurveSet) Lookup(name string) (*curve.Curve, error) {
	if s != nil {
		if c, ok := s.curves[name]; ok {
			return c, nil
		}
	}
	if c, ok := curve.Preset(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// Names lists the curves defined in the set, sorted.
func (s *CurveSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.curves))
	for name := range s.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
