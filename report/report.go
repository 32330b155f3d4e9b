// Package report packages the four LCC metrics and renders them as text,
// JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output keys, in report order.
const (
	KeyVLCC  = "VLCC"
	KeyDelta = "Delta(LCC)"
	KeyK     = "k(LCC)"
	KeyLmax  = "Lmax"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Metrics is the result of one analysis. Lmax is counted in edges.
type Metrics struct {
	VLCC      int     `json:"VLCC" yaml:"VLCC"`
	MaxDegree int     `json:"Delta(LCC)" yaml:"Delta(LCC)"`
	AvgDegree float64 `json:"k(LCC)" yaml:"k(LCC)"`
	Lmax      int     `json:"Lmax" yaml:"Lmax"`
}

// AsMap returns the metrics as a mapping with exactly the four output keys.
func (m Metrics) AsMap() map[string]any {
	return map[string]any{
		KeyVLCC:  m.VLCC,
		KeyDelta: m.MaxDegree,
		KeyK:     m.AvgDegree,
		KeyLmax:  m.Lmax,
	}
}

// Format selects a rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "", "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write renders m to w in the given format.
//
// Text output is one labeled line per metric:
//
//	|VLCC| (nodes in LCC): 5
//	∆(LCC) (max degree in LCC): 2
//	k(LCC) (average degree in LCC): 2
//	Lmax (longest simple path): 4
func Write(w io.Writer, m Metrics, f Format) error {
	switch f {
	case FormatText:
		_, err := fmt.Fprintf(w,
			"|VLCC| (nodes in LCC): %d\n∆(LCC) (max degree in LCC): %d\nk(LCC) (average degree in LCC): %s\nLmax (longest simple path): %d\n",
			m.VLCC, m.MaxDegree, strconv.FormatFloat(m.AvgDegree, 'g', -1, 64), m.Lmax)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
