// SPDX-License-Identifier: MIT

package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the document encoding of Write.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("problem: unknown output format")

// ParseFormat accepts "yaml"/"yml" and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// Solution is the solve output.
type Solution struct {
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
	Cost   int    `yaml:"cost" json:"cost"`
	RowSol []int  `yaml:"rowsol,flow" json:"rowsol"`
	ColSol []int  `yaml:"colsol,flow" json:"colsol"`
	U      []int  `yaml:"u,flow" json:"u"`
	V      []int  `yaml:"v,flow" json:"v"`
}

// ScoreMatrix is the score output; the component fields are set on request.
type ScoreMatrix struct {
	File     string      `yaml:"file,omitempty" json:"file,omitempty"`
	M        [][]float64 `yaml:"m" json:"m"`
	Link     [][]float64 `yaml:"link,omitempty" json:"link,omitempty"`
	SelfLink [][]float64 `yaml:"self_link,omitempty" json:"self_link,omitempty"`
	Node     [][]float64 `yaml:"node,omitempty" json:"node,omitempty"`
}

// Alignment is the align output.
type Alignment struct {
	File        string  `yaml:"file,omitempty" json:"file,omitempty"`
	Permutation []int   `yaml:"permutation,flow" json:"permutation"`
	Score       float64 `yaml:"score" json:"score"`
	Cost        int     `yaml:"cost" json:"cost"`
	Iterations  int     `yaml:"iterations" json:"iterations"`
	Converged   bool    `yaml:"converged" json:"converged"`
}

// Encoded is the encode output.
type Encoded struct {
	File   string      `yaml:"file,omitempty" json:"file,omitempty"`
	Matrix [][]float64 `yaml:"matrix" json:"matrix"`
}

// Write encodes v to w. YAML output is a single document; JSON output is
// indented and newline-terminated.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	return fmt.Errorf("Write(%q): %w", format, ErrUnknownFormat)
}
