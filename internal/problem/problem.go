// SPDX-License-Identifier: MIT

// Package problem reads and writes the graphalign file formats.
//
// Every input file is YAML; JSON documents are accepted too since they are
// valid YAML. Keys use snake_case:
//
//	# solve
//	cost: [[1, 2, 3], [2, 4, 6], [3, 6, 9]]
//
//	# score / align
//	a: [[0, 1], [1, 0]]
//	b: [[0, 1], [1, 0]]
//	r: [[1, 0], [0, 1]]
//	p: [0, 1]            # optional, identity of max(|a|, |b|) when omitted
//	link_score: [[...]]
//	self_link_score: [[...]]
//	node_score1: [...]
//	node_score2: [...]
//	lookup_link: [...]
//	lookup_node: [...]
//	clamp: enabled       # or disabled (default)
//
//	# encode
//	matrix: [[0, 1], [0, 0]]
//	p: [1, 0]            # optional
package problem

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphalign/binning"
	"github.com/katalvlaran/graphalign/matrix"
	"github.com/katalvlaran/graphalign/permutation"
	"github.com/katalvlaran/graphalign/score"
)

// ErrEmptyDocument is returned when a file holds no YAML document.
var ErrEmptyDocument = errors.New("problem: empty document")

// CostFile is the solve input.
type CostFile struct {
	Cost [][]int `yaml:"cost" json:"cost"`
}

// ScoreFile is the score / align input.
type ScoreFile struct {
	A             [][]float64 `yaml:"a" json:"a"`
	B             [][]float64 `yaml:"b" json:"b"`
	R             [][]float64 `yaml:"r" json:"r"`
	P             []int       `yaml:"p,omitempty" json:"p,omitempty"`
	LinkScore     [][]float64 `yaml:"link_score" json:"link_score"`
	SelfLinkScore [][]float64 `yaml:"self_link_score" json:"self_link_score"`
	NodeScore1    []float64   `yaml:"node_score1" json:"node_score1"`
	NodeScore2    []float64   `yaml:"node_score2" json:"node_score2"`
	LookupLink    []float64   `yaml:"lookup_link" json:"lookup_link"`
	LookupNode    []float64   `yaml:"lookup_node" json:"lookup_node"`
	Clamp         string      `yaml:"clamp,omitempty" json:"clamp,omitempty"`
}

// EncodeFile is the encode input.
type EncodeFile struct {
	Matrix [][]float64 `yaml:"matrix" json:"matrix"`
	P      []int       `yaml:"p,omitempty" json:"p,omitempty"`
}

// Decode reads one YAML (or JSON) document from r into v.
func Decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyDocument
		}

		return err
	}

	return nil
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = Decode(f, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// LoadCost reads a solve input file.
func LoadCost(path string) (*matrix.IntDense, error) {
	var cf CostFile
	if err := decodeFile(path, &cf); err != nil {
		return nil, err
	}
	cost, err := cf.Matrix()
	if err != nil {
		return nil, fmt.Errorf("%s: cost: %w", path, err)
	}

	return cost, nil
}

// Matrix converts the cost rows; an absent cost is a 0×0 matrix.
func (cf CostFile) Matrix() (*matrix.IntDense, error) {
	return matrix.NewIntDenseFrom(cf.Cost)
}

// LoadProblem reads a score / align input file.
func LoadProblem(path string) (score.Input, error) {
	var sf ScoreFile
	if err := decodeFile(path, &sf); err != nil {
		return score.Input{}, err
	}
	in, err := sf.Input()
	if err != nil {
		return score.Input{}, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Input converts the file into a score.Input. A missing P becomes the
// identity over max(len(A), len(B)).
func (sf ScoreFile) Input() (score.Input, error) {
	var (
		in  score.Input
		err error
	)
	fields := []struct {
		name string
		rows [][]float64
		dst  **matrix.Dense
	}{
		{"a", sf.A, &in.A},
		{"b", sf.B, &in.B},
		{"r", sf.R, &in.R},
		{"link_score", sf.LinkScore, &in.LinkScore},
		{"self_link_score", sf.SelfLinkScore, &in.SelfLinkScore},
	}
	for _, f := range fields {
		if *f.dst, err = matrix.NewDenseFrom(f.rows); err != nil {
			return score.Input{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if err = binning.ValidateLookup(sf.LookupLink); err != nil {
		return score.Input{}, fmt.Errorf("lookup_link: %w", err)
	}
	if err = binning.ValidateLookup(sf.LookupNode); err != nil {
		return score.Input{}, fmt.Errorf("lookup_node: %w", err)
	}
	if in.Clamp, err = binning.ParseClampMode(sf.Clamp); err != nil {
		return score.Input{}, fmt.Errorf("clamp: %w", err)
	}

	in.P = sf.P
	if in.P == nil {
		in.P = permutation.Identity(max(len(sf.A), len(sf.B)))
	}
	in.NodeScore1, in.NodeScore2 = sf.NodeScore1, sf.NodeScore2
	in.LookupLink, in.LookupNode = sf.LookupLink, sf.LookupNode

	return in, nil
}

// LoadEncode reads an encode input file.
func LoadEncode(path string) (*matrix.Dense, []int, error) {
	var ef EncodeFile
	if err := decodeFile(path, &ef); err != nil {
		return nil, nil, err
	}
	m, err := matrix.NewDenseFrom(ef.Matrix)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: matrix: %w", path, err)
	}

	return m, ef.P, nil
}
