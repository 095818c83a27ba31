// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/graphalign/internal/problem"
)

const (
	outputAuto  = "auto"
	outputTable = "table"
)

// format resolves --output; "" means table.
func (a *app) format() (problem.Format, error) {
	switch a.in.Output {
	case outputTable:
		return "", nil
	case outputAuto:
		if isTerminal(a.stdout) {
			return "", nil
		}

		return problem.FormatYAML, nil
	}

	return problem.ParseFormat(a.in.Output)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// emit prints results: one document for a single result, a list otherwise.
func (a *app) emit(results []any) error {
	f, err := a.format()
	if err != nil {
		return err
	}
	if f == "" {
		for _, r := range results {
			if err = writeTable(a.stdout, r); err != nil {
				return err
			}
		}

		return nil
	}
	if len(results) == 1 {
		return problem.Write(a.stdout, f, results[0])
	}

	return problem.Write(a.stdout, f, results)
}

func writeTable(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch r := v.(type) {
	case problem.Solution:
		header(tw, r.File)
		fmt.Fprintf(tw, "row\tcol\tu\tv[col]\n")
		for i, j := range r.RowSol {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", i, j, r.U[i], r.V[j])
		}
		fmt.Fprintf(tw, "cost\t%d\n", r.Cost)
	case problem.Alignment:
		header(tw, r.File)
		fmt.Fprintf(tw, "a-node\tb-node\n")
		for j, i := range r.Permutation {
			fmt.Fprintf(tw, "%d\t%d\n", j, i)
		}
		fmt.Fprintf(tw, "score\t%g\ncost\t%d\niterations\t%d\nconverged\t%t\n",
			r.Score, r.Cost, r.Iterations, r.Converged)
	case problem.ScoreMatrix:
		header(tw, r.File)
		grid(tw, "m", r.M)
		grid(tw, "link", r.Link)
		grid(tw, "self_link", r.SelfLink)
		grid(tw, "node", r.Node)
	case problem.Encoded:
		header(tw, r.File)
		grid(tw, "matrix", r.Matrix)
	default:
		return fmt.Errorf("no table layout for %T", v)
	}

	return tw.Flush()
}

func header(w io.Writer, file string) {
	if file != "" {
		fmt.Fprintf(w, "# %s\n", file)
	}
}

func grid(w io.Writer, name string, rows [][]float64) {
	if rows == nil {
		return
	}
	fmt.Fprintf(w, "%s:\n", name)
	cells := make([]string, 0, 8)
	for _, row := range rows {
		cells = cells[:0]
		for _, v := range row {
			cells = append(cells, strconv.FormatFloat(v, 'g', -1, 64))
		}
		fmt.Fprintf(w, "%s\t\n", strings.Join(cells, "\t"))
	}
}
