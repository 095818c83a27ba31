// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphalign/internal/cli"
	"github.com/katalvlaran/graphalign/internal/problem"
	"github.com/katalvlaran/graphalign/matrix"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand("test", &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

const pathProblem = `
a: [[0, 1, 0], [1, 0, 1], [0, 1, 0]]
b: [[0, 1, 0], [1, 0, 1], [0, 1, 0]]
r: [[1, 0, 0], [0, 1, 0], [0, 0, 1]]
p: [1, 0, 2]
link_score: [[0, 0], [0, 1]]
self_link_score: [[0, 0], [0, 0]]
node_score1: [0, 10]
node_score2: [0, 0]
lookup_link: [0, 0.5, 1]
lookup_node: [0, 0.5, 1]
`

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "cost.yaml", "cost: [[1, 2, 3], [2, 4, 6], [3, 6, 9]]\n")

	out, _, err := run(t, "solve", "--verify", "-o", "yaml", f)
	require.NoError(t, err)

	var sol problem.Solution
	require.NoError(t, yaml.Unmarshal([]byte(out), &sol))
	assert.Equal(t, f, sol.File)
	assert.Equal(t, 10, sol.Cost)
	assert.Equal(t, []int{2, 1, 0}, sol.RowSol)
	assert.Equal(t, []int{2, 1, 0}, sol.ColSol)
}

func TestSolveManyFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "a.yaml", "cost: [[1, 2, 3], [2, 4, 6], [3, 6, 9]]\n"),
		writeFile(t, dir, "b.json", `{"cost": [[4, 1], [1, 4]]}`),
		writeFile(t, dir, "c.yaml", "cost: []\n"),
	}
	args := append([]string{"solve", "--jobs", "2", "--output", "json"}, files...)
	out, _, err := run(t, args...)
	require.NoError(t, err)

	var sols []problem.Solution
	require.NoError(t, json.Unmarshal([]byte(out), &sols))
	require.Len(t, sols, 3)
	for i, f := range files {
		assert.Equal(t, f, sols[i].File)
	}
	assert.Equal(t, 10, sols[0].Cost)
	assert.Equal(t, 2, sols[1].Cost)
	assert.Equal(t, 0, sols[2].Cost)
}

func TestSolveTableOutput(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "cost.yaml", "cost: [[4, 1], [1, 4]]\n")

	out, _, err := run(t, "solve", "-o", "table", f)
	require.NoError(t, err)
	assert.Contains(t, out, "# "+f)
	assert.Contains(t, out, "row")
	assert.Regexp(t, `cost\s+2`, out)
}

func TestSolveErrors(t *testing.T) {
	dir := t.TempDir()
	ragged := writeFile(t, dir, "ragged.yaml", "cost: [[1, 2], [3]]\n")

	_, _, err := run(t, "solve", ragged)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = run(t, "solve", filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "solve")
	require.Error(t, err) // at least one file

	_, _, err = run(t, "solve", "-o", "xml", ragged)
	require.ErrorIs(t, err, problem.ErrUnknownFormat)

	_, _, err = run(t, "solve", "--jobs", "0", ragged)
	require.Error(t, err)

	_, _, err = run(t, "solve", "--log-format", "xml", ragged)
	require.Error(t, err)
}

func TestAlignCommand(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "path.yaml", pathProblem)

	out, stderr, err := run(t, "align", "-o", "yaml", "--verbose", "--log-format", "json", f)
	require.NoError(t, err)

	var res problem.Alignment
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, []int{0, 1, 2}, res.Permutation)
	assert.Equal(t, 34.0, res.Score)
	assert.Equal(t, -34000, res.Cost)
	assert.Equal(t, 2, res.Iterations)
	assert.True(t, res.Converged)

	assert.Contains(t, stderr, `"file":"`+f+`"`)
	assert.Contains(t, stderr, "iteration=1")
}

func TestAlignCommandSingleRound(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "path.yaml", pathProblem)

	out, stderr, err := run(t, "align", "-o", "json", "--max-iter", "1", "--scale", "1", f)
	require.NoError(t, err)

	var res problem.Alignment
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Converged)
	assert.Equal(t, -31, res.Cost) // scored under the starting permutation
	assert.Contains(t, stderr, "no fixed point")

	_, _, err = run(t, "align", "--max-iter", "0", f)
	require.Error(t, err)
}

func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "path.yaml", pathProblem)

	out, _, err := run(t, "score", "-o", "yaml", "--components", f)
	require.NoError(t, err)

	var sm problem.ScoreMatrix
	require.NoError(t, yaml.Unmarshal([]byte(out), &sm))
	require.Len(t, sm.M, 3)
	require.Len(t, sm.Node, 3)
	for i := range sm.M {
		for j := range sm.M[i] {
			assert.Equal(t, sm.M[i][j], sm.Link[i][j]+sm.SelfLink[i][j]+sm.Node[i][j])
		}
	}

	out, _, err = run(t, "score", "-o", "table", f)
	require.NoError(t, err)
	assert.Contains(t, out, "m:")
	assert.NotContains(t, out, "link:")
}

func TestEncodeCommand(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "enc.yaml", "matrix: [[0, 1, 0], [0, 0, 1], [1, 0, 0]]\n")

	out, _, err := run(t, "encode", "-o", "yaml", f)
	require.NoError(t, err)

	var enc problem.Encoded
	require.NoError(t, yaml.Unmarshal([]byte(out), &enc))
	assert.Equal(t, [][]float64{{0, 1, -1}, {1, 0, 1}, {-1, 1, 0}}, enc.Matrix)
}
