// SPDX-License-Identifier: MIT
package diag_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalign/diag"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", diag.LevelDebug.String())
	assert.Equal(t, "info", diag.LevelInfo.String())
	assert.Equal(t, "warning", diag.LevelWarning.String())
	assert.Equal(t, "error", diag.LevelError.String())
}

func TestRecorderAndHelpers(t *testing.T) {
	rec := &diag.Recorder{}
	diag.Reportf(rec, diag.LevelInfo, "round %d", 1)
	err := diag.Fail(rec, errors.New("boom"))
	require.EqualError(t, err, "boom")

	assert.Equal(t, []diag.Entry{
		{Message: "round 1", Level: diag.LevelInfo},
		{Message: "boom", Level: diag.LevelError},
	}, rec.Entries())
	assert.Equal(t, 1, rec.Count(diag.LevelError))
	assert.Equal(t, 0, rec.Count(diag.LevelWarning))

	// nil reporters and nil errors are no-ops
	diag.Reportf(nil, diag.LevelInfo, "ignored")
	require.NoError(t, diag.Fail(rec, nil))
	assert.Len(t, rec.Entries(), 2)
	assert.Equal(t, diag.Discard, diag.OrDiscard(nil))
}

func TestFunc(t *testing.T) {
	var got []string
	r := diag.Func(func(msg string, level diag.Level) { got = append(got, level.String()+":"+msg) })
	r.Report("hello", diag.LevelWarning)
	assert.Equal(t, []string{"warning:hello"}, got)
}

func TestNewLogrusLevels(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	r := diag.NewLogrus(l)
	r.Report("dbg", diag.LevelDebug)
	r.Report("inf", diag.LevelInfo)
	r.Report("wrn", diag.LevelWarning)
	r.Report("err", diag.LevelError)

	out := buf.String()
	assert.Contains(t, out, `level=debug msg=dbg`)
	assert.Contains(t, out, `level=info msg=inf`)
	assert.Contains(t, out, `level=warning msg=wrn`)
	assert.Contains(t, out, `level=error msg=err`)
}
