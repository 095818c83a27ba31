// SPDX-License-Identifier: MIT

// Package cli implements the graphalign command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphalign/scratch"
)

// Input holds the flags shared by every subcommand.
type Input struct {
	Verbose   bool
	LogFormat string
	Output    string
	Jobs      int
}

// app is the state a subcommand runs with.
type app struct {
	in     *Input
	stdout io.Writer
	logger *log.Logger
	pool   *scratch.Pool // solver buffers shared by concurrent files
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing results to stdout and logs to stderr.
func NewRootCommand(version string, stdout, stderr io.Writer) *cobra.Command {
	in := &Input{}
	a := &app{in: in, stdout: stdout, logger: log.New(), pool: scratch.NewPool()}
	a.logger.SetOutput(stderr)

	rootCmd := &cobra.Command{
		Use:               "graphalign",
		Short:             "Align weighted networks and solve linear assignment problems.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().BoolVarP(&in.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&in.LogFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringVarP(&in.Output, "output", "o", outputAuto, "result format: auto, table, yaml or json")
	rootCmd.PersistentFlags().IntVarP(&in.Jobs, "jobs", "j", runtime.NumCPU(), "number of input files processed concurrently")

	rootCmd.AddCommand(
		newSolveCommand(a),
		newScoreCommand(a),
		newAlignCommand(a),
		newEncodeCommand(a),
	)

	return rootCmd
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	if a.in.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	switch a.in.LogFormat {
	case "text":
		a.logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		a.logger.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", a.in.LogFormat)
	}
	if a.in.Jobs < 1 {
		return fmt.Errorf("--jobs must be >= 1, got %d", a.in.Jobs)
	}
	if _, err := a.format(); err != nil {
		return err
	}
	a.logger.Debugf("graphalign: output=%s jobs=%d", a.in.Output, a.in.Jobs)

	return nil
}
