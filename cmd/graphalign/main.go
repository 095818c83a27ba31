// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/graphalign/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// run the command
	if err := cli.Execute(ctx, version); err != nil {
		cancel()
		os.Exit(1)
	}
}
