// SPDX-License-Identifier: MIT

package cli

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphalign/diag"
)

// fileFunc processes one input file.
type fileFunc func(ctx context.Context, path string, report diag.Reporter) (any, error)

// forEachFile runs fn over files with at most a.in.Jobs in flight and returns
// the results in argument order. The first failure cancels the rest.
func (a *app) forEachFile(ctx context.Context, files []string, fn fileFunc) ([]any, error) {
	results := make([]any, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.in.Jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := a.logger.WithFields(log.Fields{"file": path})
			entry.Debug("processing")
			r, err := fn(ctx, path, diag.NewLogrus(entry))
			if err != nil {
				return err
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// runFiles is forEachFile followed by printing.
func (a *app) runFiles(ctx context.Context, files []string, fn fileFunc) error {
	results, err := a.forEachFile(ctx, files, fn)
	if err != nil {
		return err
	}

	return a.emit(results)
}
