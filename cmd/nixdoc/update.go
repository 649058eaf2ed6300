package main

import (
	"fmt"

	"github.com/fwojciec/nixdoc"
	"golang.org/x/sync/errgroup"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	sources, err := deps.selectSources(c.Source)
	if err != nil {
		return err
	}

	// Each source owns its own database instance, so refreshes are
	// independent and run in parallel. One source failing must not
	// abort the others, so errors are collected per source instead of
	// propagated through the group.
	type result struct {
		unchanged bool
		err       error
	}
	results := make([]result, len(sources))

	var g errgroup.Group
	for i, source := range sources {
		g.Go(func() error {
			unchanged, err := deps.Sources[source].Update(deps.Ctx)
			results[i] = result{unchanged: unchanged, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var firstErr error
	for i, source := range sources {
		if results[i].err != nil {
			fmt.Fprintf(deps.Stderr, "%s: update failed: %s\n", source, nixdoc.ErrorMessage(results[i].err))
			if firstErr == nil {
				firstErr = results[i].err
			}
			continue
		}

		// Key-set equality says nothing about value-level changes, so
		// the snapshot is persisted either way.
		if err := deps.Caches[source].SaveCache(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "%s: failed to save cache: %s\n", source, nixdoc.ErrorMessage(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		status := "changed"
		if results[i].unchanged {
			status = "unchanged"
		}
		fmt.Fprintf(deps.Stdout, "%s: %d options (%s)\n", source, len(deps.Sources[source].AllKeys()), status)
	}

	return firstErr
}
