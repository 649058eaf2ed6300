package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/nixdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	sources, err := deps.selectSources(c.Source)
	if err != nil {
		return err
	}

	query := nixdoc.NewLowercase(c.Query)

	var entries []nixdoc.DocEntry
	for _, source := range sources {
		if c.Liberal {
			entries = append(entries, deps.Sources[source].SearchLiberal(query)...)
			continue
		}
		entries = append(entries, deps.Sources[source].Search(query)...)
	}

	// Prefix search narrows fast but misses mid-name fragments; fall
	// back to substring matching before declaring no results.
	if len(entries) == 0 && !c.Liberal {
		for _, source := range sources {
			entries = append(entries, deps.Sources[source].SearchLiberal(query)...)
		}
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "No options matching %q. Run 'nixdoc update' if the index may be stale.\n", c.Query)
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		ni, nj := entries[i].Option.Name(), entries[j].Option.Name()
		if ni != nj {
			return ni < nj
		}
		return entries[i].Source < entries[j].Source
	})

	for i := range entries {
		fmt.Fprint(deps.Stdout, entries[i].PrettyPrint())
	}

	return nil
}
