package main

import (
	"context"
	"io"

	"github.com/fwojciec/nixdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Sources map[nixdoc.Source]nixdoc.DocSource
	Caches  map[nixdoc.Source]nixdoc.Cache
}

// selectSources translates --source flag values into Sources, defaulting
// to all supported sources in display order.
func (d *Dependencies) selectSources(names []string) ([]nixdoc.Source, error) {
	if len(names) == 0 {
		return nixdoc.Sources(), nil
	}

	sources := make([]nixdoc.Source, 0, len(names))
	for _, name := range names {
		source, err := nixdoc.ParseSource(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Search SearchCmd `cmd:"" help:"Search options by dotted name"`
	Update UpdateCmd `cmd:"" help:"Refresh option documentation from Nix"`
	Keys   KeysCmd   `cmd:"" help:"List all known option names"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string   `arg:"" help:"Option name or fragment to search for"`
	Liberal bool     `short:"l" help:"Match the query anywhere in the name, not just at the start"`
	Source  []string `short:"s" help:"Limit to sources (nixos, nix-darwin, home-manager; repeatable)"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	Source []string `short:"s" help:"Limit to sources (nixos, nix-darwin, home-manager; repeatable)"`
}

// KeysCmd is the "keys" subcommand.
type KeysCmd struct {
	Source []string `short:"s" help:"Limit to sources (nixos, nix-darwin, home-manager; repeatable)"`
}
