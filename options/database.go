// Package options implements the nixdoc.DocSource contract on top of
// the options.json documents exported by NixOS, nix-darwin and
// home-manager.
package options

import (
	"context"
	"encoding/json"
	"os"

	"github.com/fwojciec/nixdoc"
)

// Compile-time interface verification.
var (
	_ nixdoc.DocSource = (*Database)(nil)
	_ nixdoc.Cache     = (*Database)(nil)
)

// Database answers option documentation queries for a single source.
// The option mapping is its only mutable state; it starts empty and is
// replaced wholesale on each successful Update.
type Database struct {
	source   nixdoc.Source
	resolver nixdoc.PathResolver
	store    nixdoc.CacheStore
	options  map[string]nixdoc.OptionDocumentation
}

// New creates an empty Database for the given source. The resolver
// locates the source's options.json on Update. store may be nil, in
// which case the Cache capability is unavailable.
func New(source nixdoc.Source, resolver nixdoc.PathResolver, store nixdoc.CacheStore) *Database {
	return &Database{
		source:   source,
		resolver: resolver,
		store:    store,
		options:  make(map[string]nixdoc.OptionDocumentation),
	}
}

// Source returns the source this database was constructed for.
func (d *Database) Source() nixdoc.Source {
	return d.source
}

// AllKeys returns every known dotted name, in no particular order.
func (d *Database) AllKeys() []string {
	keys := make([]string, 0, len(d.options))
	for key := range d.options {
		keys = append(keys, key)
	}
	return keys
}

// Search returns entries whose key starts with query, case-insensitively.
func (d *Database) Search(query nixdoc.Lowercase) []nixdoc.DocEntry {
	var entries []nixdoc.DocEntry
	for key, opt := range d.options {
		if nixdoc.StartsWithInsensitive([]byte(key), query) {
			entries = append(entries, nixdoc.DocEntry{Source: d.source, Option: opt})
		}
	}
	return entries
}

// SearchLiberal returns entries whose key contains query anywhere,
// case-insensitively.
func (d *Database) SearchLiberal(query nixdoc.Lowercase) []nixdoc.DocEntry {
	var entries []nixdoc.DocEntry
	for key, opt := range d.options {
		if nixdoc.ContainsInsensitive([]byte(key), query) {
			entries = append(entries, nixdoc.DocEntry{Source: d.source, Option: opt})
		}
	}
	return entries
}

// Update re-fetches the source's options document and replaces the
// mapping. Returns true if the key set is unchanged from before the
// call. On any failure the previous mapping is left untouched.
func (d *Database) Update(ctx context.Context) (bool, error) {
	path, err := d.resolver.Resolve(ctx, d.source)
	if err != nil {
		return false, err
	}

	opts, err := ReadFile(path)
	if err != nil {
		return false, err
	}

	old := d.options
	d.options = opts

	return sameKeys(old, opts), nil
}

// LoadCached replaces the mapping with the persisted snapshot.
func (d *Database) LoadCached(ctx context.Context) error {
	if d.store == nil {
		return nixdoc.Errorf(nixdoc.EINVALID, "no cache store configured for %s", d.source)
	}

	opts, err := d.store.LoadOptions(ctx, d.source)
	if err != nil {
		return err
	}

	d.options = opts
	return nil
}

// SaveCache persists the current mapping.
func (d *Database) SaveCache(ctx context.Context) error {
	if d.store == nil {
		return nixdoc.Errorf(nixdoc.EINVALID, "no cache store configured for %s", d.source)
	}
	return d.store.SaveOptions(ctx, d.source, d.options)
}

// ReadFile reads an options.json document into a mapping. The parse is
// strict and all-or-nothing: a single record missing its location or
// type fails the whole document.
func ReadFile(path string) (map[string]nixdoc.OptionDocumentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nixdoc.Errorf(nixdoc.EPARSE, "failed to read options document: %s", err)
	}

	var opts map[string]nixdoc.OptionDocumentation
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, nixdoc.Errorf(nixdoc.EPARSE, "failed to decode options document: %s", err)
	}

	for key, opt := range opts {
		if err := opt.Validate(); err != nil {
			return nil, nixdoc.Errorf(nixdoc.EPARSE, "option %q: %s", key, nixdoc.ErrorMessage(err))
		}
	}

	return opts, nil
}

func sameKeys(a, b map[string]nixdoc.OptionDocumentation) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}
