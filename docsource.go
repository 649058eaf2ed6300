package nixdoc

import "context"

// DocSource is the uniform contract satisfied by every documentation
// backend. Search operations answer purely from in-memory state and
// never trigger a fetch; callers that care about freshness call Update
// first.
type DocSource interface {
	// AllKeys returns every currently-known dotted name, in no
	// particular order. Empty before the first successful Update.
	AllKeys() []string

	// Search returns every entry whose key starts with query,
	// case-insensitively.
	Search(query Lowercase) []DocEntry

	// SearchLiberal returns every entry whose key contains query
	// anywhere, case-insensitively. Its results are a superset of
	// Search's for the same query. Intended as a fallback when Search
	// comes up empty.
	SearchLiberal(query Lowercase) []DocEntry

	// Update refreshes the backing data from the external source.
	// Returns true if the set of keys is unchanged from before the
	// call. A fetch or parse failure leaves the previous data intact.
	Update(ctx context.Context) (bool, error)
}

// Cache is an opt-in capability for sources that persist their dataset
// between runs. How the snapshot is stored is up to the CacheStore the
// source was constructed with.
type Cache interface {
	// LoadCached replaces the in-memory data with the persisted
	// snapshot. Returns ENOTFOUND if no snapshot exists.
	LoadCached(ctx context.Context) error

	// SaveCache persists the current in-memory data.
	SaveCache(ctx context.Context) error
}

// PathResolver resolves a filesystem path to the options.json document
// for a source. Implementations hide the external build invocation so
// search and aggregation logic can be tested against fixture files.
type PathResolver interface {
	Resolve(ctx context.Context, source Source) (string, error)
}

// CacheStore persists option mappings per source. Save replaces the
// stored snapshot for the source wholesale.
type CacheStore interface {
	// LoadOptions returns the persisted mapping for a source.
	// Returns ENOTFOUND if no snapshot has been saved.
	LoadOptions(ctx context.Context, source Source) (map[string]OptionDocumentation, error)

	// SaveOptions replaces the persisted mapping for a source.
	SaveOptions(ctx context.Context, source Source, opts map[string]OptionDocumentation) error
}
