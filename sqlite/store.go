package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nixdoc"
)

// Compile-time interface verification.
var _ nixdoc.CacheStore = (*CacheStore)(nil)

// CacheStore implements nixdoc.CacheStore using SQLite. Each source's
// snapshot is replaced wholesale inside a single transaction, so a
// reader never observes a half-written option set.
type CacheStore struct {
	db *DB
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(db *DB) *CacheStore {
	return &CacheStore{db: db}
}

// hashOption computes xxHash of the record's JSON form and returns a hex string.
func hashOption(opt nixdoc.OptionDocumentation) string {
	data, _ := json.Marshal(opt)
	h := xxhash.Sum64(data)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// SaveOptions replaces the persisted mapping for a source. Rows whose
// content hash matches the stored one are left untouched, so an update
// that changed little rewrites little.
func (s *CacheStore) SaveOptions(ctx context.Context, source nixdoc.Source, opts map[string]nixdoc.OptionDocumentation) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	existing, err := s.storedHashes(ctx, tx, source)
	if err != nil {
		return err
	}

	savedAt := time.Now().UTC().Format(time.RFC3339)

	for name, opt := range opts {
		hash := hashOption(opt)

		prev, known := existing[name]
		delete(existing, name)
		if known && prev == hash {
			continue
		}

		loc, err := json.Marshal(opt.Location)
		if err != nil {
			return fmt.Errorf("failed to encode location for %q: %w", name, err)
		}

		if known {
			_, err = tx.ExecContext(ctx, `
				UPDATE options
				SET description = ?, read_only = ?, location = ?, option_type = ?, content_hash = ?, saved_at = ?
				WHERE source = ? AND name = ?
			`, opt.Description, opt.ReadOnly, string(loc), opt.OptionType, hash, savedAt, string(source), name)
		} else {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO options (source, name, description, read_only, location, option_type, content_hash, saved_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, string(source), name, opt.Description, opt.ReadOnly, string(loc), opt.OptionType, hash, savedAt)
		}
		if err != nil {
			return err
		}
	}

	// Whatever is left was removed from the source.
	for name := range existing {
		if _, err := tx.ExecContext(ctx, `DELETE FROM options WHERE source = ? AND name = ?`, string(source), name); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// storedHashes returns the content hash of every persisted row for a source.
func (s *CacheStore) storedHashes(ctx context.Context, tx *sql.Tx, source nixdoc.Source) (map[string]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT name, content_hash FROM options WHERE source = ?`, string(source))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hashes := make(map[string]string)
	for rows.Next() {
		var name, hash string
		if err := rows.Scan(&name, &hash); err != nil {
			return nil, err
		}
		hashes[name] = hash
	}
	return hashes, rows.Err()
}

// LoadOptions returns the persisted mapping for a source.
func (s *CacheStore) LoadOptions(ctx context.Context, source nixdoc.Source) (map[string]nixdoc.OptionDocumentation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description, read_only, location, option_type
		FROM options
		WHERE source = ?
	`, string(source))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	opts := make(map[string]nixdoc.OptionDocumentation)
	for rows.Next() {
		var name, location string
		var opt nixdoc.OptionDocumentation

		if err := rows.Scan(&name, &opt.Description, &opt.ReadOnly, &location, &opt.OptionType); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(location), &opt.Location); err != nil {
			return nil, fmt.Errorf("failed to decode location for %q: %w", name, err)
		}

		opts[name] = opt
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(opts) == 0 {
		return nil, nixdoc.Errorf(nixdoc.ENOTFOUND, "no cached options for %s", source)
	}

	return opts, nil
}
