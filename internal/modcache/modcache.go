// Package modcache is a content-addressed cache of parsed circuit
// summaries (module names, port signatures, and referenced
// sub-modules), keyed by a blake2b hash of a source file's text as
// read, so repeated tool runs over an unchanged source tree can skip
// re-parsing. Backed by the pure-Go modernc.org/sqlite driver.
package modcache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"

	_ "modernc.org/sqlite"
)

// PortSignature is one port's name, direction, and rendered type, the
// unit a Summary records per module.
type PortSignature struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Type      string `json:"type"`
}

// Summary is the cached shape of one parsed module: just enough to
// answer moddep-style queries without holding the full AST.
type Summary struct {
	Name       string          `json:"name"`
	Ports      []PortSignature `json:"ports"`
	Referenced []string        `json:"referenced"`
}

// Cache wraps a sqlite-backed store of module summaries keyed by the
// blake2b-256 hash of the source text they were parsed from.
type Cache struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (creating if necessary) a cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("modcache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("modcache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS modules (
	hash TEXT PRIMARY KEY,
	summary TEXT NOT NULL
);
`

// Hash returns the cache key for a file's source text.
func Hash(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum)
}

// Lookup returns the cached Summary list for text's hash, if present.
// text is a whole file's source (every module it declares shares one
// cache entry, since a moddep run wants them all or none).
func (c *Cache) Lookup(text string) ([]Summary, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var raw string
	err := c.db.QueryRow("SELECT summary FROM modules WHERE hash = ?", Hash(text)).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("modcache: lookup: %w", err)
	}
	var s []Summary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, false, fmt.Errorf("modcache: decode cached summary: %w", err)
	}
	return s, true, nil
}

// Store caches summaries under text's hash, overwriting any prior entry.
func (c *Cache) Store(text string, summaries []Summary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("modcache: encode summary: %w", err)
	}
	_, err = c.db.Exec("INSERT INTO modules (hash, summary) VALUES (?, ?) ON CONFLICT(hash) DO UPDATE SET summary = excluded.summary", Hash(text), string(raw))
	if err != nil {
		return fmt.Errorf("modcache: store: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }
