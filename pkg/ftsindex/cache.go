package ftsindex

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofrs/flock"

	kmerrors "github.com/Aman-CERP/keymatch/internal/errors"
)

// Fingerprint returns a deterministic content hash over the set of
// extracted search keys. The hash is order-independent and collapses
// duplicates, so two datasets holding the same distinct keys in a
// different order (or with repeats) share one cached index. That aliasing
// is intentional: a permanent cache keyed on content, at the cost of
// treating such datasets as identical.
func Fingerprint(keys []string) string {
	unique := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		unique[k] = struct{}{}
	}
	sorted := make([]string, 0, len(unique))
	for k := range unique {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	h := sha256.New()
	for _, k := range sorted {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Cache maps dataset fingerprints to persisted index files inside a
// writable directory supplied by the hosting environment. Entries are
// created lazily on first use and never invalidated: an existing index is
// reused unconditionally for the lifetime of the directory.
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir. The directory is created on
// first build.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Path returns the index file location for a fingerprint.
func (c *Cache) Path(fingerprint string) string {
	return filepath.Join(c.dir, "idx-"+fingerprint[:16]+".db")
}

// GetOrBuild returns the index path for fingerprint, invoking build first
// if the index does not exist yet. A file lock serializes concurrent
// builders across processes, so a reader never observes a half-built
// index. The returned bool reports whether build ran.
func (c *Cache) GetOrBuild(fingerprint string, build func(path string) error) (string, bool, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", false, kmerrors.New(kmerrors.ErrCodeCacheDir, "create cache directory "+c.dir, err)
	}

	path := c.Path(fingerprint)
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return "", false, kmerrors.New(kmerrors.ErrCodeCacheDir, "lock index build", err)
	}
	defer func() { _ = lock.Unlock() }()

	if _, err := os.Stat(path); err == nil {
		slog.Debug("index_cache_hit", slog.String("path", path))
		return path, false, nil
	}

	slog.Debug("index_build", slog.String("path", path))
	if err := build(path); err != nil {
		// Remove the partial index so the next caller rebuilds.
		_ = os.Remove(path)
		return "", false, kmerrors.New(kmerrors.ErrCodeIndexBuild, "build index at "+path, err)
	}
	return path, true, nil
}
