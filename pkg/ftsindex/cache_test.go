package ftsindex

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := Fingerprint([]string{"alpha", "beta", "gamma"})
	b := Fingerprint([]string{"gamma", "alpha", "beta"})

	assert.Equal(t, a, b)
}

func TestFingerprint_DuplicatesCollapse(t *testing.T) {
	a := Fingerprint([]string{"alpha", "beta"})
	b := Fingerprint([]string{"beta", "alpha", "beta", "beta"})

	assert.Equal(t, a, b)
}

func TestFingerprint_DistinguishesContent(t *testing.T) {
	a := Fingerprint([]string{"alpha", "beta"})
	b := Fingerprint([]string{"alpha", "gamma"})

	assert.NotEqual(t, a, b)
}

func TestCache_GetOrBuild_BuildsOnce(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "indexes"))
	fp := Fingerprint([]string{"alpha", "beta"})

	builds := 0
	builder := func(path string) error {
		builds++
		return os.WriteFile(path, []byte("index"), 0o644)
	}

	path, built, err := cache.GetOrBuild(fp, builder)
	require.NoError(t, err)
	assert.True(t, built)
	assert.FileExists(t, path)

	// Same fingerprint: the existing index is reused without content
	// verification, and the builder never runs again.
	path2, built2, err := cache.GetOrBuild(fp, builder)
	require.NoError(t, err)
	assert.False(t, built2)
	assert.Equal(t, path, path2)
	assert.Equal(t, 1, builds)
}

func TestCache_GetOrBuild_FailedBuildLeavesNoIndex(t *testing.T) {
	cache := NewCache(t.TempDir())
	fp := Fingerprint([]string{"alpha"})

	_, _, err := cache.GetOrBuild(fp, func(path string) error {
		_ = os.WriteFile(path, []byte("partial"), 0o644)
		return fmt.Errorf("boom")
	})
	require.Error(t, err)
	assert.NoFileExists(t, cache.Path(fp))

	// The next caller gets a clean rebuild.
	_, built, err := cache.GetOrBuild(fp, func(path string) error {
		return os.WriteFile(path, []byte("index"), 0o644)
	})
	require.NoError(t, err)
	assert.True(t, built)
}

func TestCache_PathDerivedFromFingerprint(t *testing.T) {
	cache := NewCache("/tmp/km")
	fp := Fingerprint([]string{"alpha"})

	path := cache.Path(fp)
	assert.Equal(t, filepath.Join("/tmp/km", "idx-"+fp[:16]+".db"), path)
}
