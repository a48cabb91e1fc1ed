package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, EnsureStructure(root))
	return &Manager{
		root:        root,
		binariesDir: BinariesDir(root),
		metadataDir: MetadataDir(root),
		accel:       NewAccelerator(0),
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFingerprint_StableUnderInputOrder(t *testing.T) {
	mgr := newTestManager(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.otter", "fn a():\n    return 1\n")
	b := writeFile(t, dir, "b.otter", "fn b():\n    return 2\n")

	opts := BuildOptions{Release: true}
	k1, err := mgr.Fingerprint(context.Background(), Inputs{Primary: a, Imports: []string{b}}, opts, "otter-0.1")
	require.NoError(t, err)
	k2, err := mgr.Fingerprint(context.Background(), Inputs{Primary: a, Imports: []string{b, b}}, opts, "otter-0.1")
	require.NoError(t, err)
	assert.Equal(t, k1, k2, "duplicate imports must dedup to the same key")
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	mgr := newTestManager(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.otter", "fn a():\n    return 1\n")

	opts := BuildOptions{}
	k1, err := mgr.Fingerprint(context.Background(), Inputs{Primary: a}, opts, "otter-0.1")
	require.NoError(t, err)

	writeFile(t, dir, "a.otter", "fn a():\n    return 2\n")
	k2, err := mgr.Fingerprint(context.Background(), Inputs{Primary: a}, opts, "otter-0.1")
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestFingerprint_ChangesWithBuildOptions(t *testing.T) {
	mgr := newTestManager(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "a.otter", "fn a():\n    return 1\n")

	k1, err := mgr.Fingerprint(context.Background(), Inputs{Primary: a}, BuildOptions{Release: false}, "otter-0.1")
	require.NoError(t, err)
	k2, err := mgr.Fingerprint(context.Background(), Inputs{Primary: a}, BuildOptions{Release: true}, "otter-0.1")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestLookup_MissWhenAbsent(t *testing.T) {
	mgr := newTestManager(t)
	entry, err := mgr.Lookup(Key("deadbeef"))
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestStoreThenLookup_Hit(t *testing.T) {
	mgr := newTestManager(t)
	binPath := filepath.Join(mgr.binariesDir, "abc123")
	require.NoError(t, os.WriteFile(binPath, []byte("binary"), 0o755))

	meta := Metadata{
		Key:             "abc123",
		CreatedAt:       time.Now(),
		CompilerVersion: "otter-0.1",
		BinaryPath:      binPath,
	}
	require.NoError(t, mgr.Store(meta))

	entry, err := mgr.Lookup(Key("abc123"))
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, binPath, entry.BinaryPath)
}

func TestLookup_MissingBinaryCompensatesAsMiss(t *testing.T) {
	mgr := newTestManager(t)
	meta := Metadata{
		Key:             "ghost",
		CreatedAt:       time.Now(),
		CompilerVersion: "otter-0.1",
		BinaryPath:      filepath.Join(mgr.binariesDir, "ghost-binary-never-written"),
	}
	require.NoError(t, mgr.Store(meta))

	entry, err := mgr.Lookup(Key("ghost"))
	require.NoError(t, err)
	assert.Nil(t, entry, "metadata with a missing binary must resolve as a miss, not an error")
}

func TestAccelerator_HitsAfterPut(t *testing.T) {
	a := NewAccelerator(0)
	entry := &Entry{Key: "k", BinaryPath: "/tmp/whatever"}
	a.Put("k", entry)

	got, ok := a.Get("k")
	require.True(t, ok)
	assert.Same(t, entry, got)

	stats := a.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Stores)
}

func TestAccelerator_ExpiresAfterTTL(t *testing.T) {
	a := NewAccelerator(time.Millisecond)
	a.Put("k", &Entry{Key: "k"})
	time.Sleep(5 * time.Millisecond)

	_, ok := a.Get("k")
	assert.False(t, ok)
}
