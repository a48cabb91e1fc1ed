package cache

import (
	"context"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Ottrlang/otterlang/internal/ottererr"
)

// Key identifies one cache entry: the hex-encoded SHA-1 fingerprint of its
// inputs, build options, and compiler version (spec.md §4.4).
type Key string

// Inputs is the set of files that participate in one compilation: the
// primary source plus every transitively used module.
type Inputs struct {
	Primary string
	Imports []string
}

// AllFiles returns every input path, primary first.
func (in Inputs) AllFiles() []string {
	files := make([]string, 0, 1+len(in.Imports))
	files = append(files, in.Primary)
	files = append(files, in.Imports...)
	return files
}

// Entry is one resolved cache hit: its key, metadata, and the binary path
// the metadata claims.
type Entry struct {
	Key        Key
	Metadata   Metadata
	BinaryPath string
}

// Manager owns the on-disk cache layout (binaries/ + metadata/ under a
// root directory) plus an in-memory Accelerator in front of it.
// Grounded on original_source/src/cache/manager.rs's CacheManager.
type Manager struct {
	root        string
	binariesDir string
	metadataDir string
	accel       *Accelerator
}

// NewManager resolves the cache root, ensures its directory structure
// exists, and returns a ready Manager.
func NewManager() (*Manager, error) {
	root, err := Root()
	if err != nil {
		return nil, &ottererr.CacheError{Op: "resolve-root", Underlying: err}
	}
	if err := EnsureStructure(root); err != nil {
		return nil, &ottererr.CacheError{Op: "ensure-structure", Underlying: err}
	}
	return &Manager{
		root:        root,
		binariesDir: BinariesDir(root),
		metadataDir: MetadataDir(root),
		accel:       NewAccelerator(0),
	}, nil
}

// CacheRoot returns the resolved cache root directory.
func (m *Manager) CacheRoot() string { return m.root }

// BinaryPath returns where key's compiled artifact lives on disk.
func (m *Manager) BinaryPath(key Key) string {
	return filepath.Join(m.binariesDir, string(key)+envSuffix())
}

// MetadataPath returns where key's metadata record lives on disk.
func (m *Manager) MetadataPath(key Key) string {
	return filepath.Join(m.metadataDir, string(key)+".toml")
}

// Fingerprint computes the cache key for inputs under options, built with
// compilerVersion. Files are canonicalized, sorted, and deduplicated before
// hashing so that input order and relative-path differences never change
// the key (spec.md §4.4). Per-file SHA-1 digests are computed in parallel
// via errgroup, bounded to avoid unbounded fan-out on large import sets.
func (m *Manager) Fingerprint(ctx context.Context, inputs Inputs, options BuildOptions, compilerVersion string) (Key, error) {
	files, err := canonicalizeSortDedup(inputs.AllFiles())
	if err != nil {
		return "", &ottererr.CacheError{Op: "canonicalize", Underlying: err}
	}

	digests := make([][]byte, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			digest, err := hashFile(path)
			if err != nil {
				return err
			}
			digests[i] = digest
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", &ottererr.CacheError{Op: "hash-inputs", Underlying: err}
	}

	hasher := sha1.New()
	for i, path := range files {
		hasher.Write([]byte(path))
		hasher.Write(digests[i])
	}
	hasher.Write([]byte(options.Fingerprint()))
	hasher.Write([]byte(compilerVersion))

	return Key(fmt.Sprintf("%x", hasher.Sum(nil))), nil
}

func hashFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s for hashing: %w", path, err)
	}
	sum := sha1.Sum(data)
	return sum[:], nil
}

func canonicalizeSortDedup(paths []string) ([]string, error) {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing %s: %w", p, err)
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err == nil {
			abs = resolved
		}
		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
	}
	sort.Strings(out)
	return out, nil
}

// Lookup resolves key to a cache Entry, checking the in-memory accelerator
// first. A metadata record whose claimed binary is missing from disk is
// treated as a miss rather than an error — stores are not atomic across
// the metadata and binary files, and lookup compensates for a crash
// between the two writes by rechecking artifact existence (spec.md §4.4,
// §7).
func (m *Manager) Lookup(key Key) (*Entry, error) {
	if entry, ok := m.accel.Get(string(key)); ok {
		if _, err := os.Stat(entry.BinaryPath); err == nil {
			return entry, nil
		}
		m.accel.entries.Delete(hashKey(string(key)))
	}

	metadataPath := m.MetadataPath(key)
	if _, err := os.Stat(metadataPath); os.IsNotExist(err) {
		return nil, nil
	}

	metadata, err := ReadMetadata(metadataPath)
	if err != nil {
		return nil, &ottererr.CacheError{Op: "read-metadata", Underlying: err}
	}

	if _, err := os.Stat(metadata.BinaryPath); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, &ottererr.CacheError{Op: "stat-binary", Underlying: err}
	}

	entry := &Entry{Key: key, Metadata: metadata, BinaryPath: metadata.BinaryPath}
	m.accel.Put(string(key), entry)
	return entry, nil
}

// Store persists metadata to disk and mirrors the resulting entry into the
// accelerator. The caller is responsible for having already written the
// binary at metadata.BinaryPath before calling Store (spec.md §4.4: "Write
// metadata after the artifact is on disk").
func (m *Manager) Store(metadata Metadata) error {
	metadataPath := m.MetadataPath(Key(metadata.Key))
	if err := metadata.WriteTOML(metadataPath); err != nil {
		return &ottererr.CacheError{Op: "write-metadata", Underlying: err}
	}
	m.accel.Put(metadata.Key, &Entry{
		Key:        Key(metadata.Key),
		Metadata:   metadata,
		BinaryPath: metadata.BinaryPath,
	})
	return nil
}
