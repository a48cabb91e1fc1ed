// Package cache implements OtterLang's content-addressed compilation
// artifact cache: fingerprinting, on-disk binaries/metadata layout, and an
// in-memory accelerator layer. Grounded on
// original_source/src/cache/{path,metadata,manager}.rs.
package cache

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvCacheDir overrides the cache root when set (spec.md §4.4).
const EnvCacheDir = "OTTER_CACHE_DIR"

// Root resolves the cache root directory: OTTER_CACHE_DIR if set, otherwise
// $HOME/.otter_cache (original_source/src/cache/path.rs's cache_root).
func Root() (string, error) {
	if custom := os.Getenv(EnvCacheDir); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".otter_cache"), nil
}

// BinariesDir is where compiled artifacts live under root.
func BinariesDir(root string) string { return filepath.Join(root, "binaries") }

// MetadataDir is where per-entry TOML metadata lives under root.
func MetadataDir(root string) string { return filepath.Join(root, "metadata") }

// EnsureStructure creates the binaries/ and metadata/ subdirectories.
func EnsureStructure(root string) error {
	if err := os.MkdirAll(BinariesDir(root), 0o755); err != nil {
		return err
	}
	return os.MkdirAll(MetadataDir(root), 0o755)
}

// envSuffix is the platform-specific executable suffix.
func envSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
