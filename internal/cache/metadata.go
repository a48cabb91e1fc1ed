package cache

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// BuildOptions are the compiler flags that participate in a cache key's
// fingerprint alongside file content (spec.md §4.4,
// original_source/src/cache/metadata.rs's CacheBuildOptions).
type BuildOptions struct {
	Release bool `toml:"release"`
	LTO     bool `toml:"lto"`
	EmitIR  bool `toml:"emit_ir"`
}

// Fingerprint renders the options into the stable string folded into the
// cache key's hash.
func (o BuildOptions) Fingerprint() string {
	return fmt.Sprintf("release=%t::lto=%t::emit_ir=%t", o.Release, o.LTO, o.EmitIR)
}

// Metadata is one cache entry's persisted record, written as TOML
// alongside the binary it describes (original_source's CacheMetadata,
// adapted from YAML to TOML since the teacher's go.mod carries
// pelletier/go-toml/v2 rather than a YAML library — see DESIGN.md).
type Metadata struct {
	Key              string       `toml:"key"`
	CreatedAt        time.Time    `toml:"created_at"`
	CompilerVersion  string       `toml:"compiler_version"`
	ToolchainVersion string       `toml:"toolchain_version"`
	Source           string       `toml:"source"`
	Imports          []string     `toml:"imports"`
	BinaryPath       string       `toml:"binary_path"`
	BinarySize       int64        `toml:"binary_size"`
	BuildTimeMs      int64        `toml:"build_time_ms"`
	Options          BuildOptions `toml:"options"`
	LinkedCrates     []string     `toml:"linked_crates"`
}

// FileStem is the basename metadata/binary files share, identical to Key.
func (m Metadata) FileStem() string { return m.Key }

// WriteTOML serializes m to path.
func (m Metadata) WriteTOML(path string) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("cache: marshaling metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadMetadata reads and parses a Metadata record from path.
func ReadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, err
	}
	var m Metadata
	if err := toml.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("cache: unmarshaling metadata %s: %w", path, err)
	}
	return m, nil
}

// BinarySize stats a cached binary's size in bytes.
func BinarySize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
