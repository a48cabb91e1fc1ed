// Package config loads the optional otter.kdl project manifest (spec.md
// §1's ambient configuration, grounded on the teacher's
// internal/config/kdl_config.go): defaults for cache build options, an
// optional cache_dir, and a toolchain version string. The driver folds the
// build options into the cache fingerprint and records the toolchain
// version in cache metadata (not in the fingerprint); it does not consult
// CacheDir, so the cache root comes from internal/cache alone.
package config

import (
	"github.com/Ottrlang/otterlang/internal/cache"
)

// Manifest is the parsed content of an otter.kdl file. Every field is
// optional; a missing or absent file yields a zero-value Manifest whose
// Release/LTO/EmitIR mirror the CLI's own defaults and whose CacheDir/
// ToolchainVersion are empty (meaning: use the driver's own default).
type Manifest struct {
	Project struct {
		Name string
	}
	Build struct {
		Release bool
		LTO     bool
		EmitIR  bool
	}
	CacheDir         string
	ToolchainVersion string
}

// BuildOptions renders m's build block as the cache.BuildOptions record the
// fingerprint hashes over.
func (m Manifest) BuildOptions() cache.BuildOptions {
	return cache.BuildOptions{
		Release: m.Build.Release,
		LTO:     m.Build.LTO,
		EmitIR:  m.Build.EmitIR,
	}
}
