package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	m, err := parse("")
	require.NoError(t, err)
	assert.Equal(t, Manifest{}, m)
}

func TestParse_ProjectAndBuild(t *testing.T) {
	content := `
project {
    name "demo"
}
build {
    release true
    lto true
}
cache_dir "/tmp/otter_cache"
toolchain_version "0.1.0"
`
	m, err := parse(content)
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Project.Name)
	assert.True(t, m.Build.Release)
	assert.True(t, m.Build.LTO)
	assert.False(t, m.Build.EmitIR)
	assert.Equal(t, "/tmp/otter_cache", m.CacheDir)
	assert.Equal(t, "0.1.0", m.ToolchainVersion)
}

func TestLoad_MissingFileReturnsZeroValue(t *testing.T) {
	m, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Manifest{}, m)
}

func TestLoad_ReadsManifestFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFileName), []byte(`
project {
    name "on-disk"
}
`), 0o644))

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "on-disk", m.Project.Name)
}

func TestManifest_BuildOptions(t *testing.T) {
	m := Manifest{}
	m.Build.Release = true
	m.Build.EmitIR = true

	opts := m.BuildOptions()
	assert.True(t, opts.Release)
	assert.False(t, opts.LTO)
	assert.True(t, opts.EmitIR)
}
