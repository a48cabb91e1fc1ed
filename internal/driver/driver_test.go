package driver

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ottrlang/otterlang/internal/cache"
)

func TestDefaultOutputPath_StripsExtension(t *testing.T) {
	assert.Equal(t, "/tmp/hello", defaultOutputPath("/tmp/hello.otter"))
}

func TestCopyArtifact_CreatesParentDirsAndCopiesBytes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bin")
	require.NoError(t, os.WriteFile(src, []byte("binary-content"), 0o755))

	dest := filepath.Join(dir, "nested", "deeper", "out")
	require.NoError(t, copyArtifact(src, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "binary-content", string(data))
}

// TestRun_CacheHit_SkipsCompilationAndExecutesCachedBinary pre-populates the
// cache with an entry fingerprinted exactly as Run would compute it, so Run
// takes the hit path and never lexes/parses/links — exercising spec.md §8's
// "cache coherence" invariant and the exit-code passthrough of §7 without
// requiring a system C compiler.
func TestRun_CacheHit_SkipsCompilationAndExecutesCachedBinary(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no /bin/sh available to stand in for a compiled artifact")
	}

	cacheRoot := t.TempDir()
	t.Setenv(cache.EnvCacheDir, cacheRoot)

	srcDir := t.TempDir()
	sourcePath := filepath.Join(srcDir, "hello.otter")
	require.NoError(t, os.WriteFile(sourcePath, []byte("fn main():\n    print(\"hi\")\n"), 0o644))

	mgr, err := cache.NewManager()
	require.NoError(t, err)

	key, err := mgr.Fingerprint(context.Background(), cache.Inputs{Primary: sourcePath}, cache.BuildOptions{}, CompilerVersion)
	require.NoError(t, err)

	binPath := filepath.Join(t.TempDir(), "cached-binary")
	require.NoError(t, os.WriteFile(binPath, []byte("#!/bin/sh\nexit 7\n"), 0o755))

	require.NoError(t, mgr.Store(cache.Metadata{
		Key:             string(key),
		CreatedAt:       time.Now(),
		CompilerVersion: CompilerVersion,
		BinaryPath:      binPath,
	}))

	var stdout, stderr bytes.Buffer
	result, err := Run(context.Background(), Options{
		Mode:       ModeRun,
		SourcePath: sourcePath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})
	require.NoError(t, err)
	assert.True(t, result.CacheHit)
	assert.Equal(t, 7, result.ExitCode)
}

// TestRun_ReleaseFlagChangesFingerprint confirms the Release+LTO
// BuildOptions that --release forces hash to a different fingerprint than
// the default options, so a release build cannot hit an entry stored under
// the non-release key — spec.md §8's "fingerprint sensitivity" invariant
// applied to the build-options field specifically.
func TestRun_ReleaseFlagChangesFingerprint(t *testing.T) {
	cacheRoot := t.TempDir()
	t.Setenv(cache.EnvCacheDir, cacheRoot)

	srcDir := t.TempDir()
	sourcePath := filepath.Join(srcDir, "hello.otter")
	require.NoError(t, os.WriteFile(sourcePath, []byte("fn main():\n    print(\"hi\")\n"), 0o644))

	mgr, err := cache.NewManager()
	require.NoError(t, err)

	plainKey, err := mgr.Fingerprint(context.Background(), cache.Inputs{Primary: sourcePath}, cache.BuildOptions{}, CompilerVersion)
	require.NoError(t, err)
	releaseKey, err := mgr.Fingerprint(context.Background(), cache.Inputs{Primary: sourcePath}, cache.BuildOptions{Release: true, LTO: true}, CompilerVersion)
	require.NoError(t, err)

	assert.NotEqual(t, plainKey, releaseKey)
}
