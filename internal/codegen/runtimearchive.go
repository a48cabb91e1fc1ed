package codegen

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/Ottrlang/otterlang/internal/cache"
	"github.com/Ottrlang/otterlang/internal/ottererr"
)

// runtimeModulePath is cmd/otterruntime's import path: the cgo bridge that
// turns internal/runtimestd's pure-Go implementation into a linkable
// c-archive (see cmd/otterruntime/doc.go).
const runtimeModulePath = "github.com/Ottrlang/otterlang/cmd/otterruntime"

// runtimeSourceDirs lists every directory whose content participates in the
// c-archive's build: the bridge itself plus the internal packages it is
// compiled from. A change to internal/task's scheduler, for instance, must bust the
// cached archive exactly like a change to the bridge files would.
var runtimeSourceDirs = []string{
	"cmd/otterruntime",
	"internal/runtimestd",
	"internal/task",
	"internal/ffi",
	"internal/registry",
}

// moduleRoot locates the otterlang module's source tree on disk by walking
// up from this file's own path, which the Go toolchain embeds into the
// running binary at build time via runtime.Caller. This only resolves when
// the otter driver runs from within (or against) a checkout of its own
// source — precompiled, trimpath-built distributions would need the archive
// prebuilt and shipped instead. Documented as a known limitation in
// DESIGN.md.
func moduleRoot() (string, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("codegen: could not resolve own source path")
	}
	// this file lives at <root>/internal/codegen/runtimearchive.go
	root := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		return "", fmt.Errorf("codegen: locating module root from %s: %w", thisFile, err)
	}
	return root, nil
}

func collectGoFiles(root string, dirs []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		full := filepath.Join(root, dir)
		err := filepath.WalkDir(full, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if filepath.Ext(path) == ".go" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// buildRuntimeArchive returns the path to a static c-archive (and its
// accompanying generated header) exporting every cgo bridge symbol in
// cmd/otterruntime, building it with `go build -buildmode=c-archive` on a
// cache miss and reusing the on-disk copy otherwise. The archive is cached
// content-addressed by the same mechanism internal/cache uses for compiled
// OtterLang programs (spec.md §4.4), just under its own subdirectory so the
// two artifact kinds never collide.
func buildRuntimeArchive(ctx context.Context) (archivePath, headerPath string, err error) {
	root, err := moduleRoot()
	if err != nil {
		return "", "", &ottererr.LinkError{Underlying: err}
	}

	files, err := collectGoFiles(root, runtimeSourceDirs)
	if err != nil {
		return "", "", &ottererr.LinkError{Underlying: err}
	}
	if len(files) == 0 {
		return "", "", &ottererr.LinkError{Underlying: fmt.Errorf("codegen: no runtime bridge sources found under %v", runtimeSourceDirs)}
	}

	mgr, err := cache.NewManager()
	if err != nil {
		return "", "", &ottererr.LinkError{Underlying: err}
	}
	key, err := mgr.Fingerprint(ctx, cache.Inputs{Primary: files[0], Imports: files[1:]}, cache.BuildOptions{}, "runtime-archive-v1")
	if err != nil {
		return "", "", &ottererr.LinkError{Underlying: err}
	}

	dir := filepath.Join(mgr.CacheRoot(), "runtime-archive", string(key))
	archivePath = filepath.Join(dir, "libotterruntime.a")
	headerPath = filepath.Join(dir, "libotterruntime.h")
	if _, err := os.Stat(archivePath); err == nil {
		return archivePath, headerPath, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", &ottererr.LinkError{Underlying: err}
	}

	cmd := exec.CommandContext(ctx, "go", "build", "-buildmode=c-archive", "-o", archivePath, runtimeModulePath)
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", "", &ottererr.LinkError{Underlying: err, Output: string(out)}
	}
	return archivePath, headerPath, nil
}
