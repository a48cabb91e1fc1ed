package codegen

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Ottrlang/otterlang/internal/ottererr"
)

// LinkOptions controls the system C compiler invocation that turns
// generated C source into an executable (spec.md §4.4's BuildOptions,
// §4.5's "hand the object file to the system compiler" step).
type LinkOptions struct {
	Release    bool
	LTO        bool
	OutputPath string
}

// Link writes source to a temporary file, compiles it to an object file,
// and links that object — together with the cmd/otterruntime c-archive
// backing every __otter_*/std.*/task.*/... symbol the object references —
// into OutputPath using the system "cc". The temporary directory holding
// the C source and the intermediate object file is removed when Link
// returns, whether or not linking succeeded; a failure returns an
// *ottererr.LinkError.
func Link(ctx context.Context, source string, opts LinkOptions) error {
	archivePath, headerPath, err := buildRuntimeArchive(ctx)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "otterc-*")
	if err != nil {
		return &ottererr.LinkError{Underlying: err}
	}
	defer os.RemoveAll(tmpDir)

	srcPath := filepath.Join(tmpDir, "main.c")
	if err := os.WriteFile(srcPath, []byte(source), 0o644); err != nil {
		return &ottererr.LinkError{Underlying: err}
	}
	objPath := filepath.Join(tmpDir, "main.o")

	compileArgs := []string{"-c", srcPath, "-o", objPath, "-I", filepath.Dir(headerPath)}
	if opts.Release {
		compileArgs = append(compileArgs, "-O2")
	} else {
		compileArgs = append(compileArgs, "-O0", "-g")
	}
	if opts.LTO {
		compileArgs = append(compileArgs, "-flto")
	}
	if out, err := exec.CommandContext(ctx, "cc", compileArgs...).CombinedOutput(); err != nil {
		return &ottererr.LinkError{Underlying: err, Output: string(out)}
	}

	linkArgs := []string{objPath, archivePath, "-o", opts.OutputPath, "-lm", "-lpthread"}
	if opts.LTO {
		linkArgs = append(linkArgs, "-flto")
	}
	if out, err := exec.CommandContext(ctx, "cc", linkArgs...).CombinedOutput(); err != nil {
		return &ottererr.LinkError{Underlying: err, Output: string(out)}
	}

	os.Remove(objPath)
	return nil
}
