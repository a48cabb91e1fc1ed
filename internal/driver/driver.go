// Package driver wires the lexer, parser, code generator, cache, and linker
// into the single pipeline spec.md §4.8 describes: bootstrap the symbol
// registry, fingerprint the source, consult the cache, and either execute a
// hit directly or lex/parse/lower/link a miss before executing it. Grounded
// on the teacher's cmd/lci/main.go orchestration (load config, build the
// engine, dispatch by subcommand) retargeted from "index a repo" to "compile
// and run one source file".
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Ottrlang/otterlang/internal/cache"
	"github.com/Ottrlang/otterlang/internal/codegen"
	"github.com/Ottrlang/otterlang/internal/config"
	"github.com/Ottrlang/otterlang/internal/lexer"
	"github.com/Ottrlang/otterlang/internal/ottererr"
	"github.com/Ottrlang/otterlang/internal/parser"
	"github.com/Ottrlang/otterlang/internal/registry"

	// Blank-imported so its init() registers the std/task/json/net/runtime
	// provider with the registry package before Bootstrap runs — the driver
	// is the one process-wide place that needs every provider wired, unlike
	// codegen's own tests which register individual functions by hand.
	_ "github.com/Ottrlang/otterlang/internal/runtimestd"
)

// CompilerVersion is folded into every cache fingerprint (spec.md §4.4) so
// that upgrading the driver invalidates every previously cached artifact.
const CompilerVersion = "otterc-0.1"

// Mode selects run (execute immediately) vs. build (place the artifact at a
// caller-chosen path) per spec.md §6's two CLI subcommands.
type Mode int

const (
	ModeRun Mode = iota
	ModeBuild
)

// Options carries every driver-visible CLI flag (spec.md §6's global flags)
// plus the subcommand's own arguments.
type Options struct {
	Mode       Mode
	SourcePath string
	OutputPath string // ModeBuild only; empty means "derive from SourcePath"

	DumpTokens bool
	DumpAST    bool
	DumpIR     bool
	Time       bool
	Profile    bool
	Release    bool

	Tasks      bool
	TasksDebug bool
	TasksTrace bool

	Stdout io.Writer
	Stderr io.Writer
	Args   []string // forwarded to the executed program (ModeRun only)
}

// Result reports what happened, for a caller (cmd/otter) that needs to pick
// a process exit code without re-deriving it from Options.
type Result struct {
	CacheHit   bool
	BinaryPath string
	ExitCode   int
}

// Run executes one driver invocation end to end.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if err := registry.Bootstrap(registry.Global()); err != nil {
		return Result{}, fmt.Errorf("driver: bootstrapping registry: %w", err)
	}

	manifest, err := config.Load(filepath.Dir(opts.SourcePath))
	if err != nil {
		return Result{}, err
	}
	buildOpts := manifest.BuildOptions()
	if opts.Release {
		buildOpts.Release = true
		buildOpts.LTO = true
	}

	source, err := os.ReadFile(opts.SourcePath)
	if err != nil {
		return Result{}, &ottererr.CacheError{Op: "read-source", Underlying: err}
	}

	forceFresh := opts.DumpTokens || opts.DumpAST || opts.DumpIR

	mgr, err := cache.NewManager()
	if err != nil {
		return Result{}, err
	}

	inputs := cache.Inputs{Primary: opts.SourcePath}
	key, err := mgr.Fingerprint(ctx, inputs, buildOpts, CompilerVersion)
	if err != nil {
		return Result{}, err
	}

	if !forceFresh {
		entry, err := mgr.Lookup(key)
		if err != nil {
			return Result{}, err
		}
		if entry != nil {
			if opts.Profile {
				printProfile(opts.Stderr, entry.Metadata)
			}
			return finish(ctx, opts, Result{CacheHit: true, BinaryPath: entry.BinaryPath})
		}
	}

	start := time.Now()

	tokens, err := lexer.Lex(string(source))
	if err != nil {
		return Result{}, err
	}
	if opts.DumpTokens {
		dumpTokens(opts.Stdout, tokens)
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return Result{}, err
	}
	if opts.DumpAST {
		dumpAST(opts.Stdout, program)
	}

	compiler := codegen.NewCompiler(registry.Global())
	cSource, err := compiler.Compile(program)
	if err != nil {
		return Result{}, err
	}
	if opts.DumpIR {
		fmt.Fprintln(opts.Stdout, cSource)
	}

	binaryPath := mgr.BinaryPath(key)

	linkOpts := codegen.LinkOptions{
		Release:    buildOpts.Release,
		LTO:        buildOpts.LTO,
		OutputPath: binaryPath,
	}
	if err := codegen.Link(ctx, cSource, linkOpts); err != nil {
		return Result{}, err
	}

	size, err := cache.BinarySize(binaryPath)
	if err != nil {
		return Result{}, &ottererr.CacheError{Op: "stat-artifact", Underlying: err}
	}

	metadata := cache.Metadata{
		Key:              string(key),
		CreatedAt:        start,
		CompilerVersion:  CompilerVersion,
		ToolchainVersion: manifest.ToolchainVersion,
		Source:           absPathOrOriginal(opts.SourcePath),
		BinaryPath:       binaryPath,
		BinarySize:       size,
		BuildTimeMs:      time.Since(start).Milliseconds(),
		Options:          buildOpts,
	}
	if err := mgr.Store(metadata); err != nil {
		return Result{}, err
	}

	if opts.Time {
		fmt.Fprintf(opts.Stderr, "otter: compiled in %dms\n", metadata.BuildTimeMs)
	}
	if opts.Profile {
		printProfile(opts.Stderr, metadata)
	}

	return finish(ctx, opts, Result{CacheHit: false, BinaryPath: binaryPath})
}

// finish dispatches on Mode once a binary (fresh or cached) is on disk.
func finish(ctx context.Context, opts Options, result Result) (Result, error) {
	switch opts.Mode {
	case ModeBuild:
		dest := opts.OutputPath
		if dest == "" {
			dest = defaultOutputPath(opts.SourcePath)
		}
		if err := copyArtifact(result.BinaryPath, dest); err != nil {
			return result, err
		}
		result.BinaryPath = dest
		return result, nil

	case ModeRun:
		exitCode, err := execute(ctx, result.BinaryPath, opts)
		result.ExitCode = exitCode
		return result, err

	default:
		return result, fmt.Errorf("driver: unknown mode %v", opts.Mode)
	}
}

// defaultOutputPath strips SourcePath's extension, appending ".exe" on
// Windows (spec.md §6's "otter build" default-output rule).
func defaultOutputPath(sourcePath string) string {
	trimmed := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))]
	if runtime.GOOS == "windows" {
		return trimmed + ".exe"
	}
	return trimmed
}

func copyArtifact(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return &ottererr.CacheError{Op: "ensure-output-dir", Underlying: err}
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return &ottererr.CacheError{Op: "read-artifact", Underlying: err}
	}
	if err := os.WriteFile(dest, data, 0o755); err != nil {
		return &ottererr.CacheError{Op: "write-output", Underlying: err}
	}
	return nil
}

// execute runs binaryPath, forwarding opts.Args and the tasks-diagnostics
// environment variables spec.md §6's Environment section names, and
// returns the child's own exit code rather than treating it as an error
// (spec.md §7: "non-zero on an executed program's own non-zero exit").
func execute(ctx context.Context, binaryPath string, opts Options) (int, error) {
	cmd := exec.CommandContext(ctx, binaryPath, opts.Args...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	cmd.Stdin = os.Stdin
	cmd.Env = os.Environ()
	if opts.Tasks {
		cmd.Env = append(cmd.Env, "OTTER_TASKS_DIAGNOSTICS=1")
	}
	if opts.TasksDebug {
		cmd.Env = append(cmd.Env, "OTTER_TASKS_DEBUG=1")
	}
	if opts.TasksTrace {
		cmd.Env = append(cmd.Env, "OTTER_TASKS_TRACE=1")
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, fmt.Errorf("driver: running %s: %w", binaryPath, err)
}

// printProfile renders a cache entry's metadata for --profile, grounded on
// original_source/src/cli.rs's print_profile (binary path, size, build
// time; "llvm_version" there becomes "compiler_version" here since this
// backend has no LLVM to version).
func printProfile(w io.Writer, metadata cache.Metadata) {
	fmt.Fprintln(w, "[Profile]")
	fmt.Fprintf(w, "%16s: %s\n", "Binary", metadata.BinaryPath)
	fmt.Fprintf(w, "%16s: %d bytes\n", "Size", metadata.BinarySize)
	fmt.Fprintf(w, "%16s: %d ms\n", "Build", metadata.BuildTimeMs)
	fmt.Fprintf(w, "%16s: %s\n", "Compiler", metadata.CompilerVersion)
}

func absPathOrOriginal(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
