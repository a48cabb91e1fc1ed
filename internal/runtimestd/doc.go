// Package runtimestd implements the entry points of spec.md §4.7's runtime
// standard library: the C-ABI functions a compiled OtterLang program links
// against for I/O, math, time, collections, the error model, reflection,
// tasks, JSON, networking, and runtime introspection.
//
// Every function here is plain Go operating on Go types. cmd/otterruntime is
// the cgo bridge: a thin `package main` built with
// `go build -buildmode=c-archive` that marshals C arguments, calls straight
// into this package, and marshals the result back — the same split the
// teacher draws between an engine package and its cmd/ entry point, just
// with a C ABI instead of a CLI at the boundary.
//
// Each area additionally registers its canonical OtterLang names
// (std.io.print, task.spawn, …) into the symbol registry via an init()-time
// registry.Provider, grounded on
// original_source/src/runtime/stdlib/{io,math,time,task,json,sys,runtime}.rs's
// register_std_*_symbols functions and original_source/src/runtime/task/*.rs
// for the task entries, which this package wires to the already-implemented
// internal/task scheduler rather than reimplementing work-stealing a second
// time in C.
package runtimestd
