package main

import "C"

import "github.com/Ottrlang/otterlang/internal/runtimestd"

//export otter_runtime_gos
func otter_runtime_gos() C.int64_t { return C.int64_t(runtimestd.Gos()) }

//export otter_runtime_cpu_count
func otter_runtime_cpu_count() C.int64_t { return C.int64_t(runtimestd.CPUCount()) }

//export otter_runtime_memory
func otter_runtime_memory() C.int64_t { return C.int64_t(runtimestd.Memory()) }

//export otter_runtime_collect_garbage
func otter_runtime_collect_garbage() { runtimestd.CollectGarbage() }

//export otter_runtime_stats
func otter_runtime_stats() *C.char { return C.CString(runtimestd.Stats()) }

//export otter_runtime_version
func otter_runtime_version() *C.char { return C.CString(runtimestd.RuntimeVersionString()) }
