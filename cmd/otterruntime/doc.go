// Command otterruntime is the cgo bridge between the C translation unit
// internal/codegen emits and the Go-implemented runtime standard library in
// internal/runtimestd (spec.md §4.7). It is never run directly; the driver
// builds it once with `go build -buildmode=c-archive` into a static archive
// plus header, and internal/codegen.Link links that archive's object code
// alongside the generated main.c.
//
// Every exported function here is a thin type-marshaling wrapper: argument
// conversion in, a call into internal/runtimestd, result conversion out. All
// the actual behavior — handle tables, the task scheduler, JSON, tagged
// values — lives in internal/runtimestd, which stays pure Go and testable
// without cgo.
package main

// main is required by -buildmode=c-archive but never invoked; the archive
// is a library, not an executable.
func main() {}
