// Package registry implements the process-wide FFI symbol registry and its
// distributed-registration mechanism, grounded on
// original_source/crates/otterc_ffi/src/symbol_registry.rs's
// BridgeSymbolRegistry (mutex-guarded map + idempotent record/ensure), and
// patterned after the teacher's sync.RWMutex-guarded engines (e.g.
// internal/symbollinker/linker_engine.go's SymbolLinkerEngine).
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Ottrlang/otterlang/internal/ffi"
)

// Registry is a mutex-guarded map from canonical export name to the foreign
// function bound to it. Registration is idempotent: registering the same
// export name twice with an identical signature is a no-op, while
// registering it with a conflicting signature is an error (spec.md §4.3).
type Registry struct {
	mu        sync.RWMutex
	functions map[string]ffi.Function
}

// New builds an empty Registry.
func New() *Registry {
	return &Registry{functions: make(map[string]ffi.Function)}
}

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the process-wide registry, built lazily on first use.
func Global() *Registry {
	globalOnce.Do(func() { global = New() })
	return global
}

// Register upserts fn under its export name. A second registration with the
// same export name and an identical signature/linker symbol is accepted
// silently; a conflicting re-registration returns an error rather than
// silently shadowing the earlier binding.
func (r *Registry) Register(fn ffi.Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.functions[fn.ExportName]
	if !ok {
		r.functions[fn.ExportName] = fn
		return nil
	}
	if existing.LinkerSymbol == fn.LinkerSymbol && signaturesEqual(existing.Signature, fn.Signature) {
		return nil
	}
	return fmt.Errorf("registry: conflicting registration for %q: have %s bound to %s, got %s bound to %s",
		fn.ExportName, existing.Signature, existing.LinkerSymbol, fn.Signature, fn.LinkerSymbol)
}

// Resolve looks up a foreign function by its canonical export name.
func (r *Registry) Resolve(exportName string) (ffi.Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[exportName]
	return fn, ok
}

// Contains reports whether exportName is bound.
func (r *Registry) Contains(exportName string) bool {
	_, ok := r.Resolve(exportName)
	return ok
}

// Names returns every registered export name, sorted for deterministic
// iteration (used by diagnostics and "did you mean" suggestions).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func signaturesEqual(a, b ffi.Signature) bool {
	if a.Result != b.Result || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return true
}

// Provider populates a Registry with the functions it owns. Each FFI
// manifest (or hand-written runtime stdlib package) exposes one Provider,
// and bootstrap invokes every known Provider against the global registry
// before compilation begins (spec.md §4.3, §4.7).
type Provider func(r *Registry) error

var (
	providersMu sync.Mutex
	providers   []Provider
)

// MustRegisterProvider appends p to the set of providers invoked by
// Bootstrap. It is meant to be called from package init() functions, so it
// panics on a nil provider rather than returning an error nobody checks.
func MustRegisterProvider(p Provider) {
	if p == nil {
		panic("registry: nil Provider registered")
	}
	providersMu.Lock()
	defer providersMu.Unlock()
	providers = append(providers, p)
}

// Bootstrap runs every registered Provider against r. It is idempotent:
// calling it twice re-registers the same functions, which Register accepts
// as a no-op.
func Bootstrap(r *Registry) error {
	providersMu.Lock()
	snapshot := make([]Provider, len(providers))
	copy(snapshot, providers)
	providersMu.Unlock()

	for _, p := range snapshot {
		if err := p(r); err != nil {
			return err
		}
	}
	return nil
}
