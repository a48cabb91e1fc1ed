// Package ffimanifest loads an FFI crate's JSON bridge manifest, validates
// it against a JSON Schema via github.com/google/jsonschema-go, and turns
// it into a registry.Provider of ffi.Function descriptors.
//
// This replaces original_source/crates/otterc_ffi/src/metadata.rs's YAML
// bridge.yaml format with JSON+JSON-Schema: the original only requires "a
// human-readable text document", not YAML specifically, and the teacher's
// go.mod carries google/jsonschema-go (used for its MCP tool schemas) but no
// YAML FFI-manifest library, so the manifest format is adapted to the
// dependency the example pack actually provides (see DESIGN.md).
package ffimanifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/Ottrlang/otterlang/internal/ffi"
	"github.com/Ottrlang/otterlang/internal/registry"
)

// Dependency describes the external crate/package a bridge manifest binds.
type Dependency struct {
	Name            string   `json:"name"`
	Version         string   `json:"version,omitempty"`
	Path            string   `json:"path,omitempty"`
	Features        []string `json:"features,omitempty"`
	DefaultFeatures bool     `json:"default_features"`
}

// FunctionEntry is one manifest-declared function: a canonical export name,
// optional symbol override, parameter/result type identifiers, and optional
// doc string (original_source's FunctionEntry, JSON-shaped).
type FunctionEntry struct {
	Name   string   `json:"name"`
	Symbol string   `json:"symbol,omitempty"`
	Params []string `json:"params,omitempty"`
	Result string   `json:"result"`
	Doc    string   `json:"doc,omitempty"`
}

// Manifest is one fully-parsed bridge crate manifest.
type Manifest struct {
	CrateName  string          `json:"crate"`
	Dependency Dependency      `json:"dependency"`
	Functions  []FunctionEntry `json:"functions"`
}

// Schema describes the JSON shape every bridge manifest must validate
// against before being unmarshaled.
func Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"crate", "functions"},
		Properties: map[string]*jsonschema.Schema{
			"crate": {Type: "string", Description: "Name of the bridged external crate/package"},
			"dependency": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"name":             {Type: "string"},
					"version":          {Type: "string"},
					"path":             {Type: "string"},
					"features":         {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					"default_features": {Type: "boolean"},
				},
			},
			"functions": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type:     "object",
					Required: []string{"name", "result"},
					Properties: map[string]*jsonschema.Schema{
						"name":   {Type: "string"},
						"symbol": {Type: "string"},
						"params": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
						"result": {Type: "string"},
						"doc":    {Type: "string"},
					},
				},
			},
		},
	}
}

// Load reads and validates a manifest file at path, returning the parsed
// Manifest. An absent file is not an error: it resolves to an empty
// manifest, keeping the bridge pipeline lenient (mirrors
// original_source/crates/otterc_ffi/src/metadata.rs's load_bridge_metadata).
func Load(crateName, path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{CrateName: crateName, Dependency: Dependency{Name: crateName, DefaultFeatures: true}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ffimanifest: reading %s: %w", path, err)
	}

	resolved, err := Schema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("ffimanifest: resolving schema: %w", err)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("ffimanifest: parsing %s: %w", path, err)
	}
	if err := resolved.Validate(instance); err != nil {
		return nil, fmt.Errorf("ffimanifest: %s failed schema validation: %w", path, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("ffimanifest: decoding %s: %w", path, err)
	}
	if manifest.CrateName == "" {
		manifest.CrateName = crateName
	}
	return &manifest, nil
}

// ToFunctions converts every manifest entry into an ffi.Function, resolving
// missing symbol overrides through ffi.DefaultSymbol.
func (m *Manifest) ToFunctions() ([]ffi.Function, error) {
	out := make([]ffi.Function, 0, len(m.Functions))
	for _, entry := range m.Functions {
		params := make([]ffi.Type, 0, len(entry.Params))
		for _, p := range entry.Params {
			ty, err := ffi.ParseType(p)
			if err != nil {
				return nil, fmt.Errorf("ffimanifest: %s:%s: %w", m.CrateName, entry.Name, err)
			}
			params = append(params, ty)
		}
		result, err := ffi.ParseType(entry.Result)
		if err != nil {
			return nil, fmt.Errorf("ffimanifest: %s:%s: %w", m.CrateName, entry.Name, err)
		}
		symbol := entry.Symbol
		if symbol == "" {
			symbol = ffi.DefaultSymbol(m.CrateName, entry.Name)
		}
		out = append(out, ffi.Function{
			ExportName:   entry.Name,
			LinkerSymbol: symbol,
			Signature:    ffi.Signature{Params: params, Result: result},
			Doc:          entry.Doc,
		})
	}
	return out, nil
}

// Provider builds a registry.Provider that registers every function this
// manifest declares.
func (m *Manifest) Provider() registry.Provider {
	return func(r *registry.Registry) error {
		fns, err := m.ToFunctions()
		if err != nil {
			return err
		}
		for _, fn := range fns {
			if err := r.Register(fn); err != nil {
				return err
			}
		}
		return nil
	}
}
