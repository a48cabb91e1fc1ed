package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// ManifestFileName is the project manifest otter.kdl's on-disk name.
const ManifestFileName = "otter.kdl"

// Load reads otter.kdl from projectRoot. A missing file is not an error: it
// returns a zero-value Manifest, matching spec.md's "optional project
// manifest" phrasing.
func Load(projectRoot string) (Manifest, error) {
	path := filepath.Join(projectRoot, ManifestFileName)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Manifest{}, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parse(string(content))
}

func parse(content string) (Manifest, error) {
	var m Manifest

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return Manifest{}, fmt.Errorf("config: parsing otter.kdl: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				assignSimpleString(cn, "name", func(v string) { m.Project.Name = v })
			}
		case "build":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "release":
					if b, ok := firstBoolArg(cn); ok {
						m.Build.Release = b
					}
				case "lto":
					if b, ok := firstBoolArg(cn); ok {
						m.Build.LTO = b
					}
				case "emit_ir":
					if b, ok := firstBoolArg(cn); ok {
						m.Build.EmitIR = b
					}
				}
			}
		case "cache_dir":
			if s, ok := firstStringArg(n); ok {
				m.CacheDir = s
			}
		case "toolchain_version":
			if s, ok := firstStringArg(n); ok {
				m.ToolchainVersion = s
			}
		}
	}

	return m, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
