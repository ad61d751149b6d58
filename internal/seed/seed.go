// Package seed loads workspace seed manifests. A manifest describes the
// starter tree, pre-opened buffers, and terminal welcome lines a fresh
// session begins with. The built-in manifest is embedded; deployments can
// point the config at their own YAML file.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coderoom-dev/coderoom/schema"
)

//go:embed default.yaml
var defaultManifest []byte

// Manifest is the YAML shape of a seed file.
type Manifest struct {
	Welcome []string       `yaml:"welcome"`
	Tree    []ManifestNode `yaml:"tree"`
	Buffers []ManifestBuf  `yaml:"buffers"`
}

// ManifestNode is one tree entry. Kind defaults to file.
type ManifestNode struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	Expanded bool           `yaml:"expanded"`
	Content  string         `yaml:"content"`
	Children []ManifestNode `yaml:"children"`
}

// ManifestBuf is one pre-opened buffer. The last listed becomes active.
type ManifestBuf struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// Default returns the embedded starter workspace.
func Default() schema.WorkspaceSeed {
	ws, err := parse(defaultManifest)
	if err != nil {
		// The embedded manifest is validated by tests; reaching this means a
		// broken build.
		panic(fmt.Sprintf("seed: embedded manifest invalid: %v", err))
	}
	return ws
}

// Load reads a seed manifest from path. An empty path returns the embedded
// default.
func Load(path string) (schema.WorkspaceSeed, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return schema.WorkspaceSeed{}, fmt.Errorf("read seed manifest: %w", err)
	}
	ws, err := parse(raw)
	if err != nil {
		return schema.WorkspaceSeed{}, fmt.Errorf("parse seed manifest %s: %w", path, err)
	}
	return ws, nil
}

func parse(raw []byte) (schema.WorkspaceSeed, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return schema.WorkspaceSeed{}, err
	}
	ws := schema.WorkspaceSeed{Welcome: m.Welcome}
	for _, node := range m.Tree {
		converted, err := convertNode(node)
		if err != nil {
			return schema.WorkspaceSeed{}, err
		}
		ws.Tree = append(ws.Tree, converted)
	}
	for _, buf := range m.Buffers {
		if buf.Path == "" {
			return schema.WorkspaceSeed{}, fmt.Errorf("buffer without path")
		}
		ws.Buffers = append(ws.Buffers, schema.SeedBuffer{
			Path:    schema.Path(buf.Path),
			Content: buf.Content,
		})
	}
	return ws, nil
}

func convertNode(node ManifestNode) (schema.SeedNode, error) {
	if node.Name == "" {
		return schema.SeedNode{}, fmt.Errorf("tree node without name")
	}
	out := schema.SeedNode{
		Name:     node.Name,
		Expanded: node.Expanded,
		Content:  node.Content,
	}
	switch node.Kind {
	case "", "file":
		out.Kind = schema.NodeFile
		if len(node.Children) > 0 {
			return schema.SeedNode{}, fmt.Errorf("file node %s has children", node.Name)
		}
	case "folder":
		out.Kind = schema.NodeFolder
	default:
		return schema.SeedNode{}, fmt.Errorf("tree node %s: unknown kind %q", node.Name, node.Kind)
	}
	for _, child := range node.Children {
		converted, err := convertNode(child)
		if err != nil {
			return schema.SeedNode{}, err
		}
		out.Children = append(out.Children, converted)
	}
	return out, nil
}
