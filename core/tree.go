package core

import (
	"github.com/coderoom-dev/coderoom/internal/lang"
	"github.com/coderoom-dev/coderoom/schema"
)

// fileNode is one entry of the in-memory workspace tree. Children preserve
// insertion order; new entries append at the end.
type fileNode struct {
	name     string
	kind     schema.NodeKind
	language schema.Language
	expanded bool
	content  string
	children []*fileNode
}

// fileTree holds the per-session workspace hierarchy.
type fileTree struct {
	roots []*fileNode
}

func newTreeFromSeed(seed []schema.SeedNode) *fileTree {
	t := &fileTree{}
	for _, node := range seed {
		t.roots = append(t.roots, seedNode(node))
	}
	return t
}

func seedNode(node schema.SeedNode) *fileNode {
	kind := node.Kind
	if kind == "" {
		kind = schema.NodeFile
	}
	n := &fileNode{
		name:     node.Name,
		kind:     kind,
		expanded: node.Expanded,
	}
	if kind == schema.NodeFile {
		n.language = lang.Classify(node.Name)
		n.content = node.Content
	}
	for _, child := range node.Children {
		n.children = append(n.children, seedNode(child))
	}
	return n
}

// find walks a path's segments from the roots.
func (t *fileTree) find(path schema.Path) (*fileNode, bool) {
	segments := schema.SplitPath(path)
	if len(segments) == 0 {
		return nil, false
	}
	nodes := t.roots
	var current *fileNode
	for _, segment := range segments {
		current = nil
		for _, node := range nodes {
			if node.name == segment {
				current = node
				break
			}
		}
		if current == nil {
			return nil, false
		}
		nodes = current.children
	}
	return current, true
}

// containsShallow reports whether a name exists at the top level or as a
// direct child of a top-level folder. Deeper levels are not consulted; that
// is the full extent of the duplicate check.
func (t *fileTree) containsShallow(name string) bool {
	for _, node := range t.roots {
		if node.name == name {
			return true
		}
		if node.kind != schema.NodeFolder {
			continue
		}
		for _, child := range node.children {
			if child.name == name {
				return true
			}
		}
	}
	return false
}

// containsTopLevel reports whether a name exists among the roots.
func (t *fileTree) containsTopLevel(name string) bool {
	for _, node := range t.roots {
		if node.name == name {
			return true
		}
	}
	return false
}

// addTopLevel appends a new file at the top level. Duplicate checks are the
// caller's: the explorer checks shallowly, the terminal checks roots only.
func (t *fileTree) addTopLevel(name, content string) *fileNode {
	node := &fileNode{
		name:     name,
		kind:     schema.NodeFile,
		language: lang.Classify(name),
		content:  content,
	}
	t.roots = append(t.roots, node)
	return node
}

// remove deletes the node at path from its parent's child list.
func (t *fileTree) remove(path schema.Path) bool {
	segments := schema.SplitPath(path)
	if len(segments) == 0 {
		return false
	}
	if len(segments) == 1 {
		for i, node := range t.roots {
			if node.name == segments[0] {
				t.roots = append(t.roots[:i], t.roots[i+1:]...)
				return true
			}
		}
		return false
	}
	parent, ok := t.find(schema.Path(joinSegments(segments[:len(segments)-1])))
	if !ok {
		return false
	}
	last := segments[len(segments)-1]
	for i, child := range parent.children {
		if child.name == last {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			return true
		}
	}
	return false
}

// toggle flips the expanded flag of the folder at path.
func (t *fileTree) toggle(path schema.Path) (*fileNode, error) {
	node, ok := t.find(path)
	if !ok || node.kind != schema.NodeFolder {
		return nil, schema.ErrFolderNotFound
	}
	node.expanded = !node.expanded
	return node, nil
}

// listTopLevel returns root entry names in display order.
func (t *fileTree) listTopLevel() []string {
	names := make([]string, 0, len(t.roots))
	for _, node := range t.roots {
		names = append(names, node.name)
	}
	return names
}

func (t *fileTree) snapshot() []schema.FileNodeSnapshot {
	return snapshotNodes(t.roots, "")
}

func snapshotNodes(nodes []*fileNode, parent schema.Path) []schema.FileNodeSnapshot {
	out := make([]schema.FileNodeSnapshot, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.snapshot(parent))
	}
	return out
}

func (n *fileNode) snapshot(parent schema.Path) schema.FileNodeSnapshot {
	path := schema.JoinPath(parent, n.name)
	snap := schema.FileNodeSnapshot{
		Name:     n.name,
		Path:     path,
		Kind:     n.kind,
		Language: n.language,
		Expanded: n.expanded,
	}
	if len(n.children) > 0 {
		snap.Children = snapshotNodes(n.children, path)
	}
	return snap
}

func joinSegments(segments []string) string {
	out := ""
	for i, segment := range segments {
		if i > 0 {
			out += "/"
		}
		out += segment
	}
	return out
}
