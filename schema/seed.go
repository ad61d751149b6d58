package schema

// WorkspaceSeed describes the initial state given to a fresh session.
type WorkspaceSeed struct {
	// Welcome lines precede the first prompt in the transcript.
	Welcome []string
	// Tree is the initial file/folder hierarchy.
	Tree []SeedNode
	// Buffers are pre-opened; the last one listed becomes active.
	Buffers []SeedBuffer
}

// SeedNode is one entry of the seed tree. Kind defaults to NodeFile. Content
// applies to files only and is what the editor shows when the file is first
// opened.
type SeedNode struct {
	Name     string
	Kind     NodeKind
	Expanded bool
	Content  string
	Children []SeedNode
}

// SeedBuffer pre-opens a buffer with fixed content. The path does not have to
// exist in the seed tree.
type SeedBuffer struct {
	Path    Path
	Content string
}
