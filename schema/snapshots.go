package schema

// FileNodeSnapshot is a read-only view of one workspace tree entry.
type FileNodeSnapshot struct {
	Name     string
	Path     Path
	Kind     NodeKind
	Language Language
	Expanded bool
	Children []FileNodeSnapshot
}

// BufferSnapshot is a read-only view of one open buffer.
type BufferSnapshot struct {
	Path     Path
	Content  string
	Language Language
	Active   bool
}

// WorkspaceSnapshot is the full per-session state for transports.
type WorkspaceSnapshot struct {
	Tree       []FileNodeSnapshot
	Buffers    []BufferSnapshot
	ActivePath Path
	Running    bool
}

// TranscriptLine is one line of terminal history. Prompt is derived from the
// prompt marker prefix.
type TranscriptLine struct {
	Text   string
	Prompt bool
}

// TranscriptSnapshot represents the current terminal scrollback view.
type TranscriptSnapshot struct {
	Lines        []TranscriptLine
	TotalLines   int
	ScrollOffset int
	AtBottom     bool
}

// Problem describes a single execution error surfaced to the learner.
type Problem struct {
	Type    string
	Message string
	File    Path
	Line    int
}

// ExecutionResult is the outcome of running one buffer. Error is empty on
// success. Simulated marks output produced by pattern scanning rather than
// real evaluation.
type ExecutionResult struct {
	Invocation  string
	OutputLines []string
	Error       string
	Simulated   bool
}
