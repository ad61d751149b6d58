package schema

// TranscriptEvent carries transcript lines appended for a session. Cleared is
// set when the transcript was reset instead of extended.
type TranscriptEvent struct {
	SessionID SessionID
	Lines     []TranscriptLine
	Cleared   bool
}

// ProblemsEvent carries the problems list recorded by the latest run.
type ProblemsEvent struct {
	SessionID SessionID
	Problems  []Problem
}

// WorkspaceEvent carries the workspace snapshot after a tree or buffer change.
type WorkspaceEvent struct {
	SessionID SessionID
	Workspace WorkspaceSnapshot
}

// RunStateEvent signals the cosmetic running flag flipping for a session.
type RunStateEvent struct {
	SessionID SessionID
	Running   bool
	File      Path
}
