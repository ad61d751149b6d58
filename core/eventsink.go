package core

import "github.com/coderoom-dev/coderoom/schema"

// EventSink receives UI-facing events emitted by the core service. All
// callbacks must be non-blocking; the service calls them outside its lock but
// on the request goroutine.
type EventSink interface {
	OnTranscript(event schema.TranscriptEvent)
	OnProblems(event schema.ProblemsEvent)
	OnWorkspace(event schema.WorkspaceEvent)
	OnRunState(event schema.RunStateEvent)
}
