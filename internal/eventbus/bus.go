// Package eventbus fans core service events out to per-session subscribers.
// Publishing never blocks; slow subscribers drop events.
package eventbus

import (
	"context"
	"sync"

	"github.com/coderoom-dev/coderoom/schema"
	"pkt.systems/pslog"
)

// EventType identifies the event payload.
type EventType string

const (
	// EventTranscript carries appended or cleared transcript lines.
	EventTranscript EventType = "transcript"
	// EventProblems carries the problems list of the latest run.
	EventProblems EventType = "problems"
	// EventWorkspace carries a workspace snapshot after a tree or buffer change.
	EventWorkspace EventType = "workspace"
	// EventRunState carries running flag transitions.
	EventRunState EventType = "runstate"
)

// Event represents a UI-facing event emitted by the core service.
type Event struct {
	Type       EventType
	Transcript schema.TranscriptEvent
	Problems   schema.ProblemsEvent
	Workspace  schema.WorkspaceEvent
	RunState   schema.RunStateEvent
}

// Bus fanouts events to per-session subscribers.
type Bus struct {
	mu    sync.Mutex
	subs  map[schema.SessionID]map[chan Event]struct{}
	log   pslog.Logger
	depth int
}

// New constructs a Bus.
func New(logger pslog.Logger) *Bus {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Bus{
		subs:  make(map[schema.SessionID]map[chan Event]struct{}),
		log:   logger,
		depth: 256,
	}
}

// Subscribe registers a subscriber for the session and returns a channel + cancel.
func (b *Bus) Subscribe(sessionID schema.SessionID) (<-chan Event, func()) {
	if b == nil {
		return nil, func() {}
	}
	ch := make(chan Event, b.depth)
	b.mu.Lock()
	sessionSubs := b.subs[sessionID]
	if sessionSubs == nil {
		sessionSubs = make(map[chan Event]struct{})
		b.subs[sessionID] = sessionSubs
	}
	sessionSubs[ch] = struct{}{}
	count := len(sessionSubs)
	b.mu.Unlock()
	if b.log != nil {
		b.log.With("session", sessionID).Debug("eventbus subscribe", "subs", count)
	}
	return ch, func() {
		b.mu.Lock()
		if subs := b.subs[sessionID]; subs != nil {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(b.subs, sessionID)
			}
		}
		b.mu.Unlock()
		close(ch)
		if b.log != nil {
			b.log.With("session", sessionID).Debug("eventbus unsubscribe")
		}
	}
}

// OnTranscript publishes a transcript event.
func (b *Bus) OnTranscript(event schema.TranscriptEvent) {
	b.publish(event.SessionID, Event{Type: EventTranscript, Transcript: event})
}

// OnProblems publishes a problems event.
func (b *Bus) OnProblems(event schema.ProblemsEvent) {
	b.publish(event.SessionID, Event{Type: EventProblems, Problems: event})
}

// OnWorkspace publishes a workspace event.
func (b *Bus) OnWorkspace(event schema.WorkspaceEvent) {
	b.publish(event.SessionID, Event{Type: EventWorkspace, Workspace: event})
}

// OnRunState publishes a run state event.
func (b *Bus) OnRunState(event schema.RunStateEvent) {
	b.publish(event.SessionID, Event{Type: EventRunState, RunState: event})
}

func (b *Bus) publish(sessionID schema.SessionID, event Event) {
	if b == nil {
		return
	}
	b.mu.Lock()
	sessionSubs := b.subs[sessionID]
	subs := make([]chan Event, 0, len(sessionSubs))
	for sub := range sessionSubs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()
	if len(subs) == 0 {
		return
	}
	dropped := 0
	for _, sub := range subs {
		select {
		case sub <- event:
		default:
			dropped++
		}
	}
	if dropped > 0 && b.log != nil {
		b.log.With("session", sessionID).Trace("eventbus dropped", "count", dropped)
	}
}
