package core

import (
	"context"

	"github.com/coderoom-dev/coderoom/schema"
	"pkt.systems/pslog"
)

// Executor evaluates one buffer and reports captured output. Implementations
// must not panic; failures surface on the result's Error field.
type Executor interface {
	Run(ctx context.Context, file string, language schema.Language, content string) schema.ExecutionResult
}

// ServiceDeps carries the service's collaborators.
type ServiceDeps struct {
	// Executor runs buffers. Required.
	Executor Executor
	// Seed is the initial state for fresh sessions. May be zero for an empty
	// workspace.
	Seed schema.WorkspaceSeed
	// EventSink receives UI-facing events. Optional.
	EventSink EventSink
	// Logger is the service logger. Defaults to the ambient logger.
	Logger pslog.Logger
}
