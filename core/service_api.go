package core

import (
	"context"

	"github.com/coderoom-dev/coderoom/schema"
)

// Service is the transport-facing API of the workspace core. Sessions are
// created lazily: any operation against an unknown session id seeds a fresh
// workspace first.
type Service interface {
	// File tree lifecycle.
	CreateFile(ctx context.Context, req schema.CreateFileRequest) (schema.CreateFileResponse, error)
	TouchFile(ctx context.Context, req schema.TouchFileRequest) (schema.TouchFileResponse, error)
	DeleteFile(ctx context.Context, req schema.DeleteFileRequest) (schema.DeleteFileResponse, error)
	ToggleFolder(ctx context.Context, req schema.ToggleFolderRequest) (schema.ToggleFolderResponse, error)
	ListFiles(ctx context.Context, req schema.ListFilesRequest) (schema.ListFilesResponse, error)
	GetWorkspace(ctx context.Context, req schema.GetWorkspaceRequest) (schema.GetWorkspaceResponse, error)

	// Buffer lifecycle.
	OpenFile(ctx context.Context, req schema.OpenFileRequest) (schema.OpenFileResponse, error)
	CloseFile(ctx context.Context, req schema.CloseFileRequest) (schema.CloseFileResponse, error)
	ActivateBuffer(ctx context.Context, req schema.ActivateBufferRequest) (schema.ActivateBufferResponse, error)
	UpdateActiveBuffer(ctx context.Context, req schema.UpdateActiveBufferRequest) (schema.UpdateActiveBufferResponse, error)
	ListBuffers(ctx context.Context, req schema.ListBuffersRequest) (schema.ListBuffersResponse, error)

	// Execution.
	RunActive(ctx context.Context, req schema.RunActiveRequest) (schema.RunActiveResponse, error)
	RunFile(ctx context.Context, req schema.RunFileRequest) (schema.RunFileResponse, error)
	SaveActive(ctx context.Context, req schema.SaveActiveRequest) (schema.SaveActiveResponse, error)
	GetProblems(ctx context.Context, req schema.GetProblemsRequest) (schema.GetProblemsResponse, error)

	// Transcript.
	EchoCommand(ctx context.Context, req schema.EchoCommandRequest) (schema.EchoCommandResponse, error)
	RespondCommand(ctx context.Context, req schema.RespondCommandRequest) (schema.RespondCommandResponse, error)
	ClearTranscript(ctx context.Context, req schema.ClearTranscriptRequest) (schema.ClearTranscriptResponse, error)
	GetTranscript(ctx context.Context, req schema.GetTranscriptRequest) (schema.GetTranscriptResponse, error)
	ScrollTranscript(ctx context.Context, req schema.ScrollTranscriptRequest) (schema.ScrollTranscriptResponse, error)

	// Session lifecycle.
	ResetSession(ctx context.Context, req schema.ResetSessionRequest) (schema.ResetSessionResponse, error)
}
