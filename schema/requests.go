package schema

// File tree lifecycle.

// CreateFileRequest describes an explorer-driven file creation. The new file
// is also opened as the active buffer with default content.
type CreateFileRequest struct {
	SessionID SessionID
	Name      string
}

// CreateFileResponse reports the created node and its opened buffer.
type CreateFileResponse struct {
	Node   FileNodeSnapshot
	Buffer BufferSnapshot
}

// TouchFileRequest describes a terminal-driven tree-only file creation.
type TouchFileRequest struct {
	SessionID SessionID
	Name      string
}

// TouchFileResponse reports the created node.
type TouchFileResponse struct {
	Node FileNodeSnapshot
}

// DeleteFileRequest describes a file removal.
type DeleteFileRequest struct {
	SessionID SessionID
	Path      Path
}

// DeleteFileResponse reports whether an open buffer was closed alongside.
type DeleteFileResponse struct {
	ClosedBuffer bool
	ActivePath   Path
}

// ToggleFolderRequest flips the expanded flag of a folder.
type ToggleFolderRequest struct {
	SessionID SessionID
	Path      Path
}

// ToggleFolderResponse reports the folder after toggling.
type ToggleFolderResponse struct {
	Node FileNodeSnapshot
}

// ListFilesRequest asks for top-level entry names.
type ListFilesRequest struct {
	SessionID SessionID
}

// ListFilesResponse reports top-level entry names in display order.
type ListFilesResponse struct {
	Names []string
}

// GetWorkspaceRequest asks for the full workspace snapshot.
type GetWorkspaceRequest struct {
	SessionID SessionID
}

// GetWorkspaceResponse reports the workspace snapshot.
type GetWorkspaceResponse struct {
	Workspace WorkspaceSnapshot
}

// Buffer lifecycle.

// OpenFileRequest opens (or re-activates) a file as a buffer. Parent may be
// empty for top-level files.
type OpenFileRequest struct {
	SessionID SessionID
	Name      string
	Parent    Path
}

// OpenFileResponse reports the activated buffer.
type OpenFileResponse struct {
	Buffer BufferSnapshot
}

// CloseFileRequest closes an open buffer.
type CloseFileRequest struct {
	SessionID SessionID
	Path      Path
}

// CloseFileResponse reports the buffer that became active, if any.
type CloseFileResponse struct {
	ActivePath Path
}

// ActivateBufferRequest activates an already-open buffer.
type ActivateBufferRequest struct {
	SessionID SessionID
	Path      Path
}

// ActivateBufferResponse reports the activated buffer.
type ActivateBufferResponse struct {
	Buffer BufferSnapshot
}

// UpdateActiveBufferRequest replaces the active buffer's content in full.
type UpdateActiveBufferRequest struct {
	SessionID SessionID
	Content   string
}

// UpdateActiveBufferResponse reports the buffer after the edit.
type UpdateActiveBufferResponse struct {
	Buffer BufferSnapshot
}

// ListBuffersRequest asks for all open buffers.
type ListBuffersRequest struct {
	SessionID SessionID
}

// ListBuffersResponse reports open buffers in display order.
type ListBuffersResponse struct {
	Buffers    []BufferSnapshot
	ActivePath Path
}

// Execution.

// RunActiveRequest runs the active buffer.
type RunActiveRequest struct {
	SessionID SessionID
}

// RunActiveResponse reports the execution outcome and the problems list.
type RunActiveResponse struct {
	Result   ExecutionResult
	Problems []Problem
}

// RunFileRequest runs a named open buffer, requiring a specific language tag.
type RunFileRequest struct {
	SessionID SessionID
	Path      Path
	Expect    Language
}

// RunFileResponse reports the execution outcome and the problems list.
type RunFileResponse struct {
	Result   ExecutionResult
	Problems []Problem
}

// SaveActiveRequest performs the cosmetic save of the active buffer.
type SaveActiveRequest struct {
	SessionID SessionID
}

// SaveActiveResponse reports the saved path.
type SaveActiveResponse struct {
	Path Path
}

// GetProblemsRequest asks for the problems recorded by the last run.
type GetProblemsRequest struct {
	SessionID SessionID
}

// GetProblemsResponse reports the problems list.
type GetProblemsResponse struct {
	Problems []Problem
}

// Transcript.

// EchoCommandRequest replaces the trailing prompt with an echoed command line.
type EchoCommandRequest struct {
	SessionID SessionID
	Command   string
}

// EchoCommandResponse reports completion of the echo.
type EchoCommandResponse struct{}

// RespondCommandRequest appends response lines and a fresh trailing prompt.
type RespondCommandRequest struct {
	SessionID SessionID
	Lines     []string
}

// RespondCommandResponse reports completion of the append.
type RespondCommandResponse struct{}

// ClearTranscriptRequest resets the transcript to a single trailing prompt.
type ClearTranscriptRequest struct {
	SessionID SessionID
}

// ClearTranscriptResponse reports completion of the reset.
type ClearTranscriptResponse struct{}

// GetTranscriptRequest fetches transcript lines for a viewport.
type GetTranscriptRequest struct {
	SessionID SessionID
	Limit     int
}

// GetTranscriptResponse reports the transcript snapshot.
type GetTranscriptResponse struct {
	Transcript TranscriptSnapshot
}

// ScrollTranscriptRequest scrolls the transcript viewport.
type ScrollTranscriptRequest struct {
	SessionID SessionID
	Delta     int
	Limit     int
}

// ScrollTranscriptResponse reports the transcript after scrolling.
type ScrollTranscriptResponse struct {
	Transcript TranscriptSnapshot
}

// Session lifecycle.

// ResetSessionRequest discards a session's state; the next operation reseeds it.
type ResetSessionRequest struct {
	SessionID SessionID
}

// ResetSessionResponse reports completion of the reset.
type ResetSessionResponse struct{}
