// Package core implements the workspace service: per-session file trees,
// editor buffers, terminal transcripts, and the run pipeline that feeds
// buffers to an Executor. All state is in memory; sessions are seeded lazily
// and discarded on reset.
package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coderoom-dev/coderoom/internal/lang"
	"github.com/coderoom-dev/coderoom/internal/logx"
	"github.com/coderoom-dev/coderoom/schema"
	"pkt.systems/pslog"
)

// service implements the core service behavior.
type service struct {
	cfg      schema.ServiceConfig
	exec     Executor
	sink     EventSink
	seed     schema.WorkspaceSeed
	logger   pslog.Logger
	mu       sync.Mutex
	sessions map[schema.SessionID]*sessionState
}

type sessionState struct {
	tree        *fileTree
	buffers     *bufferList
	transcript  *transcript
	problems    []schema.Problem
	running     bool
	runningFile schema.Path
	runTimer    *time.Timer
}

// NewService constructs the core service implementation.
func NewService(cfg schema.ServiceConfig, deps ServiceDeps) (Service, error) {
	normalized, err := schema.NormalizeServiceConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg = normalized
	if deps.Executor == nil {
		return nil, errors.New("missing executor")
	}
	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &service{
		cfg:      cfg,
		exec:     deps.Executor,
		sink:     deps.EventSink,
		seed:     deps.Seed,
		logger:   logger,
		sessions: make(map[schema.SessionID]*sessionState),
	}, nil
}

// getOrCreateSessionLocked seeds a fresh workspace for unknown sessions.
// Callers must hold s.mu.
func (s *service) getOrCreateSessionLocked(id schema.SessionID) *sessionState {
	if st, ok := s.sessions[id]; ok {
		return st
	}
	st := &sessionState{
		tree:       newTreeFromSeed(s.seed.Tree),
		buffers:    newBufferList(),
		transcript: newTranscript(s.cfg.TranscriptMaxLines, s.cfg.Prompt, s.seed.Welcome),
	}
	for _, buf := range s.seed.Buffers {
		st.buffers.open(buf.Path, buf.Content)
	}
	s.sessions[id] = st
	s.logger.With("session", id).Debug("service session seeded",
		"files", len(s.seed.Tree), "buffers", len(s.seed.Buffers))
	return st
}

func (s *service) sessionFor(ctx context.Context, id schema.SessionID) (*sessionState, pslog.Logger, error) {
	if err := schema.ValidateSessionID(id); err != nil {
		return nil, nil, err
	}
	return s.getOrCreateSessionLocked(id), logx.WithSession(ctx, id), nil
}

// File tree lifecycle.

func (s *service) CreateFile(ctx context.Context, req schema.CreateFileRequest) (schema.CreateFileResponse, error) {
	if ctx == nil {
		return schema.CreateFileResponse{}, errors.New("missing context")
	}
	name, err := schema.NormalizeFileName(req.Name)
	if err != nil {
		return schema.CreateFileResponse{}, err
	}

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.CreateFileResponse{}, err
	}
	if st.tree.containsShallow(name) {
		s.mu.Unlock()
		log.Warn("service file create failed", "name", name, "err", schema.ErrDuplicateName)
		return schema.CreateFileResponse{}, schema.ErrDuplicateName
	}
	content := lang.DefaultContent(name)
	node := st.tree.addTopLevel(name, content)
	buf := st.buffers.open(schema.Path(name), content)
	event := s.workspaceEventLocked(req.SessionID, st)
	snap := node.snapshot("")
	bufSnap := buf.snapshot(true)
	s.mu.Unlock()

	s.emitWorkspace(event)
	log.Info("service file created", "name", name)
	return schema.CreateFileResponse{Node: snap, Buffer: bufSnap}, nil
}

func (s *service) TouchFile(ctx context.Context, req schema.TouchFileRequest) (schema.TouchFileResponse, error) {
	if ctx == nil {
		return schema.TouchFileResponse{}, errors.New("missing context")
	}
	name, err := schema.NormalizeFileName(req.Name)
	if err != nil {
		return schema.TouchFileResponse{}, err
	}

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.TouchFileResponse{}, err
	}
	if st.tree.containsTopLevel(name) {
		s.mu.Unlock()
		log.Warn("service file touch failed", "name", name, "err", schema.ErrDuplicateName)
		return schema.TouchFileResponse{}, schema.ErrDuplicateName
	}
	node := st.tree.addTopLevel(name, "")
	event := s.workspaceEventLocked(req.SessionID, st)
	snap := node.snapshot("")
	s.mu.Unlock()

	s.emitWorkspace(event)
	log.Info("service file touched", "name", name)
	return schema.TouchFileResponse{Node: snap}, nil
}

func (s *service) DeleteFile(ctx context.Context, req schema.DeleteFileRequest) (schema.DeleteFileResponse, error) {
	if ctx == nil {
		return schema.DeleteFileResponse{}, errors.New("missing context")
	}

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.DeleteFileResponse{}, err
	}
	if !st.tree.remove(req.Path) {
		s.mu.Unlock()
		log.Warn("service file delete failed", "file", req.Path, "err", schema.ErrFileNotFound)
		return schema.DeleteFileResponse{}, schema.ErrFileNotFound
	}
	closed := st.buffers.close(req.Path) == nil
	resp := schema.DeleteFileResponse{
		ClosedBuffer: closed,
		ActivePath:   st.buffers.activePath(),
	}
	event := s.workspaceEventLocked(req.SessionID, st)
	s.mu.Unlock()

	s.emitWorkspace(event)
	logx.WithFile(log, req.Path).Info("service file deleted", "closed_buffer", closed)
	return resp, nil
}

func (s *service) ToggleFolder(ctx context.Context, req schema.ToggleFolderRequest) (schema.ToggleFolderResponse, error) {
	if ctx == nil {
		return schema.ToggleFolderResponse{}, errors.New("missing context")
	}

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.ToggleFolderResponse{}, err
	}
	node, err := st.tree.toggle(req.Path)
	if err != nil {
		s.mu.Unlock()
		log.Warn("service folder toggle failed", "file", req.Path, "err", err)
		return schema.ToggleFolderResponse{}, err
	}
	event := s.workspaceEventLocked(req.SessionID, st)
	snap := node.snapshot(parentPath(req.Path))
	s.mu.Unlock()

	s.emitWorkspace(event)
	return schema.ToggleFolderResponse{Node: snap}, nil
}

func (s *service) ListFiles(ctx context.Context, req schema.ListFilesRequest) (schema.ListFilesResponse, error) {
	if ctx == nil {
		return schema.ListFilesResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, _, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.ListFilesResponse{}, err
	}
	names := st.tree.listTopLevel()
	s.mu.Unlock()
	return schema.ListFilesResponse{Names: names}, nil
}

func (s *service) GetWorkspace(ctx context.Context, req schema.GetWorkspaceRequest) (schema.GetWorkspaceResponse, error) {
	if ctx == nil {
		return schema.GetWorkspaceResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, _, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.GetWorkspaceResponse{}, err
	}
	snap := s.workspaceSnapshotLocked(st)
	s.mu.Unlock()
	return schema.GetWorkspaceResponse{Workspace: snap}, nil
}

// Buffer lifecycle.

func (s *service) OpenFile(ctx context.Context, req schema.OpenFileRequest) (schema.OpenFileResponse, error) {
	if ctx == nil {
		return schema.OpenFileResponse{}, errors.New("missing context")
	}
	name, err := schema.NormalizeFileName(req.Name)
	if err != nil {
		return schema.OpenFileResponse{}, err
	}
	path := schema.JoinPath(req.Parent, name)

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.OpenFileResponse{}, err
	}
	content := lang.DefaultContent(name)
	if node, ok := st.tree.find(path); ok && node.kind == schema.NodeFile && node.content != "" {
		content = node.content
	}
	buf := st.buffers.open(path, content)
	event := s.workspaceEventLocked(req.SessionID, st)
	snap := buf.snapshot(true)
	s.mu.Unlock()

	s.emitWorkspace(event)
	logx.WithFile(log, path).Debug("service buffer opened")
	return schema.OpenFileResponse{Buffer: snap}, nil
}

func (s *service) CloseFile(ctx context.Context, req schema.CloseFileRequest) (schema.CloseFileResponse, error) {
	if ctx == nil {
		return schema.CloseFileResponse{}, errors.New("missing context")
	}

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.CloseFileResponse{}, err
	}
	if err := st.buffers.close(req.Path); err != nil {
		s.mu.Unlock()
		log.Warn("service buffer close failed", "file", req.Path, "err", err)
		return schema.CloseFileResponse{}, err
	}
	resp := schema.CloseFileResponse{ActivePath: st.buffers.activePath()}
	event := s.workspaceEventLocked(req.SessionID, st)
	s.mu.Unlock()

	s.emitWorkspace(event)
	logx.WithFile(log, req.Path).Debug("service buffer closed")
	return resp, nil
}

func (s *service) ActivateBuffer(ctx context.Context, req schema.ActivateBufferRequest) (schema.ActivateBufferResponse, error) {
	if ctx == nil {
		return schema.ActivateBufferResponse{}, errors.New("missing context")
	}

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.ActivateBufferResponse{}, err
	}
	buf, err := st.buffers.activate(req.Path)
	if err != nil {
		s.mu.Unlock()
		log.Warn("service buffer activate failed", "file", req.Path, "err", err)
		return schema.ActivateBufferResponse{}, err
	}
	event := s.workspaceEventLocked(req.SessionID, st)
	snap := buf.snapshot(true)
	s.mu.Unlock()

	s.emitWorkspace(event)
	return schema.ActivateBufferResponse{Buffer: snap}, nil
}

func (s *service) UpdateActiveBuffer(ctx context.Context, req schema.UpdateActiveBufferRequest) (schema.UpdateActiveBufferResponse, error) {
	if ctx == nil {
		return schema.UpdateActiveBufferResponse{}, errors.New("missing context")
	}

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.UpdateActiveBufferResponse{}, err
	}
	buf, ok := st.buffers.activeBuffer()
	if !ok {
		s.mu.Unlock()
		log.Warn("service buffer update failed", "err", schema.ErrNoActiveBuffer)
		return schema.UpdateActiveBufferResponse{}, schema.ErrNoActiveBuffer
	}
	buf.content = req.Content
	event := s.workspaceEventLocked(req.SessionID, st)
	snap := buf.snapshot(true)
	s.mu.Unlock()

	s.emitWorkspace(event)
	return schema.UpdateActiveBufferResponse{Buffer: snap}, nil
}

func (s *service) ListBuffers(ctx context.Context, req schema.ListBuffersRequest) (schema.ListBuffersResponse, error) {
	if ctx == nil {
		return schema.ListBuffersResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, _, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.ListBuffersResponse{}, err
	}
	resp := schema.ListBuffersResponse{
		Buffers:    st.buffers.snapshot(),
		ActivePath: st.buffers.activePath(),
	}
	s.mu.Unlock()
	return resp, nil
}

// Execution.

func (s *service) RunActive(ctx context.Context, req schema.RunActiveRequest) (schema.RunActiveResponse, error) {
	if ctx == nil {
		return schema.RunActiveResponse{}, errors.New("missing context")
	}
	result, problems, err := s.run(ctx, req.SessionID, "", "")
	if err != nil {
		return schema.RunActiveResponse{}, err
	}
	return schema.RunActiveResponse{Result: result, Problems: problems}, nil
}

func (s *service) RunFile(ctx context.Context, req schema.RunFileRequest) (schema.RunFileResponse, error) {
	if ctx == nil {
		return schema.RunFileResponse{}, errors.New("missing context")
	}
	if req.Path == "" {
		return schema.RunFileResponse{}, schema.ErrFileNotFound
	}
	result, problems, err := s.run(ctx, req.SessionID, req.Path, req.Expect)
	if err != nil {
		return schema.RunFileResponse{}, err
	}
	return schema.RunFileResponse{Result: result, Problems: problems}, nil
}

// run resolves the target buffer, evaluates it outside the lock, and records
// transcript, problems, and run-state transitions. An empty path targets the
// active buffer; a named path must match an open buffer (the tree is not
// consulted), and a matched buffer becomes active before the run.
func (s *service) run(ctx context.Context, id schema.SessionID, path schema.Path, expect schema.Language) (schema.ExecutionResult, []schema.Problem, error) {
	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, id)
	if err != nil {
		s.mu.Unlock()
		return schema.ExecutionResult{}, nil, err
	}

	var name string
	var language schema.Language
	var content string
	var activated *schema.WorkspaceEvent
	if path == "" {
		buf, ok := st.buffers.activeBuffer()
		if !ok {
			s.mu.Unlock()
			log.Warn("service run failed", "err", schema.ErrNoActiveBuffer)
			return schema.ExecutionResult{}, nil, schema.ErrNoActiveBuffer
		}
		path = buf.path
		name = lastSegment(buf.path)
		language = buf.language
		content = buf.content
	} else {
		buf, _ := st.buffers.find(path)
		if buf == nil {
			s.mu.Unlock()
			logx.WithFile(log, path).Warn("service run failed", "err", schema.ErrFileNotFound)
			return schema.ExecutionResult{}, nil, schema.ErrFileNotFound
		}
		if expect != "" && buf.language != expect {
			s.mu.Unlock()
			logx.WithFile(log, path).Warn("service run failed", "language", buf.language, "err", schema.ErrLanguageMismatch)
			return schema.ExecutionResult{}, nil, schema.ErrLanguageMismatch
		}
		st.buffers.activate(path)
		name = lastSegment(buf.path)
		language = buf.language
		content = buf.content
		event := s.workspaceEventLocked(id, st)
		activated = &event
	}

	if st.runTimer != nil {
		st.runTimer.Stop()
		st.runTimer = nil
	}
	st.running = true
	st.runningFile = path
	startEvent := schema.RunStateEvent{SessionID: id, Running: true, File: path}
	s.mu.Unlock()
	if activated != nil {
		s.emitWorkspace(*activated)
	}
	s.emitRunState(startEvent)
	log = logx.WithFile(log, path)
	log.Info("service run start", "language", language)

	result := s.exec.Run(ctx, name, language, content)

	outputs := append([]string(nil), result.OutputLines...)
	var problems []schema.Problem
	if result.Error != "" {
		outputs = append(outputs, "Error: "+result.Error)
		// No source mapping exists, so every problem points at line 1.
		problems = []schema.Problem{{
			Type:    "error",
			Message: result.Error,
			File:    path,
			Line:    1,
		}}
	}

	s.mu.Lock()
	st = s.getOrCreateSessionLocked(id)
	appended := st.transcript.AppendRun(result.Invocation, outputs...)
	st.problems = problems
	transcriptEvent := schema.TranscriptEvent{SessionID: id, Lines: st.transcript.eventLines(appended)}
	problemsEvent := schema.ProblemsEvent{SessionID: id, Problems: problems}
	var stopEvent *schema.RunStateEvent
	if s.cfg.RunDelay > 0 {
		st.runTimer = time.AfterFunc(s.cfg.RunDelay, func() {
			s.clearRunning(id)
		})
	} else {
		st.running = false
		st.runningFile = ""
		stopEvent = &schema.RunStateEvent{SessionID: id}
	}
	s.mu.Unlock()

	s.emitTranscript(transcriptEvent)
	s.emitProblems(problemsEvent)
	if stopEvent != nil {
		s.emitRunState(*stopEvent)
	}
	if result.Error != "" {
		log.Warn("service run finished", "err", result.Error, "lines", len(result.OutputLines))
	} else {
		log.Info("service run finished", "lines", len(result.OutputLines), "simulated", result.Simulated)
	}
	return result, problems, nil
}

// clearRunning flips the cosmetic running flag off after the configured delay.
func (s *service) clearRunning(id schema.SessionID) {
	s.mu.Lock()
	st, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	st.running = false
	st.runningFile = ""
	st.runTimer = nil
	s.mu.Unlock()
	s.emitRunState(schema.RunStateEvent{SessionID: id})
}

func (s *service) SaveActive(ctx context.Context, req schema.SaveActiveRequest) (schema.SaveActiveResponse, error) {
	if ctx == nil {
		return schema.SaveActiveResponse{}, errors.New("missing context")
	}

	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.SaveActiveResponse{}, err
	}
	buf, ok := st.buffers.activeBuffer()
	if !ok {
		s.mu.Unlock()
		log.Warn("service save failed", "err", schema.ErrNoActiveBuffer)
		return schema.SaveActiveResponse{}, schema.ErrNoActiveBuffer
	}
	if node, found := st.tree.find(buf.path); found && node.kind == schema.NodeFile {
		node.content = buf.content
	}
	path := buf.path
	s.mu.Unlock()

	logx.WithFile(log, path).Info("service buffer saved")
	return schema.SaveActiveResponse{Path: path}, nil
}

func (s *service) GetProblems(ctx context.Context, req schema.GetProblemsRequest) (schema.GetProblemsResponse, error) {
	if ctx == nil {
		return schema.GetProblemsResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, _, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.GetProblemsResponse{}, err
	}
	problems := append([]schema.Problem(nil), st.problems...)
	s.mu.Unlock()
	return schema.GetProblemsResponse{Problems: problems}, nil
}

// Transcript.

func (s *service) EchoCommand(ctx context.Context, req schema.EchoCommandRequest) (schema.EchoCommandResponse, error) {
	if ctx == nil {
		return schema.EchoCommandResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, _, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.EchoCommandResponse{}, err
	}
	appended := st.transcript.Echo(req.Command)
	event := schema.TranscriptEvent{SessionID: req.SessionID, Lines: st.transcript.eventLines(appended)}
	s.mu.Unlock()
	s.emitTranscript(event)
	return schema.EchoCommandResponse{}, nil
}

func (s *service) RespondCommand(ctx context.Context, req schema.RespondCommandRequest) (schema.RespondCommandResponse, error) {
	if ctx == nil {
		return schema.RespondCommandResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, _, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.RespondCommandResponse{}, err
	}
	appended := st.transcript.Respond(req.Lines...)
	event := schema.TranscriptEvent{SessionID: req.SessionID, Lines: st.transcript.eventLines(appended)}
	s.mu.Unlock()
	s.emitTranscript(event)
	return schema.RespondCommandResponse{}, nil
}

func (s *service) ClearTranscript(ctx context.Context, req schema.ClearTranscriptRequest) (schema.ClearTranscriptResponse, error) {
	if ctx == nil {
		return schema.ClearTranscriptResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, log, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.ClearTranscriptResponse{}, err
	}
	st.transcript.Clear()
	event := schema.TranscriptEvent{
		SessionID: req.SessionID,
		Lines:     st.transcript.eventLines([]string{s.cfg.Prompt}),
		Cleared:   true,
	}
	s.mu.Unlock()
	s.emitTranscript(event)
	log.Debug("service transcript cleared")
	return schema.ClearTranscriptResponse{}, nil
}

func (s *service) GetTranscript(ctx context.Context, req schema.GetTranscriptRequest) (schema.GetTranscriptResponse, error) {
	if ctx == nil {
		return schema.GetTranscriptResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, _, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.GetTranscriptResponse{}, err
	}
	snap := st.transcript.Snapshot(req.Limit)
	s.mu.Unlock()
	return schema.GetTranscriptResponse{Transcript: snap}, nil
}

func (s *service) ScrollTranscript(ctx context.Context, req schema.ScrollTranscriptRequest) (schema.ScrollTranscriptResponse, error) {
	if ctx == nil {
		return schema.ScrollTranscriptResponse{}, errors.New("missing context")
	}
	s.mu.Lock()
	st, _, err := s.sessionFor(ctx, req.SessionID)
	if err != nil {
		s.mu.Unlock()
		return schema.ScrollTranscriptResponse{}, err
	}
	st.transcript.Scroll(req.Delta, req.Limit)
	snap := st.transcript.Snapshot(req.Limit)
	s.mu.Unlock()
	return schema.ScrollTranscriptResponse{Transcript: snap}, nil
}

// Session lifecycle.

func (s *service) ResetSession(ctx context.Context, req schema.ResetSessionRequest) (schema.ResetSessionResponse, error) {
	if ctx == nil {
		return schema.ResetSessionResponse{}, errors.New("missing context")
	}
	if err := schema.ValidateSessionID(req.SessionID); err != nil {
		return schema.ResetSessionResponse{}, err
	}
	s.mu.Lock()
	st, ok := s.sessions[req.SessionID]
	if ok && st.runTimer != nil {
		st.runTimer.Stop()
	}
	delete(s.sessions, req.SessionID)
	s.mu.Unlock()
	logx.WithSession(ctx, req.SessionID).Info("service session reset")
	return schema.ResetSessionResponse{}, nil
}

// Snapshot and event helpers.

func (s *service) workspaceSnapshotLocked(st *sessionState) schema.WorkspaceSnapshot {
	return schema.WorkspaceSnapshot{
		Tree:       st.tree.snapshot(),
		Buffers:    st.buffers.snapshot(),
		ActivePath: st.buffers.activePath(),
		Running:    st.running,
	}
}

func (s *service) workspaceEventLocked(id schema.SessionID, st *sessionState) schema.WorkspaceEvent {
	return schema.WorkspaceEvent{SessionID: id, Workspace: s.workspaceSnapshotLocked(st)}
}

func (s *service) emitTranscript(event schema.TranscriptEvent) {
	if s.sink != nil {
		s.sink.OnTranscript(event)
	}
}

func (s *service) emitProblems(event schema.ProblemsEvent) {
	if s.sink != nil {
		s.sink.OnProblems(event)
	}
}

func (s *service) emitWorkspace(event schema.WorkspaceEvent) {
	if s.sink != nil {
		s.sink.OnWorkspace(event)
	}
}

func (s *service) emitRunState(event schema.RunStateEvent) {
	if s.sink != nil {
		s.sink.OnRunState(event)
	}
}

func lastSegment(path schema.Path) string {
	segments := schema.SplitPath(path)
	if len(segments) == 0 {
		return string(path)
	}
	return segments[len(segments)-1]
}

func parentPath(path schema.Path) schema.Path {
	segments := schema.SplitPath(path)
	if len(segments) <= 1 {
		return ""
	}
	return schema.Path(joinSegments(segments[:len(segments)-1]))
}
