package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/coderoom-dev/coderoom/schema"
)

const testSession schema.SessionID = "alice"

type stubExecutor struct {
	mu      sync.Mutex
	calls   []stubCall
	results map[string]schema.ExecutionResult
}

type stubCall struct {
	file     string
	language schema.Language
	content  string
}

func (s *stubExecutor) Run(_ context.Context, file string, language schema.Language, content string) schema.ExecutionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, stubCall{file: file, language: language, content: content})
	if result, ok := s.results[file]; ok {
		return result
	}
	return schema.ExecutionResult{Invocation: "$ node " + file}
}

func (s *stubExecutor) lastCall(t *testing.T) stubCall {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		t.Fatalf("executor was never called")
	}
	return s.calls[len(s.calls)-1]
}

type recordingSink struct {
	mu         sync.Mutex
	transcript []schema.TranscriptEvent
	problems   []schema.ProblemsEvent
	workspace  []schema.WorkspaceEvent
	runState   []schema.RunStateEvent
}

func (r *recordingSink) OnTranscript(event schema.TranscriptEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transcript = append(r.transcript, event)
}

func (r *recordingSink) OnProblems(event schema.ProblemsEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.problems = append(r.problems, event)
}

func (r *recordingSink) OnWorkspace(event schema.WorkspaceEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspace = append(r.workspace, event)
}

func (r *recordingSink) OnRunState(event schema.RunStateEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runState = append(r.runState, event)
}

func (r *recordingSink) runStates() []schema.RunStateEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]schema.RunStateEvent(nil), r.runState...)
}

func testSeed() schema.WorkspaceSeed {
	return schema.WorkspaceSeed{
		Welcome: []string{"Welcome to Professional IDE Terminal"},
		Tree: []schema.SeedNode{
			{
				Name:     "src",
				Kind:     schema.NodeFolder,
				Expanded: true,
				Children: []schema.SeedNode{
					{Name: "main.js", Content: "console.log(\"Hello, World!\");"},
					{Name: "utils.js"},
				},
			},
			{Name: "package.json"},
			{Name: "README.md"},
		},
		Buffers: []schema.SeedBuffer{
			{Path: "src/main.js", Content: "console.log(\"Hello, World!\");"},
		},
	}
}

func newTestService(t *testing.T, cfg schema.ServiceConfig) (Service, *stubExecutor, *recordingSink) {
	t.Helper()
	exec := &stubExecutor{results: map[string]schema.ExecutionResult{}}
	sink := &recordingSink{}
	svc, err := NewService(cfg, ServiceDeps{
		Executor:  exec,
		Seed:      testSeed(),
		EventSink: sink,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, exec, sink
}

func TestNewServiceRequiresExecutor(t *testing.T) {
	if _, err := NewService(schema.ServiceConfig{}, ServiceDeps{}); err == nil {
		t.Fatalf("expected error for missing executor")
	}
}

func TestServiceSeedsSessionLazily(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	resp, err := svc.GetWorkspace(ctx, schema.GetWorkspaceRequest{SessionID: testSession})
	if err != nil {
		t.Fatalf("GetWorkspace: %v", err)
	}
	ws := resp.Workspace
	if len(ws.Tree) != 3 {
		t.Fatalf("tree roots = %d, want 3", len(ws.Tree))
	}
	if ws.ActivePath != "src/main.js" {
		t.Fatalf("active = %q", ws.ActivePath)
	}
	if len(ws.Buffers) != 1 || !ws.Buffers[0].Active {
		t.Fatalf("buffers = %+v", ws.Buffers)
	}

	tr, err := svc.GetTranscript(ctx, schema.GetTranscriptRequest{SessionID: testSession})
	if err != nil {
		t.Fatalf("GetTranscript: %v", err)
	}
	lines := tr.Transcript.Lines
	if len(lines) != 2 || lines[0].Text != "Welcome to Professional IDE Terminal" || lines[1].Text != "$ " {
		t.Fatalf("seed transcript = %+v", lines)
	}
}

func TestServiceRejectsInvalidSession(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	_, err := svc.GetWorkspace(context.Background(), schema.GetWorkspaceRequest{})
	if !errors.Is(err, schema.ErrInvalidSession) {
		t.Fatalf("err = %v, want ErrInvalidSession", err)
	}
}

func TestServiceCreateFile(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	resp, err := svc.CreateFile(ctx, schema.CreateFileRequest{SessionID: testSession, Name: "test.js"})
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if resp.Node.Language != schema.LanguageJavaScript {
		t.Fatalf("node language = %q", resp.Node.Language)
	}
	if !resp.Buffer.Active {
		t.Fatalf("created file should open as the active buffer")
	}
	if resp.Buffer.Content != "// test.js\nconsole.log('Hello from test.js');" {
		t.Fatalf("default content = %q", resp.Buffer.Content)
	}

	if _, err := svc.CreateFile(ctx, schema.CreateFileRequest{SessionID: testSession, Name: "test.js"}); !errors.Is(err, schema.ErrDuplicateName) {
		t.Fatalf("duplicate err = %v", err)
	}
	// The shallow check reaches direct children of top-level folders.
	if _, err := svc.CreateFile(ctx, schema.CreateFileRequest{SessionID: testSession, Name: "main.js"}); !errors.Is(err, schema.ErrDuplicateName) {
		t.Fatalf("folder-child duplicate err = %v", err)
	}
	if _, err := svc.CreateFile(ctx, schema.CreateFileRequest{SessionID: testSession, Name: "  "}); !errors.Is(err, schema.ErrInvalidName) {
		t.Fatalf("blank name err = %v", err)
	}
}

func TestServiceTouchFile(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	resp, err := svc.TouchFile(ctx, schema.TouchFileRequest{SessionID: testSession, Name: "notes.txt"})
	if err != nil {
		t.Fatalf("TouchFile: %v", err)
	}
	if resp.Node.Name != "notes.txt" {
		t.Fatalf("node = %+v", resp.Node)
	}

	ws, _ := svc.GetWorkspace(ctx, schema.GetWorkspaceRequest{SessionID: testSession})
	for _, buf := range ws.Workspace.Buffers {
		if buf.Path == "notes.txt" {
			t.Fatalf("touch must not open a buffer")
		}
	}

	if _, err := svc.TouchFile(ctx, schema.TouchFileRequest{SessionID: testSession, Name: "README.md"}); !errors.Is(err, schema.ErrDuplicateName) {
		t.Fatalf("duplicate err = %v", err)
	}
	// Terminal duplicate detection stops at the top level.
	if _, err := svc.TouchFile(ctx, schema.TouchFileRequest{SessionID: testSession, Name: "main.js"}); err != nil {
		t.Fatalf("folder-child name should be creatable from the terminal: %v", err)
	}
}

func TestServiceDeleteFileClosesBuffer(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	if _, err := svc.CreateFile(ctx, schema.CreateFileRequest{SessionID: testSession, Name: "temp.js"}); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	resp, err := svc.DeleteFile(ctx, schema.DeleteFileRequest{SessionID: testSession, Path: "temp.js"})
	if err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if !resp.ClosedBuffer {
		t.Fatalf("open buffer should close with its file")
	}
	if resp.ActivePath != "src/main.js" {
		t.Fatalf("focus should fall back, got %q", resp.ActivePath)
	}

	if _, err := svc.DeleteFile(ctx, schema.DeleteFileRequest{SessionID: testSession, Path: "missing.js"}); !errors.Is(err, schema.ErrFileNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestServiceOpenFileContentResolution(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	// Seeded tree content wins over the template.
	resp, err := svc.OpenFile(ctx, schema.OpenFileRequest{SessionID: testSession, Name: "main.js", Parent: "src"})
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if resp.Buffer.Content != "console.log(\"Hello, World!\");" {
		t.Fatalf("content = %q", resp.Buffer.Content)
	}

	// A file without stored content opens with the language template.
	resp, err = svc.OpenFile(ctx, schema.OpenFileRequest{SessionID: testSession, Name: "utils.js", Parent: "src"})
	if err != nil {
		t.Fatalf("OpenFile utils: %v", err)
	}
	if resp.Buffer.Content != "// utils.js\nconsole.log('Hello from utils.js');" {
		t.Fatalf("template content = %q", resp.Buffer.Content)
	}
}

func TestServiceUpdateActiveBuffer(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	resp, err := svc.UpdateActiveBuffer(ctx, schema.UpdateActiveBufferRequest{SessionID: testSession, Content: "edited"})
	if err != nil {
		t.Fatalf("UpdateActiveBuffer: %v", err)
	}
	if resp.Buffer.Content != "edited" || resp.Buffer.Path != "src/main.js" {
		t.Fatalf("buffer = %+v", resp.Buffer)
	}

	if _, err := svc.CloseFile(ctx, schema.CloseFileRequest{SessionID: testSession, Path: "src/main.js"}); err != nil {
		t.Fatalf("CloseFile: %v", err)
	}
	if _, err := svc.UpdateActiveBuffer(ctx, schema.UpdateActiveBufferRequest{SessionID: testSession, Content: "x"}); !errors.Is(err, schema.ErrNoActiveBuffer) {
		t.Fatalf("err = %v, want ErrNoActiveBuffer", err)
	}
}

func TestServiceRunActiveAppendsTranscript(t *testing.T) {
	svc, exec, sink := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()
	exec.results["main.js"] = schema.ExecutionResult{
		Invocation:  "$ node main.js",
		OutputLines: []string{"Hello, World!", "55"},
	}

	resp, err := svc.RunActive(ctx, schema.RunActiveRequest{SessionID: testSession})
	if err != nil {
		t.Fatalf("RunActive: %v", err)
	}
	if len(resp.Problems) != 0 {
		t.Fatalf("problems = %+v", resp.Problems)
	}

	call := exec.lastCall(t)
	if call.file != "main.js" || call.language != schema.LanguageJavaScript {
		t.Fatalf("call = %+v", call)
	}

	tr, _ := svc.GetTranscript(ctx, schema.GetTranscriptRequest{SessionID: testSession})
	lines := tr.Transcript.Lines
	want := []string{"Welcome to Professional IDE Terminal", "$ node main.js", "Hello, World!", "55", "$ "}
	if len(lines) != len(want) {
		t.Fatalf("transcript = %+v, want %v", lines, want)
	}
	for i := range want {
		if lines[i].Text != want[i] {
			t.Fatalf("line[%d] = %q, want %q", i, lines[i].Text, want[i])
		}
	}

	states := sink.runStates()
	if len(states) != 2 || !states[0].Running || states[1].Running {
		t.Fatalf("run state events = %+v", states)
	}
	if states[0].File != "src/main.js" {
		t.Fatalf("run state file = %q", states[0].File)
	}
}

func TestServiceRunActiveErrorKeepsOutputAndRecordsProblem(t *testing.T) {
	svc, exec, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()
	exec.results["main.js"] = schema.ExecutionResult{
		Invocation:  "$ node main.js",
		OutputLines: []string{"before"},
		Error:       "boom",
	}

	resp, err := svc.RunActive(ctx, schema.RunActiveRequest{SessionID: testSession})
	if err != nil {
		t.Fatalf("RunActive: %v", err)
	}
	if len(resp.Problems) != 1 || resp.Problems[0].Message != "boom" || resp.Problems[0].Type != "error" {
		t.Fatalf("problems = %+v", resp.Problems)
	}
	if resp.Problems[0].Line != 1 {
		t.Fatalf("problem line = %d, want 1", resp.Problems[0].Line)
	}
	if resp.Problems[0].File != "src/main.js" {
		t.Fatalf("problem file = %q", resp.Problems[0].File)
	}

	tr, _ := svc.GetTranscript(ctx, schema.GetTranscriptRequest{SessionID: testSession})
	lines := tr.Transcript.Lines
	want := []string{"Welcome to Professional IDE Terminal", "$ node main.js", "before", "Error: boom", "$ "}
	for i := range want {
		if lines[i].Text != want[i] {
			t.Fatalf("line[%d] = %q, want %q", i, lines[i].Text, want[i])
		}
	}

	// A clean follow-up run clears the problems list.
	exec.results["main.js"] = schema.ExecutionResult{Invocation: "$ node main.js"}
	if _, err := svc.RunActive(ctx, schema.RunActiveRequest{SessionID: testSession}); err != nil {
		t.Fatalf("second RunActive: %v", err)
	}
	problems, _ := svc.GetProblems(ctx, schema.GetProblemsRequest{SessionID: testSession})
	if len(problems.Problems) != 0 {
		t.Fatalf("problems should clear, got %+v", problems.Problems)
	}
}

func TestServiceRunFileValidation(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	if _, err := svc.RunFile(ctx, schema.RunFileRequest{SessionID: testSession, Path: "missing.js", Expect: schema.LanguageJavaScript}); !errors.Is(err, schema.ErrFileNotFound) {
		t.Fatalf("missing err = %v", err)
	}
	if _, err := svc.RunFile(ctx, schema.RunFileRequest{SessionID: testSession, Path: "src", Expect: schema.LanguageJavaScript}); !errors.Is(err, schema.ErrFileNotFound) {
		t.Fatalf("folder err = %v", err)
	}
	// Only open buffers are runnable by name; the tree is not consulted.
	if _, err := svc.RunFile(ctx, schema.RunFileRequest{SessionID: testSession, Path: "package.json"}); !errors.Is(err, schema.ErrFileNotFound) {
		t.Fatalf("tree-only err = %v", err)
	}
	if _, err := svc.RunFile(ctx, schema.RunFileRequest{SessionID: testSession, Path: "src/main.js", Expect: schema.LanguagePython}); !errors.Is(err, schema.ErrLanguageMismatch) {
		t.Fatalf("mismatch err = %v", err)
	}
}

func TestServiceRunFileTargetsOpenBuffer(t *testing.T) {
	svc, exec, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	if _, err := svc.UpdateActiveBuffer(ctx, schema.UpdateActiveBufferRequest{SessionID: testSession, Content: "edited"}); err != nil {
		t.Fatalf("UpdateActiveBuffer: %v", err)
	}
	// A buffer with no tree entry is still runnable, and running a named
	// buffer activates it.
	if _, err := svc.OpenFile(ctx, schema.OpenFileRequest{SessionID: testSession, Name: "scratch.js"}); err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := svc.RunFile(ctx, schema.RunFileRequest{SessionID: testSession, Path: "src/main.js", Expect: schema.LanguageJavaScript}); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if call := exec.lastCall(t); call.content != "edited" {
		t.Fatalf("executor saw %q, want the open buffer's content", call.content)
	}
	ws, _ := svc.GetWorkspace(ctx, schema.GetWorkspaceRequest{SessionID: testSession})
	if ws.Workspace.ActivePath != "src/main.js" {
		t.Fatalf("named run should activate its buffer, active = %q", ws.Workspace.ActivePath)
	}

	if _, err := svc.RunFile(ctx, schema.RunFileRequest{SessionID: testSession, Path: "scratch.js", Expect: schema.LanguageJavaScript}); err != nil {
		t.Fatalf("RunFile scratch: %v", err)
	}
	if call := exec.lastCall(t); call.file != "scratch.js" {
		t.Fatalf("executor ran %q, want scratch.js", call.file)
	}

	// Closing the buffer makes the name unresolvable even though the tree
	// still holds the file.
	if _, err := svc.CloseFile(ctx, schema.CloseFileRequest{SessionID: testSession, Path: "src/main.js"}); err != nil {
		t.Fatalf("CloseFile: %v", err)
	}
	if _, err := svc.RunFile(ctx, schema.RunFileRequest{SessionID: testSession, Path: "src/main.js", Expect: schema.LanguageJavaScript}); !errors.Is(err, schema.ErrFileNotFound) {
		t.Fatalf("closed-buffer err = %v", err)
	}
}

func TestServiceRunDelayKeepsRunningFlag(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{RunDelay: 30 * time.Millisecond})
	ctx := context.Background()

	if _, err := svc.RunActive(ctx, schema.RunActiveRequest{SessionID: testSession}); err != nil {
		t.Fatalf("RunActive: %v", err)
	}
	ws, _ := svc.GetWorkspace(ctx, schema.GetWorkspaceRequest{SessionID: testSession})
	if !ws.Workspace.Running {
		t.Fatalf("running flag should stay set during the delay")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		ws, _ = svc.GetWorkspace(ctx, schema.GetWorkspaceRequest{SessionID: testSession})
		if !ws.Workspace.Running {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("running flag never cleared")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServiceSaveActiveStoresContent(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	if _, err := svc.UpdateActiveBuffer(ctx, schema.UpdateActiveBufferRequest{SessionID: testSession, Content: "saved body"}); err != nil {
		t.Fatalf("UpdateActiveBuffer: %v", err)
	}
	resp, err := svc.SaveActive(ctx, schema.SaveActiveRequest{SessionID: testSession})
	if err != nil {
		t.Fatalf("SaveActive: %v", err)
	}
	if resp.Path != "src/main.js" {
		t.Fatalf("saved path = %q", resp.Path)
	}

	// After closing the buffer, reopening reads the saved tree content back.
	if _, err := svc.CloseFile(ctx, schema.CloseFileRequest{SessionID: testSession, Path: "src/main.js"}); err != nil {
		t.Fatalf("CloseFile: %v", err)
	}
	opened, err := svc.OpenFile(ctx, schema.OpenFileRequest{SessionID: testSession, Name: "main.js", Parent: "src"})
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if opened.Buffer.Content != "saved body" {
		t.Fatalf("reopened content = %q, want the saved content", opened.Buffer.Content)
	}
}

func TestServiceEchoRespondClear(t *testing.T) {
	svc, _, sink := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	if _, err := svc.EchoCommand(ctx, schema.EchoCommandRequest{SessionID: testSession, Command: "ls"}); err != nil {
		t.Fatalf("EchoCommand: %v", err)
	}
	if _, err := svc.RespondCommand(ctx, schema.RespondCommandRequest{SessionID: testSession, Lines: []string{"src  package.json  README.md"}}); err != nil {
		t.Fatalf("RespondCommand: %v", err)
	}

	tr, _ := svc.GetTranscript(ctx, schema.GetTranscriptRequest{SessionID: testSession})
	lines := tr.Transcript.Lines
	want := []string{"Welcome to Professional IDE Terminal", "$ ls", "src  package.json  README.md", "$ "}
	for i := range want {
		if lines[i].Text != want[i] {
			t.Fatalf("line[%d] = %q, want %q", i, lines[i].Text, want[i])
		}
	}

	if _, err := svc.ClearTranscript(ctx, schema.ClearTranscriptRequest{SessionID: testSession}); err != nil {
		t.Fatalf("ClearTranscript: %v", err)
	}
	tr, _ = svc.GetTranscript(ctx, schema.GetTranscriptRequest{SessionID: testSession})
	if len(tr.Transcript.Lines) != 1 || tr.Transcript.Lines[0].Text != "$ " {
		t.Fatalf("cleared transcript = %+v", tr.Transcript.Lines)
	}

	sink.mu.Lock()
	cleared := false
	for _, event := range sink.transcript {
		if event.Cleared {
			cleared = true
		}
	}
	sink.mu.Unlock()
	if !cleared {
		t.Fatalf("clear should emit a cleared transcript event")
	}
}

func TestServiceScrollTranscript(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		if _, err := svc.RespondCommand(ctx, schema.RespondCommandRequest{SessionID: testSession, Lines: []string{"line"}}); err != nil {
			t.Fatalf("RespondCommand: %v", err)
		}
	}
	resp, err := svc.ScrollTranscript(ctx, schema.ScrollTranscriptRequest{SessionID: testSession, Delta: 10, Limit: 5})
	if err != nil {
		t.Fatalf("ScrollTranscript: %v", err)
	}
	if resp.Transcript.AtBottom {
		t.Fatalf("scrolled view should not be at bottom")
	}
	if len(resp.Transcript.Lines) != 5 {
		t.Fatalf("viewport = %d lines, want 5", len(resp.Transcript.Lines))
	}
}

func TestServiceResetSession(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	if _, err := svc.CreateFile(ctx, schema.CreateFileRequest{SessionID: testSession, Name: "scratch.js"}); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if _, err := svc.ResetSession(ctx, schema.ResetSessionRequest{SessionID: testSession}); err != nil {
		t.Fatalf("ResetSession: %v", err)
	}
	ws, _ := svc.GetWorkspace(ctx, schema.GetWorkspaceRequest{SessionID: testSession})
	if len(ws.Workspace.Tree) != 3 {
		t.Fatalf("reset should reseed, tree = %+v", ws.Workspace.Tree)
	}
	if ws.Workspace.ActivePath != "src/main.js" {
		t.Fatalf("reset active = %q", ws.Workspace.ActivePath)
	}
}

func TestServiceSessionsAreIsolated(t *testing.T) {
	svc, _, _ := newTestService(t, schema.ServiceConfig{})
	ctx := context.Background()

	if _, err := svc.CreateFile(ctx, schema.CreateFileRequest{SessionID: "a", Name: "only-in-a.js"}); err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	files, err := svc.ListFiles(ctx, schema.ListFilesRequest{SessionID: "b"})
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	for _, name := range files.Names {
		if name == "only-in-a.js" {
			t.Fatalf("session b sees session a's file")
		}
	}
}
