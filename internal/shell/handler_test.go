package shell

import (
	"context"
	"testing"

	"github.com/coderoom-dev/coderoom/core"
	"github.com/coderoom-dev/coderoom/internal/interp"
	"github.com/coderoom-dev/coderoom/schema"
)

const testSession schema.SessionID = "term"

func newTestHandler(t *testing.T) (*Handler, core.Service) {
	t.Helper()
	svc, err := core.NewService(schema.ServiceConfig{}, core.ServiceDeps{
		Executor: interp.New(0, nil),
		Seed: schema.WorkspaceSeed{
			Welcome: []string{"Welcome to Professional IDE Terminal"},
			Tree: []schema.SeedNode{
				{
					Name:     "src",
					Kind:     schema.NodeFolder,
					Expanded: true,
					Children: []schema.SeedNode{{Name: "main.js"}},
				},
				{Name: "app.js"},
				{Name: "script.py"},
				{Name: "README.md"},
			},
			Buffers: []schema.SeedBuffer{
				{Path: "app.js", Content: `console.log("hi");`},
				{Path: "script.py", Content: `print("yo")`},
				{Path: "README.md", Content: "# readme"},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return NewHandler(svc, ""), svc
}

func transcriptTexts(t *testing.T, svc core.Service) []string {
	t.Helper()
	resp, err := svc.GetTranscript(context.Background(), schema.GetTranscriptRequest{SessionID: testSession})
	if err != nil {
		t.Fatalf("GetTranscript: %v", err)
	}
	texts := make([]string, 0, len(resp.Transcript.Lines))
	for _, line := range resp.Transcript.Lines {
		texts = append(texts, line.Text)
	}
	return texts
}

func wantTail(t *testing.T, svc core.Service, want ...string) {
	t.Helper()
	got := transcriptTexts(t, svc)
	if len(got) < len(want) {
		t.Fatalf("transcript %q shorter than want %q", got, want)
	}
	tail := got[len(got)-len(want):]
	for i := range want {
		if tail[i] != want[i] {
			t.Fatalf("tail[%d] = %q, want %q (full: %q)", i, tail[i], want[i], got)
		}
	}
}

func TestParse(t *testing.T) {
	cmd, err := Parse("  node  main.js ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd.Name != "node" || len(cmd.Args) != 1 || cmd.Args[0] != "main.js" {
		t.Fatalf("cmd = %+v", cmd)
	}
	if _, err := Parse("   "); err != schema.ErrEmptyCommand {
		t.Fatalf("blank err = %v", err)
	}
}

func TestExecuteBlankLineIsNoop(t *testing.T) {
	h, svc := newTestHandler(t)
	if err := h.Execute(context.Background(), testSession, "   "); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := transcriptTexts(t, svc)
	if len(got) != 2 {
		t.Fatalf("blank input should leave the seeded transcript alone, got %q", got)
	}
}

func TestExecuteLs(t *testing.T) {
	h, svc := newTestHandler(t)
	if err := h.Execute(context.Background(), testSession, "ls"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ ls", "src  app.js  script.py  README.md", "$ ")
}

func TestExecutePwd(t *testing.T) {
	h, svc := newTestHandler(t)
	if err := h.Execute(context.Background(), testSession, "pwd"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ pwd", "/workspace", "$ ")
}

func TestExecuteHelp(t *testing.T) {
	h, svc := newTestHandler(t)
	if err := h.Execute(context.Background(), testSession, "help"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ help",
		"Available commands: ls, pwd, clear, help, node <file>, python <file>, touch <file>, rm <file>",
		"$ ")
}

func TestExecuteUnknownCommand(t *testing.T) {
	h, svc := newTestHandler(t)
	if err := h.Execute(context.Background(), testSession, "make all"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ make all", "Command not found: make", "$ ")
}

func TestExecuteClear(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()
	if err := h.Execute(ctx, testSession, "ls"); err != nil {
		t.Fatalf("Execute ls: %v", err)
	}
	if err := h.Execute(ctx, testSession, "clear"); err != nil {
		t.Fatalf("Execute clear: %v", err)
	}
	got := transcriptTexts(t, svc)
	if len(got) != 1 || got[0] != "$ " {
		t.Fatalf("cleared transcript = %q", got)
	}
}

func TestExecuteTouch(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()
	if err := h.Execute(ctx, testSession, "touch notes.txt"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ touch notes.txt", "Created file: notes.txt", "$ ")

	if err := h.Execute(ctx, testSession, "touch notes.txt"); err != nil {
		t.Fatalf("Execute dup: %v", err)
	}
	wantTail(t, svc, "$ touch notes.txt", "File already exists: notes.txt", "$ ")

	if err := h.Execute(ctx, testSession, "touch"); err != nil {
		t.Fatalf("Execute usage: %v", err)
	}
	wantTail(t, svc, "$ touch", "Usage: touch <filename>", "$ ")
}

func TestExecuteRm(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()
	if err := h.Execute(ctx, testSession, "rm README.md"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ rm README.md", "Deleted file: README.md", "$ ")

	if err := h.Execute(ctx, testSession, "rm README.md"); err != nil {
		t.Fatalf("Execute missing: %v", err)
	}
	wantTail(t, svc, "$ rm README.md", "File not found: README.md", "$ ")

	if err := h.Execute(ctx, testSession, "rm"); err != nil {
		t.Fatalf("Execute usage: %v", err)
	}
	wantTail(t, svc, "$ rm", "Usage: rm <filename>", "$ ")
}

func TestExecuteNode(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()

	if err := h.Execute(ctx, testSession, "node app.js"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ node app.js", "$ node app.js", "hi", "$ ")

	if err := h.Execute(ctx, testSession, "node missing.js"); err != nil {
		t.Fatalf("Execute missing: %v", err)
	}
	wantTail(t, svc, "$ node missing.js", "File not found: missing.js", "$ ")

	if err := h.Execute(ctx, testSession, "node README.md"); err != nil {
		t.Fatalf("Execute mismatch: %v", err)
	}
	wantTail(t, svc, "$ node README.md", "Error: README.md is not a JavaScript file", "$ ")

	if err := h.Execute(ctx, testSession, "node"); err != nil {
		t.Fatalf("Execute usage: %v", err)
	}
	wantTail(t, svc, "$ node", "Usage: node <filename>", "$ ")
}

func TestExecuteNodeIgnoresTreeOnlyFiles(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()

	if err := h.Execute(ctx, testSession, "touch ghost.js"); err != nil {
		t.Fatalf("Execute touch: %v", err)
	}
	if err := h.Execute(ctx, testSession, "node ghost.js"); err != nil {
		t.Fatalf("Execute node: %v", err)
	}
	wantTail(t, svc, "$ node ghost.js", "File not found: ghost.js", "$ ")
}

func TestExecuteNodeRunsBufferAbsentFromTree(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()

	if _, err := svc.OpenFile(ctx, schema.OpenFileRequest{SessionID: testSession, Name: "scratch.js"}); err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := h.Execute(ctx, testSession, "node scratch.js"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ node scratch.js", "$ node scratch.js", "Hello from scratch.js", "$ ")
}

func TestExecutePython(t *testing.T) {
	h, svc := newTestHandler(t)
	ctx := context.Background()

	if err := h.Execute(ctx, testSession, "python script.py"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ python script.py", "$ python script.py", "yo", "$ ")

	if err := h.Execute(ctx, testSession, "python app.js"); err != nil {
		t.Fatalf("Execute mismatch: %v", err)
	}
	wantTail(t, svc, "$ python app.js", "Error: app.js is not a Python file", "$ ")
}

func TestExecuteCommandNamesAreCaseSensitive(t *testing.T) {
	h, svc := newTestHandler(t)
	if err := h.Execute(context.Background(), testSession, "LS"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	wantTail(t, svc, "$ LS", "Command not found: LS", "$ ")
}
