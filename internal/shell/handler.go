// Package shell implements the terminal emulator's command set on top of the
// core service. It owns the user-facing response strings; the service only
// provides the primitives.
package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/coderoom-dev/coderoom/core"
	"github.com/coderoom-dev/coderoom/internal/lang"
	"github.com/coderoom-dev/coderoom/internal/logx"
	"github.com/coderoom-dev/coderoom/schema"
)

const helpText = "Available commands: ls, pwd, clear, help, node <file>, python <file>, touch <file>, rm <file>"

// Handler dispatches terminal commands for one service.
type Handler struct {
	svc        core.Service
	workingDir string
}

// NewHandler constructs a Handler. An empty workingDir falls back to the
// schema default.
func NewHandler(svc core.Service, workingDir string) *Handler {
	if workingDir == "" {
		workingDir = schema.DefaultWorkingDir
	}
	return &Handler{svc: svc, workingDir: workingDir}
}

// Execute runs one input line for a session: echo, dispatch, respond. Blank
// lines are ignored. Errors from the service surface as transcript text, not
// as returned errors; only transport-level failures propagate.
func (h *Handler) Execute(ctx context.Context, sessionID schema.SessionID, line string) error {
	cmd, err := Parse(line)
	if errors.Is(err, schema.ErrEmptyCommand) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := h.svc.EchoCommand(ctx, schema.EchoCommandRequest{SessionID: sessionID, Command: strings.TrimSpace(line)}); err != nil {
		return err
	}
	logx.WithSession(ctx, sessionID).Debug("shell execute", "command", cmd.Name, "args", len(cmd.Args))

	switch cmd.Name {
	case "ls":
		return h.ls(ctx, sessionID)
	case "pwd":
		return h.respond(ctx, sessionID, h.workingDir)
	case "clear":
		_, err := h.svc.ClearTranscript(ctx, schema.ClearTranscriptRequest{SessionID: sessionID})
		return err
	case "help":
		return h.respond(ctx, sessionID, helpText)
	case "node":
		return h.runFile(ctx, sessionID, cmd.arg(), schema.LanguageJavaScript, "node")
	case "python":
		return h.runFile(ctx, sessionID, cmd.arg(), schema.LanguagePython, "python")
	case "touch":
		return h.touch(ctx, sessionID, cmd.arg())
	case "rm":
		return h.rm(ctx, sessionID, cmd.arg())
	default:
		return h.respond(ctx, sessionID, "Command not found: "+cmd.Name)
	}
}

func (h *Handler) ls(ctx context.Context, sessionID schema.SessionID) error {
	resp, err := h.svc.ListFiles(ctx, schema.ListFilesRequest{SessionID: sessionID})
	if err != nil {
		return err
	}
	return h.respond(ctx, sessionID, strings.Join(resp.Names, "  "))
}

// runFile handles node/python. The target must be an open buffer; a successful
// run writes its own transcript block, so only failures respond here.
func (h *Handler) runFile(ctx context.Context, sessionID schema.SessionID, name string, expect schema.Language, usage string) error {
	if name == "" {
		return h.respond(ctx, sessionID, "Usage: "+usage+" <filename>")
	}
	_, err := h.svc.RunFile(ctx, schema.RunFileRequest{
		SessionID: sessionID,
		Path:      schema.Path(name),
		Expect:    expect,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, schema.ErrFileNotFound):
		return h.respond(ctx, sessionID, "File not found: "+name)
	case errors.Is(err, schema.ErrLanguageMismatch):
		return h.respond(ctx, sessionID, "Error: "+name+" is not a "+lang.DisplayName(expect)+" file")
	default:
		return err
	}
}

func (h *Handler) touch(ctx context.Context, sessionID schema.SessionID, name string) error {
	if name == "" {
		return h.respond(ctx, sessionID, "Usage: touch <filename>")
	}
	_, err := h.svc.TouchFile(ctx, schema.TouchFileRequest{SessionID: sessionID, Name: name})
	switch {
	case err == nil:
		return h.respond(ctx, sessionID, "Created file: "+name)
	case errors.Is(err, schema.ErrDuplicateName):
		return h.respond(ctx, sessionID, "File already exists: "+name)
	default:
		return err
	}
}

func (h *Handler) rm(ctx context.Context, sessionID schema.SessionID, name string) error {
	if name == "" {
		return h.respond(ctx, sessionID, "Usage: rm <filename>")
	}
	_, err := h.svc.DeleteFile(ctx, schema.DeleteFileRequest{SessionID: sessionID, Path: schema.Path(name)})
	switch {
	case err == nil:
		return h.respond(ctx, sessionID, "Deleted file: "+name)
	case errors.Is(err, schema.ErrFileNotFound):
		return h.respond(ctx, sessionID, "File not found: "+name)
	default:
		return err
	}
}

func (h *Handler) respond(ctx context.Context, sessionID schema.SessionID, lines ...string) error {
	_, err := h.svc.RespondCommand(ctx, schema.RespondCommandRequest{SessionID: sessionID, Lines: lines})
	return err
}
