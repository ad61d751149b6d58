// Package editor glues an interactive front end to the core service. It owns
// the explorer-side flows (create with name prompt, delete with confirmation)
// and their transcript messages, which differ from the terminal command set's.
package editor

import (
	"context"
	"errors"

	"github.com/coderoom-dev/coderoom/core"
	"github.com/coderoom-dev/coderoom/internal/logx"
	"github.com/coderoom-dev/coderoom/schema"
)

// ErrNoHost indicates an interactive flow was invoked without a Host.
var ErrNoHost = errors.New("no interactive host")

// Host is the front end's modal surface. Confirm and Prompt block until the
// user answers.
type Host interface {
	// Confirm asks a yes/no question.
	Confirm(message string) bool
	// Prompt asks for a line of input; ok is false when cancelled.
	Prompt(message string) (value string, ok bool)
	// Alert shows a message requiring no answer.
	Alert(message string)
}

// Panel drives one session's editor surface.
type Panel struct {
	svc       core.Service
	host      Host
	sessionID schema.SessionID
}

// NewPanel constructs a Panel. Host may be nil for front ends without modals;
// the interactive flows then return ErrNoHost.
func NewPanel(svc core.Service, host Host, sessionID schema.SessionID) *Panel {
	return &Panel{svc: svc, host: host, sessionID: sessionID}
}

// HandleChange pushes an edit of the active buffer.
func (p *Panel) HandleChange(ctx context.Context, content string) error {
	_, err := p.svc.UpdateActiveBuffer(ctx, schema.UpdateActiveBufferRequest{
		SessionID: p.sessionID,
		Content:   content,
	})
	return err
}

// Save saves the active buffer and records the save in the transcript.
func (p *Panel) Save(ctx context.Context) error {
	resp, err := p.svc.SaveActive(ctx, schema.SaveActiveRequest{SessionID: p.sessionID})
	if err != nil {
		return err
	}
	name := string(resp.Path)
	if err := p.echo(ctx, "save "+name); err != nil {
		return err
	}
	return p.respond(ctx, "File saved: "+name)
}

// Run executes the active buffer.
func (p *Panel) Run(ctx context.Context) (schema.RunActiveResponse, error) {
	return p.svc.RunActive(ctx, schema.RunActiveRequest{SessionID: p.sessionID})
}

// CreateFile prompts for a name and creates the file at the top level. A
// cancelled or empty prompt is a no-op; a duplicate raises an alert instead of
// an error, matching the explorer's forgiving behavior.
func (p *Panel) CreateFile(ctx context.Context) error {
	if p.host == nil {
		return ErrNoHost
	}
	name, ok := p.host.Prompt("Enter file name:")
	if !ok {
		return nil
	}
	normalized, err := schema.NormalizeFileName(name)
	if err != nil {
		return nil
	}
	_, err = p.svc.CreateFile(ctx, schema.CreateFileRequest{SessionID: p.sessionID, Name: normalized})
	if errors.Is(err, schema.ErrDuplicateName) {
		p.host.Alert("File already exists!")
		return nil
	}
	if err != nil {
		return err
	}
	if err := p.echo(ctx, "touch "+normalized); err != nil {
		return err
	}
	return p.respond(ctx, "Created new file: "+normalized)
}

// DeleteFile confirms and deletes the file at path.
func (p *Panel) DeleteFile(ctx context.Context, path schema.Path) error {
	if p.host == nil {
		return ErrNoHost
	}
	name := string(path)
	if !p.host.Confirm("Are you sure you want to delete " + name + "?") {
		return nil
	}
	if _, err := p.svc.DeleteFile(ctx, schema.DeleteFileRequest{SessionID: p.sessionID, Path: path}); err != nil {
		logx.WithSession(ctx, p.sessionID).Warn("panel delete failed", "file", path, "err", err)
		return err
	}
	if err := p.echo(ctx, "rm "+name); err != nil {
		return err
	}
	return p.respond(ctx, "Deleted file: "+name)
}

// OpenFile opens a file from the tree as the active buffer.
func (p *Panel) OpenFile(ctx context.Context, name string, parent schema.Path) (schema.BufferSnapshot, error) {
	resp, err := p.svc.OpenFile(ctx, schema.OpenFileRequest{
		SessionID: p.sessionID,
		Name:      name,
		Parent:    parent,
	})
	return resp.Buffer, err
}

// CloseFile closes an open buffer tab.
func (p *Panel) CloseFile(ctx context.Context, path schema.Path) (schema.Path, error) {
	resp, err := p.svc.CloseFile(ctx, schema.CloseFileRequest{SessionID: p.sessionID, Path: path})
	return resp.ActivePath, err
}

// ActivateBuffer focuses an already-open buffer tab.
func (p *Panel) ActivateBuffer(ctx context.Context, path schema.Path) (schema.BufferSnapshot, error) {
	resp, err := p.svc.ActivateBuffer(ctx, schema.ActivateBufferRequest{SessionID: p.sessionID, Path: path})
	return resp.Buffer, err
}

// ToggleFolder expands or collapses a tree folder.
func (p *Panel) ToggleFolder(ctx context.Context, path schema.Path) error {
	_, err := p.svc.ToggleFolder(ctx, schema.ToggleFolderRequest{SessionID: p.sessionID, Path: path})
	return err
}

// Workspace fetches the current workspace snapshot.
func (p *Panel) Workspace(ctx context.Context) (schema.WorkspaceSnapshot, error) {
	resp, err := p.svc.GetWorkspace(ctx, schema.GetWorkspaceRequest{SessionID: p.sessionID})
	return resp.Workspace, err
}

// HandleKey dispatches editor keybindings. It reports whether the key was
// consumed.
func (p *Panel) HandleKey(ctx context.Context, key string) (bool, error) {
	switch key {
	case "ctrl+s":
		return true, p.Save(ctx)
	case "ctrl+enter":
		_, err := p.Run(ctx)
		return true, err
	default:
		return false, nil
	}
}

func (p *Panel) echo(ctx context.Context, command string) error {
	_, err := p.svc.EchoCommand(ctx, schema.EchoCommandRequest{SessionID: p.sessionID, Command: command})
	return err
}

func (p *Panel) respond(ctx context.Context, lines ...string) error {
	_, err := p.svc.RespondCommand(ctx, schema.RespondCommandRequest{SessionID: p.sessionID, Lines: lines})
	return err
}
