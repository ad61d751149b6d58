package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/pslog"

	"github.com/coderoom-dev/coderoom/core"
	"github.com/coderoom-dev/coderoom/internal/appconfig"
	"github.com/coderoom-dev/coderoom/internal/editor"
	"github.com/coderoom-dev/coderoom/internal/eventbus"
	"github.com/coderoom-dev/coderoom/internal/interp"
	"github.com/coderoom-dev/coderoom/internal/seed"
	"github.com/coderoom-dev/coderoom/internal/shell"
	"github.com/coderoom-dev/coderoom/schema"
)

const replHelp = `Meta commands (everything else goes to the workspace terminal):
  :files            print the workspace tree
  :tabs             list open buffers
  :open <path>      open a file in the editor
  :tab <path>       focus an open buffer
  :close <path>     close an open buffer
  :new              create a file (prompts for a name)
  :del <path>       delete a file (asks for confirmation)
  :edit             replace the active buffer (end with "." on its own line)
  :save             save the active buffer
  :run              run the active buffer
  :problems         print problems from the last run
  :reset            discard the session and reseed
  :quit             exit`

func newReplCmd() *cobra.Command {
	var configPath string
	var sessionID string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive workspace session on the local terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.Context(), configPath, schema.SessionID(sessionID))
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.coderoom/config.yaml)")
	cmd.Flags().StringVar(&sessionID, "session", "local", "session identifier")
	return cmd
}

func runRepl(ctx context.Context, configPath string, sessionID schema.SessionID) error {
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return err
	}
	ws, err := seed.Load(cfg.Seed.Manifest)
	if err != nil {
		return err
	}
	logger := pslog.Ctx(ctx)
	svcCfg := cfg.ToServiceConfig()

	bus := eventbus.New(logger)
	svc, err := core.NewService(svcCfg, core.ServiceDeps{
		Executor:  interp.New(svcCfg.JSTimeout, logger),
		Seed:      ws,
		EventSink: bus,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	handler := shell.NewHandler(svc, svcCfg.WorkingDir)

	events, unsubscribe := bus.Subscribe(sessionID)
	defer unsubscribe()

	console, closeConsole, err := newConsole(svcCfg.Prompt)
	if err != nil {
		return err
	}
	defer closeConsole()

	panel := editor.NewPanel(svc, &consoleHost{console: console}, sessionID)

	// Replay the seeded transcript so the welcome lines show up.
	snap, err := svc.GetTranscript(ctx, schema.GetTranscriptRequest{SessionID: sessionID})
	if err != nil {
		return err
	}
	for _, line := range snap.Transcript.Lines {
		if !line.Prompt {
			console.Print(line.Text)
		}
	}

	for {
		line, err := console.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit", trimmed == ":exit":
			return nil
		case strings.HasPrefix(trimmed, ":"):
			if err := runMeta(ctx, console, svc, panel, sessionID, trimmed); err != nil {
				return err
			}
		default:
			if err := handler.Execute(ctx, sessionID, line); err != nil {
				return err
			}
		}
		drainEvents(events, console)
	}
}

func runMeta(ctx context.Context, console console, svc core.Service, panel *editor.Panel, sessionID schema.SessionID, line string) error {
	fields := strings.Fields(line)
	name := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	var err error
	switch name {
	case ":help":
		console.Print(replHelp)
	case ":files":
		var ws schema.WorkspaceSnapshot
		ws, err = panel.Workspace(ctx)
		if err == nil {
			printTree(console, ws.Tree, 0)
		}
	case ":tabs":
		var resp schema.ListBuffersResponse
		resp, err = svc.ListBuffers(ctx, schema.ListBuffersRequest{SessionID: sessionID})
		if err == nil {
			for _, buf := range resp.Buffers {
				marker := "  "
				if buf.Active {
					marker = "* "
				}
				console.Print(marker + string(buf.Path))
			}
		}
	case ":open":
		if arg == "" {
			console.Print("usage: :open <path>")
			return nil
		}
		parent, base := splitTarget(arg)
		_, err = panel.OpenFile(ctx, base, parent)
	case ":tab":
		if arg == "" {
			console.Print("usage: :tab <path>")
			return nil
		}
		_, err = panel.ActivateBuffer(ctx, schema.Path(arg))
	case ":close":
		if arg == "" {
			console.Print("usage: :close <path>")
			return nil
		}
		_, err = panel.CloseFile(ctx, schema.Path(arg))
	case ":new":
		err = panel.CreateFile(ctx)
	case ":del":
		if arg == "" {
			console.Print("usage: :del <path>")
			return nil
		}
		err = panel.DeleteFile(ctx, schema.Path(arg))
	case ":edit":
		var content string
		content, err = readEditBody(console)
		if err == nil {
			err = panel.HandleChange(ctx, content)
		}
	case ":save":
		err = panel.Save(ctx)
	case ":run":
		_, err = panel.Run(ctx)
	case ":problems":
		var resp schema.GetProblemsResponse
		resp, err = svc.GetProblems(ctx, schema.GetProblemsRequest{SessionID: sessionID})
		if err == nil {
			if len(resp.Problems) == 0 {
				console.Print("no problems")
			}
			for _, p := range resp.Problems {
				console.Print(fmt.Sprintf("%s: %s (%s)", p.Type, p.Message, p.File))
			}
		}
	case ":reset":
		_, err = svc.ResetSession(ctx, schema.ResetSessionRequest{SessionID: sessionID})
	default:
		console.Print("unknown meta command " + name + " (try :help)")
	}
	if err != nil {
		console.Print("error: " + err.Error())
	}
	return nil
}

// readEditBody collects buffer content until a lone "." line.
func readEditBody(console console) (string, error) {
	console.Print(`enter content, end with "." on its own line`)
	var lines []string
	for {
		line, err := console.ReadAnswer("> ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func printTree(console console, nodes []schema.FileNodeSnapshot, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		if node.Kind == schema.NodeFolder {
			console.Print(indent + node.Name + "/")
			printTree(console, node.Children, depth+1)
			continue
		}
		console.Print(indent + node.Name)
	}
}

func splitTarget(path string) (schema.Path, string) {
	segments := schema.SplitPath(schema.Path(path))
	if len(segments) == 0 {
		return "", path
	}
	base := segments[len(segments)-1]
	if len(segments) == 1 {
		return "", base
	}
	return schema.Path(strings.Join(segments[:len(segments)-1], "/")), base
}

// drainEvents prints transcript output that arrived for the last action.
// Prompt lines are skipped: the echoed command is already on screen and the
// trailing prompt is rendered by the console itself.
func drainEvents(events <-chan eventbus.Event, console console) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Type != eventbus.EventTranscript {
				continue
			}
			for _, line := range event.Transcript.Lines {
				if !line.Prompt {
					console.Print(line.Text)
				}
			}
		default:
			return
		}
	}
}

// console abstracts the local line-oriented terminal so the repl also works
// on a plain pipe.
type console interface {
	ReadLine() (string, error)
	ReadAnswer(prompt string) (string, error)
	Print(line string)
}

func newConsole(prompt string) (console, func(), error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return &pipeConsole{
			in:     bufio.NewScanner(os.Stdin),
			out:    os.Stdout,
			prompt: prompt,
		}, func() {}, nil
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, err
	}
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, prompt)
	restore := func() { _ = term.Restore(fd, oldState) }
	return &termConsole{t: t, prompt: prompt}, restore, nil
}

type termConsole struct {
	t      *term.Terminal
	prompt string
}

func (c *termConsole) ReadLine() (string, error) {
	c.t.SetPrompt(c.prompt)
	return c.t.ReadLine()
}

func (c *termConsole) ReadAnswer(prompt string) (string, error) {
	c.t.SetPrompt(prompt)
	defer c.t.SetPrompt(c.prompt)
	return c.t.ReadLine()
}

func (c *termConsole) Print(line string) {
	fmt.Fprintln(c.t, line)
}

type pipeConsole struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt string
}

func (c *pipeConsole) ReadLine() (string, error) {
	return c.scan(c.prompt)
}

func (c *pipeConsole) ReadAnswer(prompt string) (string, error) {
	return c.scan(prompt)
}

func (c *pipeConsole) scan(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	fmt.Fprintln(c.out, c.in.Text())
	return c.in.Text(), nil
}

func (c *pipeConsole) Print(line string) {
	fmt.Fprintln(c.out, line)
}

// consoleHost adapts the console to the editor's modal surface.
type consoleHost struct {
	console console
}

func (h *consoleHost) Confirm(message string) bool {
	answer, err := h.console.ReadAnswer(message + " [y/N] ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func (h *consoleHost) Prompt(message string) (string, bool) {
	answer, err := h.console.ReadAnswer(message + " ")
	if err != nil {
		return "", false
	}
	return answer, true
}

func (h *consoleHost) Alert(message string) {
	h.console.Print(message)
}
