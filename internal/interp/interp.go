// Package interp turns buffer text plus a language tag into captured output
// lines. JavaScript runs on an embedded interpreter with the console channel
// redirected; Python output is simulated by pattern scanning; every other tag
// gets a generic acknowledgement. Nothing here can fault the host: failures
// degrade to an error message on the result.
package interp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dop251/goja"

	"pkt.systems/pslog"

	"github.com/coderoom-dev/coderoom/schema"
)

const interruptMessage = "execution timed out"

// Executor evaluates snippets per language family.
type Executor struct {
	jsTimeout time.Duration
	log       pslog.Logger
}

// New constructs an Executor. A non-positive timeout falls back to the
// schema default.
func New(jsTimeout time.Duration, logger pslog.Logger) *Executor {
	if jsTimeout <= 0 {
		jsTimeout = schema.DefaultJSTimeout
	}
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	return &Executor{jsTimeout: jsTimeout, log: logger}
}

// Run produces the execution result for one buffer.
func (e *Executor) Run(ctx context.Context, file string, language schema.Language, content string) schema.ExecutionResult {
	if ctx == nil {
		ctx = context.Background()
	}
	log := e.log.With("file", file, "language", language)
	switch language {
	case schema.LanguageJavaScript:
		result := e.runJavaScript(ctx, file, content)
		if result.Error != "" {
			log.Debug("interp javascript failed", "err", result.Error, "lines", len(result.OutputLines))
		} else {
			log.Debug("interp javascript ok", "lines", len(result.OutputLines))
		}
		return result
	case schema.LanguagePython:
		result := runPython(file, content)
		log.Debug("interp python simulated", "lines", len(result.OutputLines))
		return result
	default:
		log.Debug("interp generic acknowledgement")
		return schema.ExecutionResult{
			Invocation:  fmt.Sprintf("$ echo \"Running %s...\"", file),
			OutputLines: []string{"File executed successfully!"},
			Simulated:   true,
		}
	}
}

// runJavaScript evaluates the content on a throwaway runtime with console
// output captured in call order. The runtime is interrupted when the deadline
// passes, so a looping snippet cannot wedge the caller.
func (e *Executor) runJavaScript(ctx context.Context, file, content string) schema.ExecutionResult {
	result := schema.ExecutionResult{Invocation: "$ node " + file}

	vm := goja.New()
	var captured []string
	capture := func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		captured = append(captured, strings.Join(parts, " "))
		return goja.Undefined()
	}
	console := vm.NewObject()
	_ = console.Set("log", capture)
	_ = console.Set("error", capture)
	_ = console.Set("warn", capture)
	_ = vm.Set("console", console)

	runCtx, cancel := context.WithTimeout(ctx, e.jsTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		select {
		case <-runCtx.Done():
			vm.Interrupt(interruptMessage)
		case <-done:
		}
	}()
	_, err := vm.RunString(content)
	close(done)

	result.OutputLines = captured
	if err != nil {
		result.Error = thrownMessage(err)
	}
	return result
}

// thrownMessage extracts the user-facing message from an evaluation error.
// For thrown Error objects this is the message property, matching what a
// real runtime would report.
func thrownMessage(err error) string {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return interruptMessage
	}
	var exc *goja.Exception
	if errors.As(err, &exc) {
		value := exc.Value()
		if obj, ok := value.(*goja.Object); ok {
			if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) && !goja.IsNull(msg) {
				return msg.String()
			}
		}
		if value != nil {
			return value.String()
		}
	}
	return err.Error()
}
