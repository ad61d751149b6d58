package schema

import "time"

// ServiceConfig defines defaults and limits for the core service.
type ServiceConfig struct {
	// TranscriptMaxLines caps per-session terminal scrollback.
	TranscriptMaxLines int
	// Prompt is the trailing prompt marker. Lines beginning with it render as
	// prompt lines.
	Prompt string
	// WorkingDir is the constant pwd reported by the terminal emulator.
	WorkingDir string
	// RunDelay keeps the cosmetic running flag set after a run completes.
	// Zero or negative clears the flag synchronously.
	RunDelay time.Duration
	// JSTimeout bounds wall-clock time for one JavaScript evaluation.
	JSTimeout time.Duration
}

// DefaultTranscriptMaxLines is the default per-session transcript limit.
const DefaultTranscriptMaxLines = 5000

// DefaultPrompt is the terminal prompt marker.
const DefaultPrompt = "$ "

// DefaultWorkingDir is the constant workspace directory reported by pwd.
const DefaultWorkingDir = "/workspace"

// DefaultJSTimeout bounds one JavaScript evaluation.
const DefaultJSTimeout = 5 * time.Second

// NormalizeServiceConfig applies defaults and validates the config.
func NormalizeServiceConfig(cfg ServiceConfig) (ServiceConfig, error) {
	if cfg.TranscriptMaxLines <= 0 {
		cfg.TranscriptMaxLines = DefaultTranscriptMaxLines
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.WorkingDir == "" {
		cfg.WorkingDir = DefaultWorkingDir
	}
	if cfg.JSTimeout <= 0 {
		cfg.JSTimeout = DefaultJSTimeout
	}
	return cfg, nil
}
