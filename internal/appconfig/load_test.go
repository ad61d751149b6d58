package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coderoom-dev/coderoom/schema"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Fatalf("version = %d", cfg.ConfigVersion)
	}
	if cfg.Service.TranscriptMaxLines != schema.DefaultTranscriptMaxLines {
		t.Fatalf("transcript_max_lines = %d", cfg.Service.TranscriptMaxLines)
	}
	if cfg.Service.Prompt != "$ " || cfg.Service.WorkingDir != "/workspace" {
		t.Fatalf("service defaults = %+v", cfg.Service)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `config_version: 1
service:
  transcript_max_lines: 100
  run_delay_ms: 0
seed:
  manifest: /tmp/seed.yaml
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.TranscriptMaxLines != 100 {
		t.Fatalf("transcript_max_lines = %d", cfg.Service.TranscriptMaxLines)
	}
	if cfg.Service.RunDelayMS != 0 {
		t.Fatalf("run_delay_ms = %d", cfg.Service.RunDelayMS)
	}
	if cfg.Service.Prompt != "$ " {
		t.Fatalf("unset keys keep defaults, prompt = %q", cfg.Service.Prompt)
	}
	if cfg.Seed.Manifest != "/tmp/seed.yaml" {
		t.Fatalf("seed manifest = %q", cfg.Seed.Manifest)
	}
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("config_version: 99\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a version error")
	}
}

func TestLoadRequiresVersionWhenFilePresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("service:\n  prompt: '> '\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for missing config_version")
	}
}

func TestLoadExpandsEnvInSeedManifest(t *testing.T) {
	t.Setenv("SEED_DIR", "/srv/seeds")
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "config_version: 1\nseed:\n  manifest: $SEED_DIR/starter.yaml\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed.Manifest != "/srv/seeds/starter.yaml" {
		t.Fatalf("manifest = %q", cfg.Seed.Manifest)
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if written != path {
		t.Fatalf("written = %q", written)
	}
	if _, err := WriteDefault(path, false); err == nil {
		t.Fatalf("expected an error without overwrite")
	}
	if _, err := WriteDefault(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Fatalf("version = %d", cfg.ConfigVersion)
	}
}

func TestToServiceConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}
	svcCfg := cfg.ToServiceConfig()
	if svcCfg.RunDelay != time.Second {
		t.Fatalf("run delay = %v", svcCfg.RunDelay)
	}
	if svcCfg.JSTimeout != schema.DefaultJSTimeout {
		t.Fatalf("js timeout = %v", svcCfg.JSTimeout)
	}
}
