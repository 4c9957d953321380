package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: exitSuccess},
		{name: "context canceled", err: context.Canceled, want: exitSuccess},
		{name: "setup error", err: &setupError{err: errors.New("bad config")}, want: exitSetup},
		{name: "wrapped setup error", err: fmt.Errorf("chat: %w", &setupError{err: errors.New("bad")}), want: exitSetup},
		{name: "runtime error", err: errors.New("boom"), want: exitRuntime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestSetupError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	se := &setupError{err: inner}
	if !errors.Is(se, inner) {
		t.Error("setupError should unwrap to the inner error")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Reminder.WindowDays != 7 {
		t.Errorf("window days = %d, want default 7", cfg.Reminder.WindowDays)
	}
}

func TestLoadConfig_UserFileAndExtra(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	userDir := filepath.Join(home, ".config", "rolodex")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte(`
ui:
  prompt: "user> "
reminder:
  window_days: 3
`), 0o644); err != nil {
		t.Fatal(err)
	}

	extra := filepath.Join(t.TempDir(), "extra.yaml")
	if err := os.WriteFile(extra, []byte(`
reminder:
  window_days: 14
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(extra)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	// Extra file has the highest file priority.
	if cfg.Reminder.WindowDays != 14 {
		t.Errorf("window days = %d, want 14 from extra file", cfg.Reminder.WindowDays)
	}
	// Prompt comes from the user layer.
	if cfg.UI.Prompt != "user> " {
		t.Errorf("prompt = %q, want %q", cfg.UI.Prompt, "user> ")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROLODEX_WINDOW_DAYS", "30")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Reminder.WindowDays != 30 {
		t.Errorf("window days = %d, want 30 from env", cfg.Reminder.WindowDays)
	}
}

func TestLoadBanner_FallsBackToEmbedded(t *testing.T) {
	// No local templates/ directory here, so the embedded copy is used.
	var warnings strings.Builder
	banner := loadBanner(&warnings)
	if banner != "Welcome to the assistant bot!" {
		t.Errorf("banner = %q, want embedded welcome line", banner)
	}
	if warnings.Len() != 0 {
		t.Errorf("unexpected warnings: %q", warnings.String())
	}
}

// fakeTeaRunner implements teaRunner for testing run wiring.
type fakeTeaRunner struct {
	err    error
	called bool
}

func (f *fakeTeaRunner) Run() (tea.Model, error) {
	f.called = true
	return nil, f.err
}

func TestChatCmd_Run_Program(t *testing.T) {
	c := &ChatCmd{}

	runner := &fakeTeaRunner{}
	if err := c.run(runner); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !runner.called {
		t.Error("run() should execute the tea program")
	}

	failing := &fakeTeaRunner{err: errors.New("tui failed")}
	if err := c.run(failing); err == nil {
		t.Error("run() should propagate the program error")
	}
}
