package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex"
	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/command"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/session"
	"github.com/smileynet/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Chat    ChatCmd          `cmd:"" default:"1" help:"Start an interactive assistant session."`
}

// ChatCmd starts the interactive assistant: a chat TUI on a terminal,
// a plain line-oriented REPL otherwise.
type ChatCmd struct {
	Plain  bool   `help:"Force plain text output even if stdout is a TTY." default:"false"`
	Config string `help:"Extra config file loaded after the default layers." type:"path"`
}

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// setupError marks configuration and wiring failures so they map to exitSetup.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitRuntime
}

// loadConfig loads layered config from user and project paths with env
// overrides, plus an optional extra file with the highest file priority.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex.yaml",
	}
	if extra != "" {
		paths = append(paths, extra)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run wires real dependencies and starts the assistant.
func (c *ChatCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return &setupError{err: fmt.Errorf("chat: %w", err)}
	}
	if c.Plain {
		cfg.UI.Plain = true
	}
	if err := cfg.Validate(); err != nil {
		return &setupError{err: fmt.Errorf("chat: %w", err)}
	}

	bk := book.New()
	reg := command.NewRegistry(command.WithWindow(cfg.Reminder.WindowDays))
	banner := loadBanner(os.Stderr)

	if cfg.UI.Plain || !tui.IsTTY(os.Stdout) {
		sess := session.New(bk, reg, os.Stdin, os.Stdout,
			session.WithPrompt(cfg.UI.Prompt),
			session.WithBanner(banner),
		)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return sess.Run(ctx)
	}

	m := tui.NewModel(bk, reg, tui.WithBanner(banner))
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return c.run(prog)
}

// run executes the tea program, enabling testable wiring.
func (c *ChatCmd) run(prog teaRunner) error {
	_, err := prog.Run()
	return err
}

// loadBanner loads the welcome banner, preferring a local templates/
// directory over the embedded copy. Failures print a warning to w and
// fall back to the embedded default.
func loadBanner(w io.Writer) string {
	fsys := rolodex.OverlayFS("templates", rolodex.Templates)
	banner, err := rolodex.LoadTemplate(fsys, "banner.txt")
	if err != nil {
		_, _ = fmt.Fprintf(w, "warning: banner load failed: %v\n", err)
		return "Welcome to the assistant bot!"
	}
	return banner
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
