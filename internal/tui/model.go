// Package tui implements the Bubble Tea chat interface for the assistant.
//
// The model keeps a scrolling transcript of commands and replies in a
// viewport, with a single-line text input below it. Every submitted line
// goes through the same command registry as the plain session, so the two
// front ends share one observable contract.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/command"
)

// inputChrome is the number of lines reserved below the viewport
// for the text input and its separating blank line.
const inputChrome = 2

// Model is the root Bubble Tea model for the assistant chat.
type Model struct {
	book       *book.Book
	reg        *command.Registry
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	banner     string
	width      int
	height     int
	ready      bool
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithBanner sets the banner text shown above the transcript.
func WithBanner(banner string) ModelOption {
	return func(m *Model) { m.banner = banner }
}

// NewModel creates a chat Model bound to the given book and registry.
func NewModel(bk *book.Book, reg *command.Registry, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a command (help for a list)"
	ti.Focus()

	m := Model{
		book:     bk,
		reg:      reg,
		input:    ti,
		viewport: viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = m.transcriptHeight()
		m.viewport.SetContent(strings.Join(m.transcript, "\n"))
		m.viewport.GotoBottom()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.transcript = append(m.transcript, command.ReplyGoodbye)
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit runs the current input line through the registry and appends the
// exchange to the transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, echoStyle().Render("> "+line))

	tokens := strings.Fields(line)
	name := strings.ToLower(tokens[0])
	if name == "close" || name == "exit" {
		m.transcript = append(m.transcript, command.ReplyGoodbye)
		m.refreshViewport()
		m.quitting = true
		return m, tea.Quit
	}

	m.transcript = append(m.transcript, m.reg.Dispatch(name, tokens[1:], m.book)...)
	m.refreshViewport()
	return m, nil
}

// refreshViewport syncs the viewport with the transcript, pinned to the bottom.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// transcriptHeight returns the viewport height left after the banner and input.
func (m Model) transcriptHeight() int {
	h := m.height - inputChrome
	if m.banner != "" {
		h -= lipgloss.Height(bannerStyle().Render(m.banner))
	}
	if h < 1 {
		return 1
	}
	return h
}

// View renders the banner, transcript, and input line.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return command.ReplyGoodbye + "\n"
	}

	var b strings.Builder
	if m.banner != "" {
		b.WriteString(bannerStyle().Render(m.banner))
		b.WriteString("\n")
	}
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	return b.String()
}
