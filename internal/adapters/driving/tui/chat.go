// Package tui provides an interactive chat session over the ingested
// corpus. One question at a time: the model sends the question to the
// ask service, shows a spinner-free waiting state, and appends the
// answer to the transcript.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askdocs/askdocs-cli/internal/core/domain"
	"github.com/askdocs/askdocs-cli/internal/core/ports/driving"
	"github.com/askdocs/askdocs-cli/internal/core/services"
)

// ErrMissingAskService is returned when no ask service is provided.
var ErrMissingAskService = errors.New("tui: ask service is required")

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// answerMsg carries the outcome of one ask round trip.
type answerMsg struct {
	answer string
	err    error
}

// Model is the bubbletea model for the chat session.
type Model struct {
	ask driving.AskService

	viewport  viewport.Model
	input     textinput.Model
	history   []string
	waiting   bool
	ready     bool
	userError string
}

// NewModel creates a chat model bound to the ask service.
func NewModel(ask driving.AskService) (*Model, error) {
	if ask == nil {
		return nil, ErrMissingAskService
	}

	input := textinput.New()
	input.Placeholder = "Ask a question about your documents..."
	input.Focus()
	input.CharLimit = 500

	return &Model{
		ask:   ask,
		input: input,
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		const inputHeight = 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.input.Width = msg.Width - 4
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.userError = ""
			m.waiting = true
			m.history = append(m.history, questionStyle.Render("You: ")+question)
			m.input.Reset()
			m.refreshTranscript()
			return m, m.askCmd(question)
		}

	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			if errors.Is(msg.err, domain.ErrGeneration) {
				m.history = append(m.history, answerStyle.Render(services.GenerationFailedMessage))
			} else {
				m.userError = msg.err.Error()
			}
		} else {
			m.history = append(m.history, answerStyle.Render(msg.answer))
		}
		m.refreshTranscript()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Starting chat..."
	}

	status := helpStyle.Render("enter: ask • esc: quit")
	if m.waiting {
		status = helpStyle.Render("Thinking...")
	}
	if m.userError != "" {
		status = helpStyle.Render("Error: " + m.userError)
	}

	return fmt.Sprintf("%s\n%s\n%s", m.viewport.View(), m.input.View(), status)
}

// askCmd runs the ask round trip off the update loop.
func (m *Model) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.ask.Ask(context.Background(), question)
		return answerMsg{answer: answer, err: err}
	}
}

// refreshTranscript rewrites the viewport content and pins it to the
// bottom.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.history, "\n\n"))
	m.viewport.GotoBottom()
}

// Run starts the chat session and blocks until the user quits.
func Run(ask driving.AskService) error {
	model, err := NewModel(ask)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat session: %w", err)
	}
	return nil
}
