package tui

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwantia/cmdargs/cmd"
	"github.com/mwantia/cmdargs/log"
)

// Mode represents the current interaction mode
type Mode int

const (
	ModeConsole Mode = iota
	ModeHelp
)

const maxHistory = 100

// Model represents the state of the console application
type Model struct {
	ctx     context.Context
	manager *cmd.Manager
	logger  *log.Logger
	theme   *Theme
	keys    KeyMap
	help    help.Model

	// Executed lines, oldest first
	entries []*Entry
	output  viewport.Model

	// Submitted lines for recall; histPos == len(history) means "not recalling"
	history []string
	histPos int

	width        int
	height       int
	mode         Mode
	textInput    textinput.Model
	showCommands bool
	running      bool

	statusMsg string
}

// NewModel creates a console bound to manager
func NewModel(ctx context.Context, manager *cmd.Manager, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Nop()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "help"
	ti.CharLimit = 1024
	ti.Focus()

	return &Model{
		ctx:          ctx,
		manager:      manager,
		logger:       logger.Named("tui"),
		theme:        DefaultTheme(),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		output:       viewport.New(0, 0),
		textInput:    ti,
		showCommands: true,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

type commandExecutedMsg struct {
	entry *Entry
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case commandExecutedMsg:
		m.running = false
		m.entries = append(m.entries, msg.entry)
		m.statusMsg = msg.entry.DisplayStatus()
		m.refreshOutput()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var inputCmd tea.Cmd
	m.textInput, inputCmd = m.textInput.Update(msg)
	return m, inputCmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeHelp {
		if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEscape {
			m.mode = ModeConsole
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submitInput()

	case key.Matches(msg, m.keys.HistoryUp):
		m.recall(-1)
		return m, nil

	case key.Matches(msg, m.keys.HistoryDown):
		m.recall(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.output.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.output.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.entries = nil
		m.statusMsg = ""
		m.refreshOutput()
		return m, nil

	case key.Matches(msg, m.keys.ToggleList):
		m.showCommands = !m.showCommands
		m.resize()
		return m, nil
	}

	var inputCmd tea.Cmd
	m.textInput, inputCmd = m.textInput.Update(msg)
	return m, inputCmd
}

// submitInput runs the current input line unless a command is still running
func (m *Model) submitInput() tea.Cmd {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")
	if line == "" || m.running {
		return nil
	}

	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.histPos = len(m.history)

	switch line {
	case "exit", "quit":
		return tea.Quit
	}

	m.running = true
	m.statusMsg = "Running " + line
	return m.executeCommand(line)
}

// recall replaces the input with an earlier or later history line
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}

	m.histPos = min(max(m.histPos+delta, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.textInput.SetValue("")
		return
	}
	m.textInput.SetValue(m.history[m.histPos])
	m.textInput.CursorEnd()
}

func (m *Model) executeCommand(line string) tea.Cmd {
	return func() tea.Msg {
		var out bytes.Buffer
		start := time.Now()
		code, err := m.manager.Execute(m.ctx, line, &out)
		if err != nil {
			m.logger.Debug("Command %q exited with code %d: %v", line, code, err)
		}

		return commandExecutedMsg{entry: &Entry{
			Line:     line,
			Output:   out.String(),
			Code:     code,
			Err:      err,
			Duration: time.Since(start),
		}}
	}
}

func (m *Model) resize() {
	m.output.Width = max(m.width-m.listWidth()-2, 10)
	// title, status, input and help lines plus the output border
	m.output.Height = max(m.height-6, 3)
	m.refreshOutput()
}

func (m *Model) refreshOutput() {
	m.output.SetContent(m.renderEntries())
	m.output.GotoBottom()
}
