package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the console
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	sections := []string{
		m.renderTitle(),
		m.renderContent(),
		m.renderStatus(),
		m.theme.CommandStyle.Render(m.textInput.View()),
		m.theme.HelpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderTitle() string {
	return m.theme.TitleStyle.Render(fmt.Sprintf("cmdargs console - %d commands", len(m.manager.List())))
}

func (m *Model) renderContent() string {
	output := m.theme.BorderStyle.Render(m.output.View())
	if !m.showCommands {
		return output
	}

	list := m.theme.ListStyle.
		Height(m.output.Height).
		Render(m.renderCommandList())
	return lipgloss.JoinHorizontal(lipgloss.Top, output, list)
}

// renderEntries renders the scrollback, one block per executed line
func (m *Model) renderEntries() string {
	if len(m.entries) == 0 {
		return m.theme.HelpStyle.Render("Type a command, e.g. help")
	}

	blocks := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		style := m.theme.SuccessStyle
		if entry.Failed() {
			style = m.theme.ErrorStyle
		}

		header := style.Render(entry.Icon()) + " " + m.theme.LineStyle.Render(entry.Line)
		block := header
		if out := entry.DisplayOutput(); out != "" {
			outStyle := m.theme.OutputStyle
			if entry.Err != nil {
				outStyle = m.theme.ErrorStyle
			}
			block += "\n" + outStyle.Render(out)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

func (m *Model) renderCommandList() string {
	commands := m.manager.List()
	lines := make([]string, 0, len(commands)+1)
	lines = append(lines, m.theme.LineStyle.Render("Commands"))
	for _, c := range commands {
		lines = append(lines, c.Name())
	}
	return strings.Join(lines, "\n")
}

// listWidth returns the width taken by the command list, borders included
func (m *Model) listWidth() int {
	if !m.showCommands {
		return 0
	}
	return lipgloss.Width(m.theme.ListStyle.Render(m.renderCommandList()))
}

func (m *Model) renderStatus() string {
	left := fmt.Sprintf("%d executed", len(m.entries))
	right := m.statusMsg

	spacing := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-4, 0)
	return m.theme.StatusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", spacing) + right)
}

func (m *Model) renderHelp() string {
	sections := []string{
		m.theme.TitleStyle.Render("cmdargs console - Help"),
		"",
		"Commands take the form: name -arg value -other \"quoted value\"",
		"Type exit or quit to leave, help -command <name> to describe a command.",
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		m.theme.HelpStyle.Render("Press f1 or esc to return"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
