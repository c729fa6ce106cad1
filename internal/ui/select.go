// Package ui provides the interactive project picker.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/claudio-sh/claudio/internal/settings"
)

// ErrCancelled is returned when the user aborts the picker.
var ErrCancelled = errors.New("selection cancelled")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	markerStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// SelectProject prompts the user to choose one of the merged projects.
// defaultName preselects the cursor (the last-used project). It returns
// ErrCancelled when the user backs out.
func SelectProject(ctx context.Context, projects []settings.Project, defaultName string) (settings.Project, error) {
	if len(projects) == 0 {
		return nil, errors.New("no projects to select from")
	}

	model := newSelectModel(projects, defaultName)
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	finalModel, err := program.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(*selectModel)
	if !ok || m.cancelled || m.chosen < 0 {
		return nil, ErrCancelled
	}
	return projects[m.chosen], nil
}

// DefaultIndex returns the index of the named project, or 0 when the name
// is absent. It decides both the cursor start and the no-input fallback.
func DefaultIndex(projects []settings.Project, name string) int {
	if name == "" {
		return 0
	}
	for i, p := range projects {
		if p.Name() == name {
			return i
		}
	}
	return 0
}

type selectModel struct {
	names      []string
	defaultIdx int
	cursor     int
	chosen     int
	cancelled  bool
}

func newSelectModel(projects []settings.Project, defaultName string) *selectModel {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name()
	}
	idx := DefaultIndex(projects, defaultName)
	return &selectModel{
		names:      names,
		defaultIdx: idx,
		cursor:     idx,
		chosen:     -1,
	}
}

func (m *selectModel) Init() tea.Cmd {
	return nil
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.cursor
		return m, tea.Quit
	default:
		// Digits jump straight to an entry, matching the numbered menu.
		if n, err := strconv.Atoi(key.String()); err == nil && n >= 1 && n <= len(m.names) {
			m.chosen = n - 1
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *selectModel) View() string {
	s := titleStyle.Render("Available projects:") + "\n\n"
	for i, name := range m.names {
		cursor := "  "
		line := fmt.Sprintf("[%d] %s", i+1, name)
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		marker := ""
		if i == m.defaultIdx {
			marker = markerStyle.Render(" (last used)")
		}
		s += fmt.Sprintf("  %s%s%s\n", cursor, line, marker)
	}
	s += "\n" + helpStyle.Render("enter/number select · ↑/↓ move · q cancel") + "\n"
	return s
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
