package messages

import tea "github.com/charmbracelet/bubbletea"

// BackMsg is sent by the workbench when it wants to return to the tool list.
type BackMsg struct{}

// ToolSelectedMsg is sent by the home screen when a tool is picked.
type ToolSelectedMsg struct {
	Name string
}

// UpdateAvailableMsg is sent when a background check finds a newer release.
type UpdateAvailableMsg struct {
	Tag string
}

// ClipboardMsg reports the outcome of copying output to the clipboard.
type ClipboardMsg struct {
	Err error
}

// standalone wraps a model so that BackMsg quits instead of navigating
// back. Used when a tool is opened directly from the CLI.
type standalone struct {
	inner tea.Model
}

// Standalone wraps a model for direct CLI invocation.
func Standalone(m tea.Model) tea.Model {
	return standalone{inner: m}
}

func (s standalone) Init() tea.Cmd {
	return s.inner.Init()
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return s, tea.Quit
	}
	if _, ok := msg.(BackMsg); ok {
		return s, tea.Quit
	}
	m, cmd := s.inner.Update(msg)
	s.inner = m
	return s, cmd
}

func (s standalone) View() string {
	return s.inner.View()
}
