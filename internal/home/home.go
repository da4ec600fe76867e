package home

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/textkit/internal/messages"
	"github.com/ryan-rushton/textkit/internal/registry"
	"github.com/ryan-rushton/textkit/internal/styles"
)

// Model is the tool picker.
type Model struct {
	tools     []registry.Tool
	active    string
	cursor    int
	updateTag string
}

// New lists the tools of reg. active is the name of the tool the session has
// selected, or "" for none; the cursor starts on it.
func New(reg *registry.Registry, active string) Model {
	m := Model{tools: reg.All(), active: active}
	for i, t := range m.tools {
		if t.Name == active {
			m.cursor = i
		}
	}
	return m
}

// WithUpdate shows a banner announcing tag.
func (m Model) WithUpdate(tag string) Model {
	m.updateTag = tag
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.UpdateAvailableMsg:
		m.updateTag = msg.Tag

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tools)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.tools)-1, 0)
		case "enter", " ":
			if len(m.tools) == 0 {
				return m, nil
			}
			selected := m.tools[m.cursor]
			return m, func() tea.Msg {
				return messages.ToolSelectedMsg{Name: selected.Name}
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	content := styles.Title.Render("textkit") + "\n"
	content += styles.Subtitle.Render("Small text tools, one keypress away") + "\n\n"

	for i, t := range m.tools {
		cursor := "  "
		nameStyle := lipgloss.NewStyle()
		descStyle := styles.Dimmed

		if t.Name == m.active {
			nameStyle = styles.Active
		}
		if i == m.cursor {
			cursor = styles.Selected.Render("> ")
			nameStyle = styles.Selected
			descStyle = styles.Subtitle
		}

		content += fmt.Sprintf("%s%s %s\n",
			cursor,
			nameStyle.Render(fmt.Sprintf("%-16s", t.Name)),
			descStyle.Render(t.Description),
		)
	}

	if m.updateTag != "" {
		content += "\n" + styles.UpdateBanner.Render(
			fmt.Sprintf("Update available: %s (run textkit update)", m.updateTag),
		) + "\n"
	}

	content += "\n" + styles.Help.Render("↑↓/jk navigate  enter select  q quit")

	return styles.Box.Render(content)
}
