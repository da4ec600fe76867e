package workbench

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/ryan-rushton/textkit/internal/messages"
	"github.com/ryan-rushton/textkit/internal/session"
	"github.com/ryan-rushton/textkit/internal/styles"
)

const (
	previewWidth = 50
	maxWidth     = 80
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Model is the screen for a single tool: an input area, the last output and
// the recent history. All state that matters lives in the session; the
// model only adds presentation details.
type Model struct {
	sess   *session.Session
	input  textarea.Model
	status string
	isErr  bool
}

func New(sess *session.Session) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter your input here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.SetValue(sess.Input())
	ta.Focus()

	return Model{sess: sess, input: ta}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the box border and padding.
		m.input.SetWidth(max(min(msg.Width-8, maxWidth), 20))
		return m, nil

	case messages.ClipboardMsg:
		if msg.Err != nil {
			m.status, m.isErr = "Copy failed: "+msg.Err.Error(), true
		} else {
			m.status, m.isErr = "Copied output to clipboard", false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		return m, func() tea.Msg { return messages.BackMsg{} }

	case "ctrl+r":
		m.status, m.isErr = "", false
		if _, ran := m.sess.Execute(); !ran {
			m.status = "Nothing to run yet: type some input first"
		}
		return m, nil

	case "ctrl+y":
		out := m.sess.LastOutput()
		if out == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return messages.ClipboardMsg{Err: writeClipboard(out)}
		}

	case "ctrl+l":
		m.input.Reset()
		m.status, m.isErr = "", false
		_ = m.sess.UpdateInput("")
		return m, nil
	}

	if _, ok := m.sess.SelectedTool(); !ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// The session is the source of truth; the textarea only edits it.
	_ = m.sess.UpdateInput(m.input.Value())
	return m, cmd
}

func (m Model) View() string {
	tool, ok := m.sess.SelectedTool()
	if !ok {
		content := styles.Title.Render("Select a Tool") + "\n\n"
		content += styles.Dimmed.Render("Pick a tool from the list to get started.") + "\n"
		content += "\n" + styles.Help.Render("esc back")
		return styles.Box.Render(content)
	}

	content := styles.Title.Render(tool.Name) + "  " + styles.Dimmed.Render(tool.Description) + "\n\n"

	content += styles.Label.Render("Input") + "\n"
	content += m.input.View() + "\n"

	if out := m.sess.LastOutput(); out != "" {
		outStyle := styles.Success
		if strings.HasPrefix(out, "Error:") {
			outStyle = styles.Err
		}
		content += "\n" + styles.Label.Render("Output") + "\n"
		content += styles.Output.Render(outStyle.Render(out)) + "\n"
	}

	if m.status != "" {
		statusStyle := styles.Dimmed
		if m.isErr {
			statusStyle = styles.Err
		}
		content += "\n" + statusStyle.Render(m.status) + "\n"
	}

	if history := m.sess.History(); len(history) > 0 {
		content += "\n" + styles.Label.Render("Recent History") + "\n"
		for _, entry := range history {
			content += styles.HistoryTool.Render(entry.Tool) + "\n"
			content += fmt.Sprintf("  %s %s\n", styles.Dimmed.Render("Input: "), preview(entry.Input))
			content += fmt.Sprintf("  %s %s\n", styles.Dimmed.Render("Output:"), preview(entry.Output))
		}
	}

	content += "\n" + styles.Help.Render("ctrl+r run  ctrl+y copy output  ctrl+l clear  esc back")

	return styles.Box.Render(content)
}

// preview flattens s onto one line and cuts it at previewWidth cells.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if runewidth.StringWidth(s) <= previewWidth {
		return s
	}
	return runewidth.Truncate(s, previewWidth, "") + "..."
}
