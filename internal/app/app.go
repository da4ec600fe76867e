package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ryan-rushton/textkit/internal/home"
	"github.com/ryan-rushton/textkit/internal/messages"
	"github.com/ryan-rushton/textkit/internal/session"
	"github.com/ryan-rushton/textkit/internal/updater"
	"github.com/ryan-rushton/textkit/internal/workbench"
)

const updateCheckTimeout = 5 * time.Second

// Option configures the application model.
type Option func(*Model)

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithUpdateCheck enables a background release check on startup. It is
// skipped for dev builds.
func WithUpdateCheck(latest func(context.Context) (string, error)) Option {
	return func(m *Model) { m.latestRelease = latest }
}

// Model is the top-level application model that manages screen transitions.
type Model struct {
	sess          *session.Session
	current       tea.Model
	version       string
	windowSize    tea.WindowSizeMsg
	updateTag     string
	latestRelease func(context.Context) (string, error)
	log           *zap.Logger
	err           error
}

func New(sess *session.Session, version string, opts ...Option) Model {
	m := Model{
		sess:    sess,
		version: version,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.current = m.homeScreen()
	return m
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.current.Init(), m.checkForUpdate())
}

func (m Model) checkForUpdate() tea.Cmd {
	if m.latestRelease == nil || m.version == "dev" {
		return nil
	}
	latest, version, log := m.latestRelease, m.version, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()

		tag, err := latest(ctx)
		if err != nil {
			log.Debug("update check failed", zap.Error(err))
			return nil
		}
		if !updater.IsNewer(version, tag) {
			return nil
		}
		return messages.UpdateAvailableMsg{Tag: tag}
	}
}

func (m Model) homeScreen() home.Model {
	active := ""
	if t, ok := m.sess.SelectedTool(); ok {
		active = t.Name
	}
	return home.New(m.sess.Registry(), active).WithUpdate(m.updateTag)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.windowSize = ws
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case messages.BackMsg:
		h := m.homeScreen()
		m.current = h
		return m, tea.Batch(h.Init(), func() tea.Msg { return m.windowSize })

	case messages.ToolSelectedMsg:
		// The home screen only offers registered names, so a miss is a bug.
		if err := m.sess.SelectTool(msg.Name); err != nil {
			m.log.Error("tool selection failed", zap.String("tool", msg.Name), zap.Error(err))
			m.err = err
			return m, tea.Quit
		}
		wb := workbench.New(m.sess)
		m.current = wb
		return m, tea.Batch(wb.Init(), func() tea.Msg { return m.windowSize })

	case messages.UpdateAvailableMsg:
		m.updateTag = msg.Tag
	}

	updated, cmd := m.current.Update(msg)
	m.current = updated
	return m, cmd
}

func (m Model) View() string {
	return m.current.View()
}
