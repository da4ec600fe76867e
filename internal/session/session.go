package session

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ryan-rushton/textkit/internal/registry"
)

// DefaultHistoryLimit is how many executions are kept when no limit is set.
const DefaultHistoryLimit = 10

var (
	ErrUnknownTool    = errors.New("unknown tool")
	ErrNoToolSelected = errors.New("no tool selected")
)

// State is the controller's position in the select/edit/execute cycle.
type State int

const (
	StateNoToolSelected State = iota
	StateToolSelected
	// StateExecuting only holds while a tool's Execute func is running.
	StateExecuting
	StateResultDisplayed
)

func (s State) String() string {
	switch s {
	case StateNoToolSelected:
		return "no-tool-selected"
	case StateToolSelected:
		return "tool-selected"
	case StateExecuting:
		return "executing"
	case StateResultDisplayed:
		return "result-displayed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// HistoryEntry records one execution.
type HistoryEntry struct {
	Tool   string
	Input  string
	Output string
}

// Option configures a Session.
type Option func(*Session)

// WithHistoryLimit caps the history. Non-positive values keep the default.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session holds the UI-observable state for one run of the application:
// the selected tool, its input, the last output and recent history.
//
// A Session is not safe for concurrent use; it expects to be driven from a
// single event loop.
type Session struct {
	reg          *registry.Registry
	log          *zap.Logger
	historyLimit int

	state    State
	selected *registry.Tool
	input    string
	output   string
	history  []HistoryEntry
}

func New(reg *registry.Registry, opts ...Option) *Session {
	s := &Session{
		reg:          reg,
		log:          zap.NewNop(),
		historyLimit: DefaultHistoryLimit,
		state:        StateNoToolSelected,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectTool makes name the active tool and resets input and output, even
// when name is already selected.
func (s *Session) SelectTool(name string) error {
	t, ok := s.reg.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	s.selected = &t
	s.input = ""
	s.output = ""
	s.state = StateToolSelected
	s.log.Debug("tool selected", zap.String("tool", t.Name))
	return nil
}

// UpdateInput replaces the current input verbatim.
func (s *Session) UpdateInput(text string) error {
	if s.selected == nil {
		return ErrNoToolSelected
	}
	s.input = text
	return nil
}

// Execute runs the selected tool on the current input and records the
// result. It does nothing and returns false when no tool is selected or the
// input is empty.
func (s *Session) Execute() (HistoryEntry, bool) {
	if s.selected == nil || s.input == "" {
		return HistoryEntry{}, false
	}

	tool := *s.selected
	s.state = StateExecuting
	start := time.Now()
	out := s.run(tool, s.input)

	entry := HistoryEntry{Tool: tool.Name, Input: s.input, Output: out}
	s.output = out
	s.history = append([]HistoryEntry{entry}, s.history...)
	if len(s.history) > s.historyLimit {
		s.history = s.history[:s.historyLimit]
	}
	s.state = StateResultDisplayed

	s.log.Debug("tool executed",
		zap.String("tool", tool.Name),
		zap.Int("input_bytes", len(entry.Input)),
		zap.Int("output_bytes", len(out)),
		zap.Duration("took", time.Since(start)),
	)
	return entry, true
}

// run calls the tool, turning a panic into an error string so nothing
// escapes Execute.
func (s *Session) run(tool registry.Tool, input string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("tool panicked",
				zap.String("tool", tool.Name),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			out = "Error: " + tool.Name + " failed"
		}
	}()
	return tool.Execute(input)
}

// SelectedTool returns the active tool, if any.
func (s *Session) SelectedTool() (registry.Tool, bool) {
	if s.selected == nil {
		return registry.Tool{}, false
	}
	return *s.selected, true
}

func (s *Session) Input() string      { return s.input }
func (s *Session) LastOutput() string { return s.output }
func (s *Session) State() State       { return s.state }
func (s *Session) HistoryLimit() int  { return s.historyLimit }

// History returns past executions, newest first.
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Registry returns the registry the session selects tools from.
func (s *Session) Registry() *registry.Registry {
	return s.reg
}
