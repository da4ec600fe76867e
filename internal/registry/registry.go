package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTool is returned for tools missing an ID, name or Execute func.
	ErrInvalidTool = errors.New("invalid tool")
	// ErrDuplicateTool is returned when two tools share a name or ID.
	ErrDuplicateTool = errors.New("duplicate tool")
)

// Tool is a named, side-effect-free string transform.
type Tool struct {
	ID          string
	Name        string
	Description string
	Execute     func(input string) string
}

// Registry is an ordered, read-only set of tools. It cannot be modified
// after New returns.
type Registry struct {
	tools  []Tool
	byName map[string]int
	byID   map[string]int
}

// New builds a registry from tools, preserving their order.
func New(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools:  make([]Tool, 0, len(tools)),
		byName: make(map[string]int, len(tools)),
		byID:   make(map[string]int, len(tools)),
	}

	for _, t := range tools {
		if t.ID == "" || t.Name == "" || t.Execute == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTool, t.Name)
		}
		if _, ok := r.byName[t.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateTool, t.Name)
		}
		if _, ok := r.byID[t.ID]; ok {
			return nil, fmt.Errorf("%w: id %q", ErrDuplicateTool, t.ID)
		}
		r.byName[t.Name] = len(r.tools)
		r.byID[t.ID] = len(r.tools)
		r.tools = append(r.tools, t)
	}

	return r, nil
}

// All returns every tool in registration order.
func (r *Registry) All() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Get returns the tool with the given display name.
func (r *Registry) Get(name string) (Tool, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Resolve matches query case-insensitively against tool IDs and names, so
// both "text-analyzer" and "text analyzer" find the Text Analyzer.
func (r *Registry) Resolve(query string) (Tool, bool) {
	q := strings.TrimSpace(query)
	if i, ok := r.byID[strings.ToLower(q)]; ok {
		return r.tools[i], true
	}
	for _, t := range r.tools {
		if strings.EqualFold(t.Name, q) {
			return t, true
		}
	}
	return Tool{}, false
}

// Len returns the number of tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
