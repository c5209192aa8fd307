package widgets

import (
	"context"
	"sync"

	"frontsession/internal/settings"
)

// Stack holds widget definitions in registration order
type Stack struct {
	mu      sync.RWMutex
	order   []string
	widgets map[string]*Widget
}

func NewStack() *Stack {
	return &Stack{widgets: make(map[string]*Widget)}
}

// Create registers a widget, replacing any previous one with the same id
func (s *Stack) Create(id, name string, cb Callback, desc string) *Widget {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &Widget{ID: id, Name: name, Desc: desc, callback: cb}
	if _, exists := s.widgets[id]; !exists {
		s.order = append(s.order, id)
	}
	s.widgets[id] = w
	return w
}

func (s *Stack) Get(id string) (*Widget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.widgets[id]
	return w, ok
}

func (s *Stack) List() []*Widget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Widget, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.widgets[id])
	}
	return out
}

// Render renders one widget with its persisted configuration
func (s *Stack) Render(ctx context.Context, id string, conf settings.Reader) string {
	w, ok := s.Get(id)
	if !ok {
		return ""
	}
	return w.Render(ctx, w.Element(conf))
}

// RenderAll renders every widget, skipping empty output
func (s *Stack) RenderAll(ctx context.Context, conf settings.Reader) []string {
	var out []string
	for _, w := range s.List() {
		if html := w.Render(ctx, w.Element(conf)); html != "" {
			out = append(out, html)
		}
	}
	return out
}
