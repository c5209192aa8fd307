// Package behavior is the host's named extension-point registry.
//
// Callbacks receive one mutable argument and run synchronously in
// registration order. Request-scoped state travels in the context.
package behavior

import (
	"context"
	"sync"
)

// Extension points fired by the blog host
const (
	CoreBlogGetPosts               = "coreBlogGetPosts"
	PublicBeforeCommentCreate      = "publicBeforeCommentCreate"
	PublicHeadContent              = "publicHeadContent"
	PublicCommentFormBeforeContent = "publicCommentFormBeforeContent"
	InitWidgets                    = "initWidgets"
)

// Func is a registered callback
type Func func(ctx context.Context, arg any) error

// Stack dispatches extension points to callbacks
type Stack struct {
	mu        sync.RWMutex
	callbacks map[string][]Func
}

func NewStack() *Stack {
	return &Stack{callbacks: make(map[string][]Func)}
}

// Add registers fn for name
func (s *Stack) Add(name string, fn Func) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks[name] = append(s.callbacks[name], fn)
}

// Has reports whether name has at least one callback
func (s *Stack) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.callbacks[name]) > 0
}

// Call runs every callback of name and stops at the first error
func (s *Stack) Call(ctx context.Context, name string, arg any) error {
	s.mu.RLock()
	fns := append([]Func(nil), s.callbacks[name]...)
	s.mu.RUnlock()

	for _, fn := range fns {
		if err := fn(ctx, arg); err != nil {
			return err
		}
	}
	return nil
}
