package blog

import "sync"

// URLs maps frontend handler ids to paths relative to the blog URL
type URLs struct {
	mu    sync.RWMutex
	paths map[string]string
}

func NewURLs() *URLs {
	return &URLs{paths: map[string]string{"default": ""}}
}

func (u *URLs) Register(handler, path string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.paths[handler] = path
}

// Path returns the handler path; unknown handlers resolve to the blog root
func (u *URLs) Path(handler string) string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.paths[handler]
}
