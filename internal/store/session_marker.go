package store

import "sync"

// sessionMarkers is the in-memory implementation of [SessionMarkers]. Values
// vanish with the process, which is exactly the lifetime a session-scoped
// marker needs; nothing here may hold key material.
type sessionMarkers struct {
	mu      sync.RWMutex
	markers map[string]string
}

// NewSessionMarkers constructs an empty process-lifetime [SessionMarkers].
func NewSessionMarkers() SessionMarkers {
	return &sessionMarkers{markers: make(map[string]string)}
}

func (s *sessionMarkers) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.markers[key]
	return v, ok
}

func (s *sessionMarkers) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers[key] = value
}

func (s *sessionMarkers) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.markers, key)
}
