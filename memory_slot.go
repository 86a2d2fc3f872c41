package sharedstore

import "sync"

// MemorySlot is an in-process slot that keeps its content in a string.
// It is the default slot outside the browser and a convenient test double.
type MemorySlot struct {
	mu      sync.Mutex
	content string
}

// NewMemorySlot creates a slot holding the given content.
func NewMemorySlot(content string) *MemorySlot {
	return &MemorySlot{content: content}
}

// Read returns the current content
func (s *MemorySlot) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content, nil
}

// Write replaces the current content
func (s *MemorySlot) Write(content string) error {
	s.mu.Lock()
	s.content = content
	s.mu.Unlock()
	return nil
}

// WithMetrics wraps the slot in a SlotMetrics decorator
func (s *MemorySlot) WithMetrics(provider MetricsProvider, label string) Slot {
	return NewSlotMetrics(s, provider, label)
}
