//go:build js && wasm

package sharedstore

import (
	"fmt"
	"syscall/js"
)

// DefaultWindowProperty is the window property that survives page loads within a tab.
const DefaultWindowProperty = "name"

// WindowSlot keeps the slot in a string property of the browser global object.
type WindowSlot struct {
	global   js.Value
	property string
}

// NewWindowSlot binds a slot to js.Global()[property].
func NewWindowSlot(property string) *WindowSlot {
	return &WindowSlot{
		global:   js.Global(),
		property: property,
	}
}

// Read returns the property as a string. Undefined and null read as "".
func (s *WindowSlot) Read() (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("window.%s: read: %v", s.property, r)
		}
	}()
	value := s.global.Get(s.property)
	if value.IsUndefined() || value.IsNull() {
		return "", nil
	}
	if value.Type() != js.TypeString {
		return "", fmt.Errorf("window.%s: expected a string, got %s", s.property, value.Type())
	}
	return value.String(), nil
}

// Write assigns the property
func (s *WindowSlot) Write(content string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("window.%s: write: %v", s.property, r)
		}
	}()
	s.global.Set(s.property, content)
	return nil
}

// WithMetrics wraps the slot in a SlotMetrics decorator
func (s *WindowSlot) WithMetrics(provider MetricsProvider, label string) Slot {
	return NewSlotMetrics(s, provider, label)
}
