package sharedstore

import "errors"

var (
	// ErrSlotUnavailable is returned when the slot cannot be read or written.
	ErrSlotUnavailable = errors.New("sharedstore: slot unavailable")
	// ErrMalformedSlot is returned when the slot does not hold a JSON object.
	ErrMalformedSlot = errors.New("sharedstore: malformed slot content")
	// ErrUnserializable is returned when the mapping cannot be encoded as JSON.
	ErrUnserializable = errors.New("sharedstore: value cannot be serialized")
)
