package sharedstore

import (
	"encoding/json"
	"fmt"
)

const emptyMapping = "{}"

// decodeMapping parses slot content into a mapping.
// Blank content decodes to an empty mapping.
func decodeMapping(content string) (map[string]interface{}, error) {
	if isBlank(content) {
		return map[string]interface{}{}, nil
	}
	var decoded interface{}
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSlot, err)
	}
	mapping, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", ErrMalformedSlot, decoded)
	}
	return mapping, nil
}

// encodeMapping serializes a mapping into slot content
func encodeMapping(mapping map[string]interface{}) (string, error) {
	bytes, err := json.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnserializable, err)
	}
	return string(bytes), nil
}

// decodeValue converts a decoded mapping value into the type behind valuePtr
func decodeValue(value interface{}, valuePtr interface{}) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnserializable, err)
	}
	return json.Unmarshal(bytes, valuePtr)
}
