//go:build js && wasm

package sharedstore

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowSlot_ReadWrite(t *testing.T) {
	js.Global().Set("sharedstoreTest", js.Undefined())
	s := NewWindowSlot("sharedstoreTest")

	content, err := s.Read()
	assert.Nil(t, err)
	assert.Equal(t, "", content)

	err = s.Write(`{"a":1}`)
	assert.Nil(t, err)
	content, err = s.Read()
	assert.Nil(t, err)
	assert.Equal(t, `{"a":1}`, content)
}

func TestWindowSlot_NonString(t *testing.T) {
	js.Global().Set("sharedstoreTest", 42)
	s := NewWindowSlot("sharedstoreTest")
	_, err := s.Read()
	assert.NotNil(t, err)

	store := NewSharedStore(s, &Config{Logger: NewNoopLogger()})
	store.Initialize()
	content, err := s.Read()
	assert.Nil(t, err)
	assert.Equal(t, "{}", content)
}
