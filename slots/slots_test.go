package slots

import (
	"os"
	"testing"

	"github.com/movio/sharedstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = &sharedstore.Config{
	StoreName: "test",
	Logger:    sharedstore.NewNoopLogger(),
}

var vorgansharax = map[string]interface{}{"color": "green", "name": "Vorgansharax"}

func getCIHost() string {
	if host := os.Getenv("CI_HOST"); host != "" {
		return host
	}
	return "localhost"
}

// testSlot checks a slot that starts out missing
func testSlot(t *testing.T, slot sharedstore.Slot) {
	// Missing record reads as blank
	content, err := slot.Read()
	require.Nil(t, err)
	assert.Equal(t, "", content)

	// Write then read
	err = slot.Write(`{"falkor":"white"}`)
	assert.Nil(t, err)
	content, err = slot.Read()
	assert.Nil(t, err)
	assert.Equal(t, `{"falkor":"white"}`, content)

	// Overwrite
	err = slot.Write("{}")
	assert.Nil(t, err)
	content, err = slot.Read()
	assert.Nil(t, err)
	assert.Equal(t, "{}", content)

	// Drive it through a store
	store := sharedstore.NewSharedStore(slot, testConfig)
	store.Initialize()
	assert.True(t, store.Set("vorgansharax", vorgansharax))
	assert.Equal(t, vorgansharax, store.Get("vorgansharax"))
	assert.True(t, store.Remove("vorgansharax"))
	assert.Nil(t, store.Get("vorgansharax"))
	assert.True(t, store.Clear())
	content, err = slot.Read()
	assert.Nil(t, err)
	assert.Equal(t, "{}", content)
}
