package slots

import (
	"path/filepath"
	"testing"

	"github.com/movio/sharedstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoltSlot(t *testing.T, path string) *BoltSlot {
	slot, err := NewBoltSlot(testConfig, path, "", "tab")
	require.Nil(t, err)
	return slot
}

func TestBoltSlot(t *testing.T) {
	slot := newTestBoltSlot(t, filepath.Join(t.TempDir(), "slot.bolt"))
	defer slot.Close()
	testSlot(t, slot)
}

func TestBoltSlot_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.bolt")
	slot := newTestBoltSlot(t, path)
	store := sharedstore.NewSharedStore(slot, testConfig)
	store.Initialize()
	require.True(t, store.Set("vorgansharax", vorgansharax))
	require.Nil(t, slot.Close())

	slot = newTestBoltSlot(t, path)
	defer slot.Close()
	store = sharedstore.NewSharedStore(slot, testConfig)
	store.Initialize()
	assert.Equal(t, vorgansharax, store.Get("vorgansharax"))
}

func TestBoltSlot_SeparateKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.bolt")
	first := newTestBoltSlot(t, path)
	require.Nil(t, first.Write(`{"a":1}`))
	require.Nil(t, first.Close())

	second, err := NewBoltSlot(testConfig, path, DefaultBoltBucket, "other")
	require.Nil(t, err)
	defer second.Close()
	content, err := second.Read()
	assert.Nil(t, err)
	assert.Equal(t, "", content)
}

func TestBoltSlot_ClosedDB(t *testing.T) {
	slot := newTestBoltSlot(t, filepath.Join(t.TempDir(), "slot.bolt"))
	require.Nil(t, slot.Close())

	_, err := slot.Read()
	assert.NotNil(t, err)
	store := sharedstore.NewSharedStore(slot, testConfig)
	assert.Nil(t, store.Get("vorgansharax"))
	assert.False(t, store.Set("vorgansharax", vorgansharax))
}
