//go:build !(js && wasm)

package sharedstore

func defaultSlot() Slot {
	return NewMemorySlot("")
}
