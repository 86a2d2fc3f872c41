package sharedstore

import "sync/atomic"

var defaultStore atomic.Pointer[SharedStore]

func init() {
	store := NewSharedStore(defaultSlot(), &Config{StoreName: DefaultStoreName})
	store.Initialize()
	defaultStore.Store(store)
}

// Default returns the store behind the package-level functions.
func Default() *SharedStore {
	return defaultStore.Load()
}

// SetDefault initializes store and makes it the target of the package-level functions.
func SetDefault(store *SharedStore) {
	store.Initialize()
	defaultStore.Store(store)
}

// GetSharedData returns the value bound to key in the default store, or nil.
func GetSharedData(key string) interface{} {
	return Default().Get(key)
}

// SetSharedData binds value to key in the default store.
func SetSharedData(key string, value interface{}) bool {
	return Default().Set(key, value)
}

// RemoveSharedData deletes key from the default store.
func RemoveSharedData(key string) bool {
	return Default().Remove(key)
}

// ClearSharedStorage empties the default store.
func ClearSharedStorage() bool {
	return Default().Clear()
}
