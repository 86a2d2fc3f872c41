package sharedstore

import (
	"fmt"
	"sort"
)

// SharedStore keeps a mapping of string keys to JSON values in a single Slot.
// Every call decodes the slot, works on the mapping and, for mutations, writes
// the re-encoded mapping back. Nothing is cached between calls, so several
// stores over the same slot see each other's writes. Concurrent writers are
// last-writer-wins.
//
// Initialize, Get, Set, Remove and Clear never panic and never return errors.
// Failures are logged and degrade to nil or false.
type SharedStore struct {
	slot   Slot
	name   string
	logger Logger

	initializeCounter Counter
	getCounter        Counter
	setCounter        Counter
	removeCounter     Counter
	clearCounter      Counter
	failureCounter    Counter
	keysGauge         Gauge
	slotBytesSummary  Summary
}

// NewSharedStore creates a store over slot. The slot is not touched until
// the first call; use Initialize to repair it up front.
func NewSharedStore(slot Slot, config *Config) *SharedStore {
	config = config.WithDefaults()
	metrics := config.MetricsProvider
	labelNames := []string{"store"}
	return &SharedStore{
		slot,
		config.StoreName,
		config.Logger,
		metrics.NewCounter("SharedStore_Initialize", "Number of Initialize() calls", labelNames...),
		metrics.NewCounter("SharedStore_Get", "Number of Get() and Lookup() calls", labelNames...),
		metrics.NewCounter("SharedStore_Set", "Number of Set() calls", labelNames...),
		metrics.NewCounter("SharedStore_Remove", "Number of Remove() calls", labelNames...),
		metrics.NewCounter("SharedStore_Clear", "Number of Clear() calls", labelNames...),
		metrics.NewCounter("SharedStore_Failures", "Number of failed operations", "store", "operation"),
		metrics.NewGauge("SharedStore_Keys", "Number of keys after the last write", labelNames...),
		metrics.NewSummary("SharedStore_SlotBytes", "Summary of written slot sizes", labelNames...),
	}
}

// Name returns the store name used in logs and metrics
func (s *SharedStore) Name() string {
	return s.name
}

// Initialize makes sure the slot holds a JSON object.
// Blank, malformed and unreadable slots are reset to an empty mapping.
// A valid slot is left untouched.
func (s *SharedStore) Initialize() {
	s.initializeCounter.Inc(s.name)
	content, err := s.slot.Read()
	if err != nil {
		s.fail("initialize", fmt.Errorf("%w: %w", ErrSlotUnavailable, err))
		s.reset("initialize")
		return
	}
	if isBlank(content) {
		s.logger.Debugf("SharedStore %s: initializing blank slot", s.name)
		s.reset("initialize")
		return
	}
	if _, err := decodeMapping(content); err != nil {
		s.fail("initialize", err)
		s.logger.Infof("SharedStore %s: resetting slot to an empty mapping", s.name)
		s.reset("initialize")
	}
}

// Get returns the value bound to key, or nil if it is missing or falsy.
// Falsy values are nil, false, 0 and "", so Set(key, 0) reads back as nil.
// Use Lookup to tell a stored falsy value from a missing key.
func (s *SharedStore) Get(key string) interface{} {
	s.logger.Debugf("SharedStore %s Get: %s", s.name, key)
	s.getCounter.Inc(s.name)
	value, found := s.lookup("get", key)
	if !found || !truthy(value) {
		return nil
	}
	return value
}

// Lookup returns the value bound to key and whether the key is present.
func (s *SharedStore) Lookup(key string) (interface{}, bool) {
	s.logger.Debugf("SharedStore %s Lookup: %s", s.name, key)
	s.getCounter.Inc(s.name)
	return s.lookup("lookup", key)
}

// Decode unmarshals the value bound to key into valuePtr.
// Returns false, nil if the key is missing.
func (s *SharedStore) Decode(key string, valuePtr interface{}) (bool, error) {
	s.getCounter.Inc(s.name)
	mapping, err := s.read()
	if err != nil {
		s.fail("decode", err)
		return false, err
	}
	value, found := mapping[key]
	if !found {
		return false, nil
	}
	if err := decodeValue(value, valuePtr); err != nil {
		return false, err
	}
	return true, nil
}

// GetAll gets several keys with a single slot read.
// Missing and falsy values are left out of the result.
func (s *SharedStore) GetAll(keys []string) map[string]interface{} {
	s.logger.Debug("SharedStore GetAll: ", keys)
	s.getCounter.Inc(s.name)
	result := make(map[string]interface{}, len(keys))
	if len(keys) == 0 {
		return result
	}
	mapping, err := s.read()
	if err != nil {
		s.fail("get_all", err)
		return result
	}
	for _, key := range keys {
		if value, found := mapping[key]; found && truthy(value) {
			result[key] = value
		}
	}
	return result
}

// Keys returns the sorted keys of the current mapping, or nil on failure.
func (s *SharedStore) Keys() []string {
	mapping, err := s.read()
	if err != nil {
		s.fail("keys", err)
		return nil
	}
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Set binds value to key. Returns false if the slot could not be read,
// decoded or written, or if value is not JSON serializable. In the latter
// case the slot is left unchanged.
func (s *SharedStore) Set(key string, value interface{}) bool {
	s.logger.Debugf("SharedStore %s Set: %s %#v", s.name, key, value)
	s.setCounter.Inc(s.name)
	err := s.update(func(mapping map[string]interface{}) {
		mapping[key] = value
	})
	if err != nil {
		s.fail("set", err)
		return false
	}
	return true
}

// SetAll binds every entry with a single read-modify-write.
// Either all entries are written or none.
func (s *SharedStore) SetAll(entries map[string]interface{}) bool {
	s.logger.Debugf("SharedStore %s SetAll of %d keys", s.name, len(entries))
	s.setCounter.Inc(s.name)
	err := s.update(func(mapping map[string]interface{}) {
		for key, value := range entries {
			mapping[key] = value
		}
	})
	if err != nil {
		s.fail("set_all", err)
		return false
	}
	return true
}

// Remove deletes key. Removing a missing key succeeds.
func (s *SharedStore) Remove(key string) bool {
	s.logger.Debugf("SharedStore %s Remove: %s", s.name, key)
	s.removeCounter.Inc(s.name)
	err := s.update(func(mapping map[string]interface{}) {
		delete(mapping, key)
	})
	if err != nil {
		s.fail("remove", err)
		return false
	}
	return true
}

// Clear overwrites the slot with an empty mapping, whatever it held.
func (s *SharedStore) Clear() bool {
	s.logger.Debugf("SharedStore %s Clear", s.name)
	s.clearCounter.Inc(s.name)
	return s.reset("clear")
}

func (s *SharedStore) lookup(operation string, key string) (interface{}, bool) {
	mapping, err := s.read()
	if err != nil {
		s.fail(operation, err)
		return nil, false
	}
	value, found := mapping[key]
	return value, found
}

func (s *SharedStore) read() (map[string]interface{}, error) {
	content, err := s.slot.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSlotUnavailable, err)
	}
	return decodeMapping(content)
}

func (s *SharedStore) update(mutate func(map[string]interface{})) error {
	mapping, err := s.read()
	if err != nil {
		return err
	}
	mutate(mapping)
	content, err := encodeMapping(mapping)
	if err != nil {
		return err
	}
	if err := s.write(content); err != nil {
		return err
	}
	s.keysGauge.Set(float64(len(mapping)), s.name)
	return nil
}

func (s *SharedStore) write(content string) error {
	if err := s.slot.Write(content); err != nil {
		return fmt.Errorf("%w: %w", ErrSlotUnavailable, err)
	}
	s.slotBytesSummary.Observe(float64(len(content)), s.name)
	return nil
}

func (s *SharedStore) reset(operation string) bool {
	if err := s.write(emptyMapping); err != nil {
		s.fail(operation, err)
		return false
	}
	s.keysGauge.Set(0, s.name)
	return true
}

func (s *SharedStore) fail(operation string, err error) {
	s.failureCounter.Inc(s.name, operation)
	s.logger.Errorf("SharedStore %s: %s failed: %s", s.name, operation, err)
}

// truthy mirrors JavaScript truthiness for decoded JSON values
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	}
	return true
}
