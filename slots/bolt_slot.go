package slots

import (
	"time"

	"github.com/boltdb/bolt"
	"github.com/movio/sharedstore"
)

// DefaultBoltBucket is the bucket used when NewBoltSlot gets an empty bucket name.
const DefaultBoltBucket = "sharedstore"

// BoltSlot keeps the slot in a single key of a Bolt bucket.
// See: https://github.com/boltdb/bolt
type BoltSlot struct {
	db     *bolt.DB
	bucket []byte
	key    []byte
	logger sharedstore.Logger
}

// NewBoltSlot opens (or creates) the Bolt file at path, for example
// /tmp/sharedstore.bolt, and makes sure the bucket exists.
func NewBoltSlot(config *sharedstore.Config, path string, bucket string, key string) (*BoltSlot, error) {
	config = config.WithDefaults()
	if bucket == "" {
		bucket = DefaultBoltBucket
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltSlot{
		db,
		[]byte(bucket),
		[]byte(key),
		config.Logger,
	}, nil
}

// Read gets the key from the bucket. A missing key reads as "".
func (s *BoltSlot) Read() (string, error) {
	s.logger.Debugf("BoltSlot Read: %s/%s", s.bucket, s.key)
	var content string
	err := s.db.View(func(tx *bolt.Tx) error {
		bytes := tx.Bucket(s.bucket).Get(s.key)
		if bytes != nil {
			content = string(bytes)
		}
		return nil
	})
	return content, err
}

// Write puts the key into the bucket
func (s *BoltSlot) Write(content string) error {
	s.logger.Debugf("BoltSlot Write: %s/%s (%d bytes)", s.bucket, s.key, len(content))
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(s.key, []byte(content))
	})
}

// Close releases the Bolt file lock
func (s *BoltSlot) Close() error {
	return s.db.Close()
}

// WithMetrics wraps the slot in a SlotMetrics decorator
func (s *BoltSlot) WithMetrics(provider sharedstore.MetricsProvider, label string) sharedstore.Slot {
	return sharedstore.NewSlotMetrics(s, provider, label)
}
