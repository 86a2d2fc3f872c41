package slots

import (
	"github.com/garyburd/redigo/redis"
	"github.com/movio/sharedstore"
)

// RedisSlot keeps the slot in a single Redis string key.
// This implementation uses Gary Burd's Go Redis client.
// See https://github.com/garyburd/redigo
type RedisSlot struct {
	conn   redis.Conn
	key    string
	logger sharedstore.Logger
}

// NewRedisSlot creates a slot stored under key.
func NewRedisSlot(config *sharedstore.Config, conn redis.Conn, key string) *RedisSlot {
	config = config.WithDefaults()
	return &RedisSlot{
		conn,
		key,
		config.Logger,
	}
}

// Read gets the key. A missing key reads as "".
// It is implemented using the Redis GET command.
// See https://redis.io/commands/get
func (s *RedisSlot) Read() (string, error) {
	s.logger.Debug("RedisSlot Read: ", s.key)
	content, err := redis.String(s.conn.Do("GET", s.key))
	if err == redis.ErrNil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

// Write sets the key.
// It is implemented using the Redis SET command.
// See https://redis.io/commands/set
func (s *RedisSlot) Write(content string) error {
	s.logger.Debugf("RedisSlot Write: %s (%d bytes)", s.key, len(content))
	_, err := s.conn.Do("SET", s.key, content)
	return err
}

// WithMetrics wraps the slot in a SlotMetrics decorator
func (s *RedisSlot) WithMetrics(provider sharedstore.MetricsProvider, label string) sharedstore.Slot {
	return sharedstore.NewSlotMetrics(s, provider, label)
}
