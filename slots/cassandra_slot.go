package slots

import (
	"fmt"

	"github.com/gocql/gocql"
	"github.com/movio/sharedstore"
)

// CassandraSlot keeps the slot in one row of a Cassandra table shaped as:
//	CREATE TABLE {table} (name text PRIMARY KEY, content text)
type CassandraSlot struct {
	session *gocql.Session
	table   string
	name    string
	logger  sharedstore.Logger
}

// NewCassandraSlot binds a slot to the row called name in table.
// The table may be keyspace qualified and must already exist, see CreateCassandraTable.
func NewCassandraSlot(config *sharedstore.Config, session *gocql.Session, table string, name string) *CassandraSlot {
	config = config.WithDefaults()
	return &CassandraSlot{
		session,
		table,
		name,
		config.Logger,
	}
}

// CreateCassandraTable creates the slot table if it does not exist
func CreateCassandraTable(session *gocql.Session, table string) error {
	statement := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (name text PRIMARY KEY, content text)", table)
	return session.Query(statement).Exec()
}

// Read selects the row. A missing row reads as "".
func (s *CassandraSlot) Read() (string, error) {
	s.logger.Debug("CassandraSlot Read: ", s.name)
	var content string
	statement := fmt.Sprintf("SELECT content FROM %s WHERE name = ?", s.table)
	err := s.session.Query(statement, s.name).Scan(&content)
	if err == gocql.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

// Write inserts the row, replacing any previous content
func (s *CassandraSlot) Write(content string) error {
	s.logger.Debugf("CassandraSlot Write: %s (%d bytes)", s.name, len(content))
	statement := fmt.Sprintf("INSERT INTO %s (name, content) VALUES (?, ?)", s.table)
	return s.session.Query(statement, s.name, content).Exec()
}

// WithMetrics wraps the slot in a SlotMetrics decorator
func (s *CassandraSlot) WithMetrics(provider sharedstore.MetricsProvider, label string) sharedstore.Slot {
	return sharedstore.NewSlotMetrics(s, provider, label)
}
