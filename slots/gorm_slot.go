package slots

import (
	"fmt"

	"github.com/movio/sharedstore"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotRecord maps to the shared_slots table
type SlotRecord struct {
	Name    string `gorm:"primaryKey"`
	Content string
}

// TableName pins the table name regardless of the naming strategy
func (SlotRecord) TableName() string {
	return "shared_slots"
}

// GormSlot keeps the slot in one row of the shared_slots table.
// See: https://gorm.io
type GormSlot struct {
	db     *gorm.DB
	name   string
	logger sharedstore.Logger
}

// NewGormSlot migrates the shared_slots table and binds a slot to the row called name.
func NewGormSlot(config *sharedstore.Config, db *gorm.DB, name string) (*GormSlot, error) {
	config = config.WithDefaults()
	if err := db.AutoMigrate(&SlotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate shared_slots: %w", err)
	}
	return &GormSlot{db: db, name: name, logger: config.Logger}, nil
}

// Read selects the row. A missing row reads as "".
func (s *GormSlot) Read() (string, error) {
	s.logger.Debug("GormSlot Read: ", s.name)
	var record SlotRecord
	// Find instead of First so that a missing row is not logged as an error
	result := s.db.Where("name = ?", s.name).Limit(1).Find(&record)
	if result.Error != nil {
		return "", fmt.Errorf("failed to read slot %s: %w", s.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return "", nil
	}
	return record.Content, nil
}

// Write upserts the row
func (s *GormSlot) Write(content string) error {
	s.logger.Debugf("GormSlot Write: %s (%d bytes)", s.name, len(content))
	record := SlotRecord{
		Name:    s.name,
		Content: content,
	}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"content"}),
	}).Create(&record)
	if result.Error != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.name, result.Error)
	}
	return nil
}

// WithMetrics wraps the slot in a SlotMetrics decorator
func (s *GormSlot) WithMetrics(provider sharedstore.MetricsProvider, label string) sharedstore.Slot {
	return sharedstore.NewSlotMetrics(s, provider, label)
}
