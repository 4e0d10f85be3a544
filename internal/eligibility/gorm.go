package eligibility

import (
	"errors"

	"github.com/google/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
)

// GormStore persists play records in Postgres. Storage failures fail
// open: a broken lookup reports "not played" and a failed write is
// dropped after logging, at the documented cost of allowing a repeat
// play when the database is unreliable.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// HasPlayed reports whether a play record exists for the key.
func (s *GormStore) HasPlayed(key string) bool {
	var rec models.PlayRecord
	err := s.db.Where("phone_key = ?", key).First(&rec).Error
	if err == nil {
		return true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Errorf("eligibility: lookup failed for %s: %v", key, err)
	}
	return false
}

// MarkPlayed records the drawn card for the key. The unique index on
// phone_key is the arbiter: a concurrent duplicate insert is ignored,
// so the first recorded draw wins and the row can never be corrupted.
func (s *GormStore) MarkPlayed(key, entryID string) {
	rec := models.PlayRecord{
		ID:       uuid.New(),
		PhoneKey: key,
		CardID:   entryID,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone_key"}},
		DoNothing: true,
	}).Create(&rec).Error
	if err != nil {
		logger.Errorf("eligibility: mark failed for %s: %v", key, err)
	}
}
