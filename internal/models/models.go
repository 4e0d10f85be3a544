package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightClass partitions the card catalog for the draw policy.
type WeightClass string

const (
	ClassPrimaryRare WeightClass = "PRIMARY_RARE" // "winner" cards, ~5% of draws
	ClassCommon      WeightClass = "COMMON"       // "manifest" cards, everything else
)

// CatalogEntry is one selectable tarot card. Static, read-only after startup.
type CatalogEntry struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	ImageURL string      `json:"imageUrl"`
	Class    WeightClass `json:"class"`
	Flavor   string      `json:"flavor"`
	Message  string      `json:"message"`
	Advice   string      `json:"advice"`
}

// Identity is the validated visitor tuple. The normalized phone number
// is the uniqueness key; latitude and longitude are optional and usually
// empty.
type Identity struct {
	FullName    string
	PhoneNumber string
	DOB         string
	Latitude    string
	Longitude   string
}

// SessionOutcome pairs an identity with the card it drew. It lives only
// in the flow controller's session state and the relay payload; the only
// durable trace is the PlayRecord's card id.
type SessionOutcome struct {
	Identity Identity
	Entry    CatalogEntry
	DrawnAt  time.Time
}

// PlayRecord is the persisted "has played" marker, one row per phone key.
// A row's existence is the eligibility gate; rows are never deleted.
type PlayRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PhoneKey  string    `gorm:"uniqueIndex;not null"`
	CardID    string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminUser can sign in and read play reports.
type AdminUser struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Migrate will create/update the tables.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&PlayRecord{},
		&AdminUser{},
	)
}
