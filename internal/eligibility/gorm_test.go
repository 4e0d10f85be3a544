package eligibility

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// failingDriver hands out no connections; every statement against it
// fails the way an unreachable database would.
type failingDriver struct{}

func (failingDriver) Open(name string) (driver.Conn, error) {
	return nil, errors.New("connection refused")
}

func init() {
	sql.Register("failing", failingDriver{})
}

func brokenGorm(t *testing.T, cfg *gorm.Config) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("failing", "")
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}
	cfg.DisableAutomaticPing = true
	cfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	if err != nil {
		t.Fatalf("Expected gorm.Open to succeed without pinging, but got %v", err)
	}
	return db
}

func TestGormStoreFailsOpen(t *testing.T) {
	store := NewGormStore(brokenGorm(t, &gorm.Config{}))
	key := KeyFor("0912345678")

	t.Run("broken lookup reports not played", func(t *testing.T) {
		if store.HasPlayed(key) {
			t.Error("Expected HasPlayed to fail open to false on a storage error")
		}
	})

	t.Run("broken write is swallowed", func(t *testing.T) {
		store.MarkPlayed(key, "R1")

		// The gate stays open rather than surfacing the failure.
		if store.HasPlayed(key) {
			t.Error("Expected HasPlayed to remain false after a dropped write")
		}
	})
}

func TestGormStoreMarkPlayedIgnoresConflicts(t *testing.T) {
	db := brokenGorm(t, &gorm.Config{DryRun: true, SkipDefaultTransaction: true})

	var captured string
	err := db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}

	NewGormStore(db).MarkPlayed(KeyFor("0912345678"), "R1")

	// The unique phone key arbitrates duplicate inserts: a losing
	// writer must be ignored, not overwrite the recorded card.
	if !strings.Contains(captured, "ON CONFLICT") || !strings.Contains(captured, "DO NOTHING") {
		t.Errorf("Expected a conflict-ignoring insert, got %q", captured)
	}
	if strings.Contains(captured, "DO UPDATE") {
		t.Errorf("Expected no upsert on conflict, got %q", captured)
	}
}
