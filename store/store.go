package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"thekedaar-server/config"
)

// Logical collection keys. The adapter namespaces them with the
// thekedaar_ prefix before they hit the backing table.
const (
	KeyWorkers    = "workers"
	KeyConsumers  = "consumers"
	KeyBookings   = "bookings"
	KeyCategories = "categories"
	KeyReviews    = "reviews"
	KeyFeedbacks  = "feedbacks"
	KeySession    = "session"
	KeyTheme      = "theme"
)

const keyPrefix = "thekedaar_"

// Entry is one persisted document: a whole JSON-encoded collection (or the
// session/theme record) under its namespaced key.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Entry model
func (Entry) TableName() string {
	return "kv_entries"
}

// Store is the persistent key-value adapter. Every write replaces a whole
// document; there is no partial patching.
type Store struct {
	db *gorm.DB
}

// Initialize opens the backing store and runs migrations. A local SQLite
// file is the default; setting DB_URL switches to Postgres.
func Initialize() (*Store, error) {
	cfg := config.AppConfig.Store

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	if cfg.PostgresURL != "" {
		dialector = postgres.Open(cfg.PostgresURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to run store migrations: %w", err)
	}

	log.Println("✅ Successfully connected to store")
	return &Store{db: db}, nil
}

// New wraps an already-open database handle. Used by tests to run against
// an in-memory SQLite store.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to run store migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the raw JSON document stored under key, or false when the
// key is absent.
func (s *Store) Load(key string) (json.RawMessage, bool) {
	var entry Entry
	err := s.db.First(&entry, "key = ?", keyPrefix+key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Failed to load %q from store: %v", key, err)
		}
		return nil, false
	}
	return json.RawMessage(entry.Value), true
}

// LoadJSON decodes the document stored under key into dest. Absent keys and
// malformed documents both yield false so the caller substitutes its
// fallback; decode failures are logged, never returned.
func (s *Store) LoadJSON(key string, dest interface{}) bool {
	raw, ok := s.Load(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("⚠️ Corrupt document under %q, falling back to defaults: %v", key, err)
		return false
	}
	return true
}

// Save upserts the raw document under key, replacing any previous value.
func (s *Store) Save(key string, value json.RawMessage) error {
	entry := Entry{Key: keyPrefix + key, Value: string(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// SaveJSON encodes v and stores it under key.
func (s *Store) SaveJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.Save(key, data)
}

// Remove deletes the document under key. Removing an absent key is not an
// error.
func (s *Store) Remove(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", keyPrefix+key).Error
}
