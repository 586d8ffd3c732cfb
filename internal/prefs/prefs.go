// Package prefs stores the single persisted preference, the display
// theme, in a small SQLite database. Task data is deliberately never
// written here; it lives only for the duration of the session.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/okravets/dayline/internal/models"
)

const themeKey = "theme"

// DefaultTheme applies when no preference was ever saved.
const DefaultTheme = models.ThemeDark

// Setting is a single key-value preference row.
type Setting struct {
	Key   string `gorm:"primarykey"`
	Value string
}

// Store wraps the preferences database.
type Store struct {
	db *gorm.DB
}

// Open sets up the database at path and runs migrations. The parent
// directory is created if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}

	if err := db.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// DefaultPath returns the per-user location of the preferences database.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".dayline", "dayline.db"), nil
}

// Theme reads the saved theme. The bool result is false when nothing
// was ever saved, in which case callers fall back to DefaultTheme.
func (s *Store) Theme() (models.Theme, bool, error) {
	var setting Setting
	err := s.db.Where("key = ?", themeKey).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultTheme, false, nil
	}
	if err != nil {
		return DefaultTheme, false, err
	}

	theme, err := models.ParseTheme(setting.Value)
	if err != nil {
		// A corrupt value behaves like an absent one.
		return DefaultTheme, false, nil
	}
	return theme, true, nil
}

// SetTheme saves the theme under the fixed key, replacing any previous
// value.
func (s *Store) SetTheme(theme models.Theme) error {
	setting := Setting{Key: themeKey, Value: string(theme)}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting).Error
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
