package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aitbekovm/grind/internal/models"
)

// Cache is the offline snapshot of the last fetched task collection.
// It is a read-only fallback for when the backend is unreachable; the
// backend remains the source of truth and every List replaces the
// snapshot wholesale.
type Cache struct {
	db *gorm.DB
}

// Open sets up the sqlite cache and runs migrations.
func Open() (*Cache, error) {
	path, err := getCachePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache path: %w", err)
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create grind directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.AutoMigrate(&models.Task{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// OpenAt opens a cache at an explicit path. Used by tests.
func OpenAt(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// getCachePath returns the path to the sqlite cache file
func getCachePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".grind", "grind.db"), nil
}

// SaveSnapshot replaces the cached collection with tasks.
func (c *Cache) SaveSnapshot(tasks []models.Task) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
}

// LoadSnapshot returns the cached collection in insertion order.
func (c *Cache) LoadSnapshot() ([]models.Task, error) {
	var tasks []models.Task
	if err := c.db.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Close closes the underlying connection.
func (c *Cache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
