package database

import (
	"fmt"

	"emurai-be-svc/internal/config"
	"emurai-be-svc/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the gorm connection to the embedded preference store
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the sqlite preference store
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate runs schema migrations
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(&models.Preference{})
}

// Close closes the underlying connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
