package repository

import (
	"errors"

	"emurai-be-svc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository defines the interface for durable key-value client state
type PreferenceRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// preferenceRepository implements PreferenceRepository
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new instance of PreferenceRepository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// Get retrieves a preference value. A missing key returns an empty string
// so callers can apply their own default.
func (r *preferenceRepository) Get(key string) (string, error) {
	var pref models.Preference

	err := r.db.First(&pref, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return pref.Value, nil
}

// Set upserts a preference value
func (r *preferenceRepository) Set(key, value string) error {
	pref := models.Preference{Key: key, Value: value}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}
