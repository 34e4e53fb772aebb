// Package profile provides CRUD operations for stored generation profiles.
package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/go-randomstring/randomstring/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileNameEmpty is returned when attempting to create/update a profile with an empty name.
	ErrProfileNameEmpty = errors.New("profile name cannot be empty")
	// ErrProfileAlreadyExists is returned when attempting to create a profile that already exists.
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrProfileNil is returned when no profile was passed.
	ErrProfileNil = errors.New("profile is nil")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a profile by its name.
func Get(db *gorm.DB, name string) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrProfileNameEmpty
	}

	var profile models.Profile
	result := db.Where(nameQueryPattern, name).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}

	return &profile, nil
}

// GetAll retrieves all profiles ordered by name.
func GetAll(db *gorm.DB) ([]models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var profiles []models.Profile
	result := db.Order("name").Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}

	return profiles, nil
}

// Create stores a new profile.
func Create(db *gorm.DB, profile *models.Profile) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if profile == nil {
		return nil, ErrProfileNil
	}
	if profile.Name == "" {
		return nil, ErrProfileNameEmpty
	}

	// Check if profile already exists
	var existing models.Profile
	result := db.Where(nameQueryPattern, profile.Name).First(&existing)
	if result.Error == nil {
		return nil, ErrProfileAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	created := *profile
	created.ID = 0

	result = db.Create(&created)
	if result.Error != nil {
		return nil, result.Error
	}

	return &created, nil
}

// Update replaces the options of an existing profile by name.
// The name itself is kept.
func Update(db *gorm.DB, name string, profile *models.Profile) (*models.Profile, error) {
	if profile == nil {
		return nil, ErrProfileNil
	}

	existing, err := Get(db, name)
	if err != nil {
		return nil, err
	}

	existing.Description = profile.Description
	existing.Length = profile.Length
	existing.Charset = profile.Charset
	existing.Readable = profile.Readable
	existing.Capitalization = profile.Capitalization

	result := db.Save(existing)
	if result.Error != nil {
		return nil, result.Error
	}

	return existing, nil
}

// Set creates or updates a profile by name (upsert operation).
func Set(db *gorm.DB, profile *models.Profile) (*models.Profile, error) {
	if profile == nil {
		return nil, ErrProfileNil
	}

	updated, err := Update(db, profile.Name, profile)
	if errors.Is(err, ErrProfileNotFound) {
		return Create(db, profile)
	}

	return updated, err
}

// Delete deletes a profile by name.
func Delete(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrProfileNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// Count returns the number of stored profiles.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Profile{}).Count(&count)

	return count, result.Error
}
