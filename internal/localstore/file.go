package localstore

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Record is one persisted key-value pair.
type Record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

// File is a sqlite-backed Store. One File is shared process-wide by all
// persisting stores.
type File struct {
	db *gorm.DB
}

// OpenFile opens (or creates) the state database at path.
func OpenFile(path string) (*File, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to open state database")
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		log.Error().Err(err).Msg("failed to migrate state database")
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}

	return &File{db: db}, nil
}

func (f *File) Get(key string) (string, bool, error) {
	var record Record
	result := f.db.Where("key = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %w", key, result.Error)
	}
	return record.Value, true, nil
}

func (f *File) Set(key, value string) error {
	result := f.db.Save(&Record{Key: key, Value: value})
	if result.Error != nil {
		return fmt.Errorf("failed to write key %q: %w", key, result.Error)
	}
	return nil
}

func (f *File) Delete(key string) error {
	result := f.db.Where("key = ?", key).Delete(&Record{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, result.Error)
	}
	return nil
}

func (f *File) Keys(prefix string) ([]string, error) {
	var keys []string
	result := f.db.Model(&Record{}).Where("key LIKE ?", prefix+"%").Pluck("key", &keys)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list keys: %w", result.Error)
	}
	return keys, nil
}
