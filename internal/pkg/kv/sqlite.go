package kv

import (
	"errors"
	"strconv"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is a single key-value row.
type Entry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// SQLiteStore persists key-value pairs in a local SQLite database, the
// on-device equivalent of a mobile app's local storage.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database at path and migrates the
// kv_entries table.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GetString(key string) (string, bool) {
	var entry Entry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return entry.Value, true
}

func (s *SQLiteStore) SetString(key, value string) error {
	return s.db.Save(&Entry{Key: key, Value: value}).Error
}

func (s *SQLiteStore) GetBoolean(key string) (bool, bool) {
	v, ok := s.GetString(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func (s *SQLiteStore) SetBoolean(key string, value bool) error {
	return s.SetString(key, strconv.FormatBool(value))
}

func (s *SQLiteStore) Delete(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
