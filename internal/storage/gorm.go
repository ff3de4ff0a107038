package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is the single table the SQL backend uses: one row per collection
// blob, same contract as every other Gateway.
type KVRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;type:text"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}

// DB is a Gateway backed by a relational database through gorm, for hosted
// deployments where a managed Postgres beats a local file.
type DB struct {
	db *gorm.DB
}

func NewDB(dsn string) (*DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", ErrPersistence, err)
	}
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrPersistence, err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Get(key string) (string, bool, error) {
	var rec KVRecord
	err := d.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", ErrPersistence, key, err)
	}
	return rec.Value, true, nil
}

func (d *DB) Set(key, value string) error {
	rec := KVRecord{Key: key, Value: value}
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrPersistence, key, err)
	}
	return nil
}

func (d *DB) Delete(key string) error {
	if err := d.db.Delete(&KVRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrPersistence, key, err)
	}
	return nil
}
