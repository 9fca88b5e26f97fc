package models

import "time"

// KVEntry is a namespaced blob in the local key/value table.
type KVEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"size:255;not null;uniqueIndex"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
