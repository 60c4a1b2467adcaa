package models

import (
	"time"

	"rentorbuy/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the columns shared by persisted records.
// Audit rows are append-only, so there is no update or soft-delete column.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
