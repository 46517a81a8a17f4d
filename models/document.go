package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document is a single stored record of any kind. Kind names the logical
// collection it belongs to and Fields holds the record body.
type Document struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Kind      string            `gorm:"not null;size:64;index"`
	Fields    datatypes.JSONMap `gorm:"not null"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

// BeforeCreate assigns a time-ordered identifier so that ordering by id
// follows insertion order.
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}
