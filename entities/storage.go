package entities

import (
	"time"

	"github.com/google/uuid"
)

// Storage holds the perishable inventory of one organization.
// There is at most one row per organization; it is created lazily
// on the first item add.
type Storage struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Organization string    `gorm:"uniqueIndex" json:"organization"`

	Items []*Item `gorm:"foreignKey:StorageID" json:"inventory"`
	Timestamp
}

type Item struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StorageID uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	ExpDate   time.Time `gorm:"type:date" json:"exp_date"`
	Price     float64   `json:"price"`
	Position  int       `json:"-"` // insertion order within the storage

	Timestamp
}
