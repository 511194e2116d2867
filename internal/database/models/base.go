package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys.
// IDs are UUIDv7, so ascending id order follows creation order.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		base.ID = id
	}
	return nil
}

// Now returns the current time at the precision the store keeps (microseconds, UTC).
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NextUpdate returns the modification time for an entity last touched at prev.
// The result is always strictly after prev, even when the clock has not advanced
// past the store's precision.
func NextUpdate(prev time.Time) time.Time {
	now := Now()
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
