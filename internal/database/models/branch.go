package models

import (
	"github.com/google/uuid"
)

// Branch belongs to exactly one franchise and owns its products.
// FranchiseID is set at creation and never changes.
type Branch struct {
	BaseModel
	FranchiseID uuid.UUID `json:"franchise_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,notblank,min=3,max=100"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Branch
func (Branch) TableName() string {
	return "branches"
}
