package models

// Franchise is the root of the ownership hierarchy
type Franchise struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,notblank,min=3,max=100"`

	// Relationships
	Branches []Branch `json:"branches,omitempty" gorm:"foreignKey:FranchiseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Franchise
func (Franchise) TableName() string {
	return "franchises"
}
