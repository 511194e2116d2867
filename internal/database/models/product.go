package models

import (
	"bytes"

	"github.com/google/uuid"
)

// Product is a leaf of the hierarchy carrying a stock count
type Product struct {
	BaseModel
	BranchID uuid.UUID `json:"branch_id" gorm:"type:uuid;not null;index:idx_products_branch_stock,priority:1" validate:"required"`
	Name     string    `json:"name" gorm:"not null;size:100" validate:"required,notblank,min=3,max=100"`
	Stock    int       `json:"stock" gorm:"not null;default:0;index:idx_products_branch_stock,priority:2" validate:"min=0"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}

// OutranksInStock reports whether p wins over other in a per-branch stock ranking:
// higher stock first, then the lower id.
func (p *Product) OutranksInStock(other *Product) bool {
	if p.Stock != other.Stock {
		return p.Stock > other.Stock
	}
	return bytes.Compare(p.ID[:], other.ID[:]) < 0
}
