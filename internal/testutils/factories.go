package testutils

import (
	"fmt"
	"sync/atomic"

	"franchise-backend/internal/database/models"

	"github.com/google/uuid"
)

var sequence atomic.Int64

func nextName(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, sequence.Add(1))
}

// FranchiseFactory provides methods to create test Franchise data.
// IDs and timestamps are left to the store.
type FranchiseFactory struct{}

// NewFranchiseFactory creates a new FranchiseFactory
func NewFranchiseFactory() *FranchiseFactory {
	return &FranchiseFactory{}
}

// Create creates a test Franchise with a unique name
func (f *FranchiseFactory) Create() *models.Franchise {
	return &models.Franchise{Name: nextName("Test Franchise")}
}

// WithName sets a custom name for the franchise
func (f *FranchiseFactory) WithName(name string) *models.Franchise {
	franchise := f.Create()
	franchise.Name = name
	return franchise
}

// BranchFactory provides methods to create test Branch data
type BranchFactory struct{}

// NewBranchFactory creates a new BranchFactory
func NewBranchFactory() *BranchFactory {
	return &BranchFactory{}
}

// Create creates a test Branch for the given franchise
func (f *BranchFactory) Create(franchiseID uuid.UUID) *models.Branch {
	return &models.Branch{
		FranchiseID: franchiseID,
		Name:        nextName("Test Branch"),
	}
}

// WithName creates a test Branch with a custom name
func (f *BranchFactory) WithName(franchiseID uuid.UUID, name string) *models.Branch {
	branch := f.Create(franchiseID)
	branch.Name = name
	return branch
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test Product for the given branch with zero stock
func (f *ProductFactory) Create(branchID uuid.UUID) *models.Product {
	return &models.Product{
		BranchID: branchID,
		Name:     nextName("Test Product"),
	}
}

// WithStock creates a test Product with a custom name and stock
func (f *ProductFactory) WithStock(branchID uuid.UUID, name string, stock int) *models.Product {
	product := f.Create(branchID)
	product.Name = name
	product.Stock = stock
	return product
}

// FactorySet provides all factories in one place
type FactorySet struct {
	Franchise *FranchiseFactory
	Branch    *BranchFactory
	Product   *ProductFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Franchise: NewFranchiseFactory(),
		Branch:    NewBranchFactory(),
		Product:   NewProductFactory(),
	}
}
