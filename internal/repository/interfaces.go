package repository

import (
	"franchise-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// FranchiseRepositoryInterface defines the interface for franchise repository operations
type FranchiseRepositoryInterface interface {
	Create(franchise *models.Franchise) error
	GetByID(id uuid.UUID) (*models.Franchise, error)
	ExistsByID(id uuid.UUID) (bool, error)
	GetAll() ([]models.Franchise, error)
	GetWithTree(id uuid.UUID) (*models.Franchise, error)
	GetAllWithTree() ([]models.Franchise, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) (int64, error)
}

// BranchRepositoryInterface defines the interface for branch repository operations
type BranchRepositoryInterface interface {
	Create(branch *models.Branch) error
	GetByID(id uuid.UUID) (*models.Branch, error)
	ExistsByID(id uuid.UUID) (bool, error)
	GetAll() ([]models.Branch, error)
	GetByFranchiseID(franchiseID uuid.UUID) ([]models.Branch, error)
	GetWithProducts(id uuid.UUID) (*models.Branch, error)
	GetAllWithProducts() ([]models.Branch, error)
	GetByFranchiseIDWithProducts(franchiseID uuid.UUID) ([]models.Branch, error)
	CountByFranchiseID(franchiseID uuid.UUID) (int64, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) (int64, error)
	DeleteByFranchiseID(franchiseID uuid.UUID) (int64, error)
}

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByID(id uuid.UUID) (*models.Product, error)
	ExistsByID(id uuid.UUID) (bool, error)
	GetAll() ([]models.Product, error)
	GetByBranchID(branchID uuid.UUID) ([]models.Product, error)
	GetByBranchIDOrderByStockDesc(branchID uuid.UUID) ([]models.Product, error)
	CountByBranchIDs(branchIDs []uuid.UUID) (int64, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) (int64, error)
	DeleteByBranchIDs(branchIDs []uuid.UUID) (int64, error)
}

// UnitOfWorkInterface scopes a set of repository calls to one transaction.
// Do runs fn in a read-write transaction; Read runs fn in a read-only snapshot.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWorkInterface interface {
	Do(fn func(repos *Repositories) error) error
	Read(fn func(repos *Repositories) error) error
}
