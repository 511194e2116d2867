package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FranchiseServiceInterface defines the interface for franchise service
type FranchiseServiceInterface interface {
	Create(req *CreateFranchiseRequest) (*FranchiseResponse, error)
	GetByID(id uuid.UUID) (*FranchiseResponse, error)
	GetAll() ([]FranchiseResponse, error)
	Rename(id uuid.UUID, req *UpdateNameRequest) (*FranchiseResponse, error)
	Delete(id uuid.UUID) error
	GetTopStockProducts(id uuid.UUID) ([]TopStockProductResponse, error)
}

// BranchServiceInterface defines the interface for branch service
type BranchServiceInterface interface {
	Create(req *CreateBranchRequest) (*BranchResponse, error)
	GetByID(id uuid.UUID) (*BranchResponse, error)
	GetAll() ([]BranchResponse, error)
	GetByFranchise(franchiseID uuid.UUID) ([]BranchResponse, error)
	Rename(id uuid.UUID, req *UpdateNameRequest) (*BranchResponse, error)
	Delete(id uuid.UUID) error
}

// ProductServiceInterface defines the interface for product service
type ProductServiceInterface interface {
	Create(req *CreateProductRequest) (*ProductResponse, error)
	GetByID(id uuid.UUID) (*ProductResponse, error)
	GetAll() ([]ProductResponse, error)
	GetByBranch(branchID uuid.UUID) ([]ProductResponse, error)
	UpdateStock(id uuid.UUID, req *UpdateStockRequest) (*ProductResponse, error)
	Rename(id uuid.UUID, req *UpdateNameRequest) (*ProductResponse, error)
	Delete(id uuid.UUID) error
}
