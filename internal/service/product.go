package service

import (
	"errors"
	"time"

	"franchise-backend/internal/database/models"
	apperrors "franchise-backend/internal/errors"
	"franchise-backend/internal/logger"
	"franchise-backend/internal/metrics"
	"franchise-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService handles business logic for products
type ProductService struct {
	uow       repository.UnitOfWorkInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewProductService creates a new product service
func NewProductService(uow repository.UnitOfWorkInterface, validator *validator.Validate) *ProductService {
	return &ProductService{
		uow:       uow,
		validator: validator,
		log:       logger.New().WithField("service", apperrors.EntityProduct),
	}
}

// CreateProductRequest represents the request to create a product.
// Stock is a pointer so that an omitted value is rejected instead of read as zero.
type CreateProductRequest struct {
	Name     string    `json:"name" validate:"required,notblank,min=3,max=100"`
	Stock    *int      `json:"stock" validate:"required,min=0"`
	BranchID uuid.UUID `json:"branch_id" validate:"required"`
}

// UpdateStockRequest represents the request to set the stock of a product
type UpdateStockRequest struct {
	Stock *int `json:"stock" validate:"required,min=0"`
}

// ProductResponse represents the response for product operations
type ProductResponse struct {
	ID        uuid.UUID `json:"id"`
	BranchID  uuid.UUID `json:"branch_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Create creates a new product in an existing branch
func (s *ProductService) Create(req *CreateProductRequest) (*ProductResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	product := &models.Product{BranchID: req.BranchID, Name: req.Name, Stock: *req.Stock}
	err := s.uow.Do(func(repos *repository.Repositories) error {
		exists, err := repos.Branches.ExistsByID(req.BranchID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(apperrors.EntityBranch, req.BranchID.String())
		}
		return repos.Products.Create(product)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.NewNotFoundError(apperrors.EntityBranch, req.BranchID.String())
		}
		return nil, translateError(err, apperrors.EntityProduct, product.ID, "create product")
	}

	metrics.EntitiesCreated.WithLabelValues(apperrors.EntityProduct).Inc()
	s.log.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"branch_id":  product.BranchID,
		"stock":      product.Stock,
	}).Info("Product created")

	return toProductResponse(product), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(id uuid.UUID) (*ProductResponse, error) {
	var product *models.Product
	err := s.uow.Read(func(repos *repository.Repositories) error {
		var err error
		product, err = repos.Products.GetByID(id)
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityProduct, id, "get product")
	}

	return toProductResponse(product), nil
}

// GetAll retrieves all products in creation order
func (s *ProductService) GetAll() ([]ProductResponse, error) {
	var products []models.Product
	err := s.uow.Read(func(repos *repository.Repositories) error {
		var err error
		products, err = repos.Products.GetAll()
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityProduct, uuid.Nil, "get products")
	}

	return toProductResponses(products), nil
}

// GetByBranch retrieves the products of a branch in creation order
func (s *ProductService) GetByBranch(branchID uuid.UUID) ([]ProductResponse, error) {
	var products []models.Product
	err := s.uow.Read(func(repos *repository.Repositories) error {
		exists, err := repos.Branches.ExistsByID(branchID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(apperrors.EntityBranch, branchID.String())
		}
		products, err = repos.Products.GetByBranchID(branchID)
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityBranch, branchID, "get products by branch")
	}

	return toProductResponses(products), nil
}

// UpdateStock sets the stock of a product
func (s *ProductService) UpdateStock(id uuid.UUID, req *UpdateStockRequest) (*ProductResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	product, err := s.update(id, map[string]interface{}{"stock": *req.Stock}, "update product stock")
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"product_id": id,
		"stock":      product.Stock,
	}).Info("Product stock updated")
	return toProductResponse(product), nil
}

// Rename changes the name of a product
func (s *ProductService) Rename(id uuid.UUID, req *UpdateNameRequest) (*ProductResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	product, err := s.update(id, map[string]interface{}{"name": req.Name}, "rename product")
	if err != nil {
		return nil, err
	}

	s.log.WithField("product_id", id).Info("Product renamed")
	return toProductResponse(product), nil
}

// Delete removes a single product
func (s *ProductService) Delete(id uuid.UUID) error {
	err := s.uow.Do(func(repos *repository.Repositories) error {
		deleted, err := repos.Products.Delete(id)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return apperrors.NewNotFoundError(apperrors.EntityProduct, id.String())
		}
		return nil
	})
	if err != nil {
		return translateError(err, apperrors.EntityProduct, id, "delete product")
	}

	metrics.CascadeDeletedRecords.WithLabelValues(apperrors.EntityProduct, apperrors.EntityProduct).Inc()
	s.log.WithField("product_id", id).Info("Product deleted")
	return nil
}

// update applies fields to an existing product, bumps its modification time
// and returns the stored result.
func (s *ProductService) update(id uuid.UUID, fields map[string]interface{}, action string) (*models.Product, error) {
	var product *models.Product
	err := s.uow.Do(func(repos *repository.Repositories) error {
		current, err := repos.Products.GetByID(id)
		if err != nil {
			return err
		}
		fields["updated_at"] = models.NextUpdate(current.UpdatedAt)
		if err := repos.Products.UpdateFields(id, fields); err != nil {
			return err
		}
		product, err = repos.Products.GetByID(id)
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityProduct, id, action)
	}
	return product, nil
}

func toProductResponse(product *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:        product.ID,
		BranchID:  product.BranchID,
		Name:      product.Name,
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt.UTC(),
		UpdatedAt: product.UpdatedAt.UTC(),
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *toProductResponse(&products[i]))
	}
	return responses
}
