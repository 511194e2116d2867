package service

import (
	"time"

	"franchise-backend/internal/database/models"
	apperrors "franchise-backend/internal/errors"
	"franchise-backend/internal/logger"
	"franchise-backend/internal/metrics"
	"franchise-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FranchiseService handles business logic for franchises
type FranchiseService struct {
	uow       repository.UnitOfWorkInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewFranchiseService creates a new franchise service
func NewFranchiseService(uow repository.UnitOfWorkInterface, validator *validator.Validate) *FranchiseService {
	return &FranchiseService{
		uow:       uow,
		validator: validator,
		log:       logger.New().WithField("service", apperrors.EntityFranchise),
	}
}

// CreateFranchiseRequest represents the request to create a franchise
type CreateFranchiseRequest struct {
	Name string `json:"name" validate:"required,notblank,min=3,max=100"`
}

// FranchiseResponse represents a franchise with its branches and their products
type FranchiseResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Branches  []BranchResponse `json:"branches"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TopStockProductResponse is one line of the top-stock report: the best
// stocked product of a single branch.
type TopStockProductResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Stock       int       `json:"stock"`
	BranchID    uuid.UUID `json:"branch_id"`
	BranchName  string    `json:"branch_name"`
}

// Create creates a new franchise without branches
func (s *FranchiseService) Create(req *CreateFranchiseRequest) (*FranchiseResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	franchise := &models.Franchise{Name: req.Name}
	err := s.uow.Do(func(repos *repository.Repositories) error {
		return repos.Franchises.Create(franchise)
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityFranchise, franchise.ID, "create franchise")
	}

	metrics.EntitiesCreated.WithLabelValues(apperrors.EntityFranchise).Inc()
	s.log.WithField("franchise_id", franchise.ID).Info("Franchise created")

	return toFranchiseResponse(franchise), nil
}

// GetByID retrieves a franchise with its full branch and product tree
func (s *FranchiseService) GetByID(id uuid.UUID) (*FranchiseResponse, error) {
	var franchise *models.Franchise
	err := s.uow.Read(func(repos *repository.Repositories) error {
		var err error
		franchise, err = repos.Franchises.GetWithTree(id)
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityFranchise, id, "get franchise")
	}

	return toFranchiseResponse(franchise), nil
}

// GetAll retrieves all franchises in creation order
func (s *FranchiseService) GetAll() ([]FranchiseResponse, error) {
	var franchises []models.Franchise
	err := s.uow.Read(func(repos *repository.Repositories) error {
		var err error
		franchises, err = repos.Franchises.GetAllWithTree()
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityFranchise, uuid.Nil, "get franchises")
	}

	responses := make([]FranchiseResponse, 0, len(franchises))
	for i := range franchises {
		responses = append(responses, *toFranchiseResponse(&franchises[i]))
	}
	return responses, nil
}

// Rename changes the name of a franchise and bumps its modification time
func (s *FranchiseService) Rename(id uuid.UUID, req *UpdateNameRequest) (*FranchiseResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var franchise *models.Franchise
	err := s.uow.Do(func(repos *repository.Repositories) error {
		current, err := repos.Franchises.GetByID(id)
		if err != nil {
			return err
		}
		if err := repos.Franchises.UpdateFields(id, map[string]interface{}{
			"name":       req.Name,
			"updated_at": models.NextUpdate(current.UpdatedAt),
		}); err != nil {
			return err
		}
		franchise, err = repos.Franchises.GetWithTree(id)
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityFranchise, id, "rename franchise")
	}

	s.log.WithField("franchise_id", id).Info("Franchise renamed")
	return toFranchiseResponse(franchise), nil
}

// Delete removes a franchise together with all of its branches and products.
// Either the whole subtree disappears or nothing does.
func (s *FranchiseService) Delete(id uuid.UUID) error {
	var result *cascadeResult
	err := s.uow.Do(func(repos *repository.Repositories) error {
		var err error
		result, err = deleteFranchiseTree(repos, id)
		return err
	})
	if err != nil {
		if apperrors.IsIntegrity(err) {
			s.log.WithError(err).WithField("franchise_id", id).Error("Franchise delete rolled back")
		}
		return translateError(err, apperrors.EntityFranchise, id, "delete franchise")
	}

	result.record(apperrors.EntityFranchise)
	s.log.WithFields(map[string]interface{}{
		"franchise_id":     id,
		"branches_deleted": result.Branches,
		"products_deleted": result.Products,
	}).Info("Franchise deleted")
	return nil
}

// GetTopStockProducts reports, for every branch of the franchise that has at
// least one product, the product with the highest stock. Branches appear in
// creation order and branches without products are skipped. All reads share
// one snapshot, so concurrent writers never produce a mixed report.
func (s *FranchiseService) GetTopStockProducts(id uuid.UUID) ([]TopStockProductResponse, error) {
	var report []TopStockProductResponse
	err := s.uow.Read(func(repos *repository.Repositories) error {
		report = []TopStockProductResponse{}

		exists, err := repos.Franchises.ExistsByID(id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(apperrors.EntityFranchise, id.String())
		}

		branches, err := repos.Branches.GetByFranchiseID(id)
		if err != nil {
			return err
		}
		for i := range branches {
			products, err := repos.Products.GetByBranchIDOrderByStockDesc(branches[i].ID)
			if err != nil {
				return err
			}
			top := selectTopStock(products)
			if top == nil {
				continue
			}
			report = append(report, TopStockProductResponse{
				ProductID:   top.ID,
				ProductName: top.Name,
				Stock:       top.Stock,
				BranchID:    branches[i].ID,
				BranchName:  branches[i].Name,
			})
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityFranchise, id, "get top stock products")
	}

	return report, nil
}

func toFranchiseResponse(franchise *models.Franchise) *FranchiseResponse {
	branches := make([]BranchResponse, 0, len(franchise.Branches))
	for i := range franchise.Branches {
		branches = append(branches, *toBranchResponse(&franchise.Branches[i]))
	}

	return &FranchiseResponse{
		ID:        franchise.ID,
		Name:      franchise.Name,
		Branches:  branches,
		CreatedAt: franchise.CreatedAt.UTC(),
		UpdatedAt: franchise.UpdatedAt.UTC(),
	}
}
