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

// BranchService handles business logic for branches
type BranchService struct {
	uow       repository.UnitOfWorkInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewBranchService creates a new branch service
func NewBranchService(uow repository.UnitOfWorkInterface, validator *validator.Validate) *BranchService {
	return &BranchService{
		uow:       uow,
		validator: validator,
		log:       logger.New().WithField("service", apperrors.EntityBranch),
	}
}

// CreateBranchRequest represents the request to create a branch
type CreateBranchRequest struct {
	Name        string    `json:"name" validate:"required,notblank,min=3,max=100"`
	FranchiseID uuid.UUID `json:"franchise_id" validate:"required"`
}

// BranchResponse represents a branch with its products
type BranchResponse struct {
	ID          uuid.UUID         `json:"id"`
	FranchiseID uuid.UUID         `json:"franchise_id"`
	Name        string            `json:"name"`
	Products    []ProductResponse `json:"products"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Create creates a new branch under an existing franchise
func (s *BranchService) Create(req *CreateBranchRequest) (*BranchResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	branch := &models.Branch{FranchiseID: req.FranchiseID, Name: req.Name}
	err := s.uow.Do(func(repos *repository.Repositories) error {
		exists, err := repos.Franchises.ExistsByID(req.FranchiseID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(apperrors.EntityFranchise, req.FranchiseID.String())
		}
		return repos.Branches.Create(branch)
	})
	if err != nil {
		// the franchise vanished between the check and the insert
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, req.FranchiseID.String())
		}
		return nil, translateError(err, apperrors.EntityBranch, branch.ID, "create branch")
	}

	metrics.EntitiesCreated.WithLabelValues(apperrors.EntityBranch).Inc()
	s.log.WithFields(map[string]interface{}{
		"branch_id":    branch.ID,
		"franchise_id": branch.FranchiseID,
	}).Info("Branch created")

	return toBranchResponse(branch), nil
}

// GetByID retrieves a branch with its products
func (s *BranchService) GetByID(id uuid.UUID) (*BranchResponse, error) {
	var branch *models.Branch
	err := s.uow.Read(func(repos *repository.Repositories) error {
		var err error
		branch, err = repos.Branches.GetWithProducts(id)
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityBranch, id, "get branch")
	}

	return toBranchResponse(branch), nil
}

// GetAll retrieves all branches in creation order
func (s *BranchService) GetAll() ([]BranchResponse, error) {
	var branches []models.Branch
	err := s.uow.Read(func(repos *repository.Repositories) error {
		var err error
		branches, err = repos.Branches.GetAllWithProducts()
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityBranch, uuid.Nil, "get branches")
	}

	return toBranchResponses(branches), nil
}

// GetByFranchise retrieves the branches of a franchise in creation order
func (s *BranchService) GetByFranchise(franchiseID uuid.UUID) ([]BranchResponse, error) {
	var branches []models.Branch
	err := s.uow.Read(func(repos *repository.Repositories) error {
		exists, err := repos.Franchises.ExistsByID(franchiseID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(apperrors.EntityFranchise, franchiseID.String())
		}
		branches, err = repos.Branches.GetByFranchiseIDWithProducts(franchiseID)
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityFranchise, franchiseID, "get branches by franchise")
	}

	return toBranchResponses(branches), nil
}

// Rename changes the name of a branch and bumps its modification time
func (s *BranchService) Rename(id uuid.UUID, req *UpdateNameRequest) (*BranchResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var branch *models.Branch
	err := s.uow.Do(func(repos *repository.Repositories) error {
		current, err := repos.Branches.GetByID(id)
		if err != nil {
			return err
		}
		if err := repos.Branches.UpdateFields(id, map[string]interface{}{
			"name":       req.Name,
			"updated_at": models.NextUpdate(current.UpdatedAt),
		}); err != nil {
			return err
		}
		branch, err = repos.Branches.GetWithProducts(id)
		return err
	})
	if err != nil {
		return nil, translateError(err, apperrors.EntityBranch, id, "rename branch")
	}

	s.log.WithField("branch_id", id).Info("Branch renamed")
	return toBranchResponse(branch), nil
}

// Delete removes a branch together with its products
func (s *BranchService) Delete(id uuid.UUID) error {
	var result *cascadeResult
	err := s.uow.Do(func(repos *repository.Repositories) error {
		var err error
		result, err = deleteBranchTree(repos, id)
		return err
	})
	if err != nil {
		if apperrors.IsIntegrity(err) {
			s.log.WithError(err).WithField("branch_id", id).Error("Branch delete rolled back")
		}
		return translateError(err, apperrors.EntityBranch, id, "delete branch")
	}

	result.record(apperrors.EntityBranch)
	s.log.WithFields(map[string]interface{}{
		"branch_id":        id,
		"products_deleted": result.Products,
	}).Info("Branch deleted")
	return nil
}

func toBranchResponse(branch *models.Branch) *BranchResponse {
	products := make([]ProductResponse, 0, len(branch.Products))
	for i := range branch.Products {
		products = append(products, *toProductResponse(&branch.Products[i]))
	}

	return &BranchResponse{
		ID:          branch.ID,
		FranchiseID: branch.FranchiseID,
		Name:        branch.Name,
		Products:    products,
		CreatedAt:   branch.CreatedAt.UTC(),
		UpdatedAt:   branch.UpdatedAt.UTC(),
	}
}

func toBranchResponses(branches []models.Branch) []BranchResponse {
	responses := make([]BranchResponse, 0, len(branches))
	for i := range branches {
		responses = append(responses, *toBranchResponse(&branches[i]))
	}
	return responses
}
