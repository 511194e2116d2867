package repository

import (
	"franchise-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchRepository handles database operations for branches
type BranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// Create creates a new branch
func (r *BranchRepository) Create(branch *models.Branch) error {
	return r.db.Omit("Products").Create(branch).Error
}

// GetByID retrieves a branch by ID
func (r *BranchRepository) GetByID(id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// ExistsByID reports whether a branch with the given ID exists
func (r *BranchRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Branch{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAll retrieves all branches
func (r *BranchRepository) GetAll() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Order(creationOrder).Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

// GetByFranchiseID retrieves the branches of a franchise in creation order
func (r *BranchRepository) GetByFranchiseID(franchiseID uuid.UUID) ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Where("franchise_id = ?", franchiseID).Order(creationOrder).Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

// GetWithProducts retrieves a branch with its products
func (r *BranchRepository) GetWithProducts(id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.Preload("Products", orderedByCreation).First(&branch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetAllWithProducts retrieves every branch with its products
func (r *BranchRepository) GetAllWithProducts() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Preload("Products", orderedByCreation).Order(creationOrder).Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

// GetByFranchiseIDWithProducts retrieves the branches of a franchise with their products
func (r *BranchRepository) GetByFranchiseIDWithProducts(franchiseID uuid.UUID) ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Preload("Products", orderedByCreation).
		Where("franchise_id = ?", franchiseID).
		Order(creationOrder).
		Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

// CountByFranchiseID counts the branches still referencing a franchise
func (r *BranchRepository) CountByFranchiseID(franchiseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Branch{}).Where("franchise_id = ?", franchiseID).Count(&count).Error
	return count, err
}

// UpdateFields updates the given columns of a branch.
// Timestamps are taken from the map as is.
func (r *BranchRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Branch{}).Where("id = ?", id).UpdateColumns(updates).Error
}

// Delete deletes a branch row and returns the number of rows removed
func (r *BranchRepository) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Branch{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// DeleteByFranchiseID deletes every branch of a franchise
func (r *BranchRepository) DeleteByFranchiseID(franchiseID uuid.UUID) (int64, error) {
	result := r.db.Where("franchise_id = ?", franchiseID).Delete(&models.Branch{})
	return result.RowsAffected, result.Error
}
