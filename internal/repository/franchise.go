package repository

import (
	"franchise-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FranchiseRepository handles database operations for franchises
type FranchiseRepository struct {
	db *gorm.DB
}

// NewFranchiseRepository creates a new franchise repository
func NewFranchiseRepository(db *gorm.DB) *FranchiseRepository {
	return &FranchiseRepository{db: db}
}

// Create creates a new franchise
func (r *FranchiseRepository) Create(franchise *models.Franchise) error {
	return r.db.Omit("Branches").Create(franchise).Error
}

// GetByID retrieves a franchise by ID
func (r *FranchiseRepository) GetByID(id uuid.UUID) (*models.Franchise, error) {
	var franchise models.Franchise
	err := r.db.First(&franchise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &franchise, nil
}

// ExistsByID reports whether a franchise with the given ID exists
func (r *FranchiseRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Franchise{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAll retrieves all franchises without their branches
func (r *FranchiseRepository) GetAll() ([]models.Franchise, error) {
	var franchises []models.Franchise
	err := r.db.Order(creationOrder).Find(&franchises).Error
	if err != nil {
		return nil, err
	}
	return franchises, nil
}

// GetWithTree retrieves a franchise with its branches and their products
func (r *FranchiseRepository) GetWithTree(id uuid.UUID) (*models.Franchise, error) {
	var franchise models.Franchise
	err := r.preloadTree(r.db).First(&franchise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &franchise, nil
}

// GetAllWithTree retrieves every franchise with its branches and their products
func (r *FranchiseRepository) GetAllWithTree() ([]models.Franchise, error) {
	var franchises []models.Franchise
	err := r.preloadTree(r.db).Order(creationOrder).Find(&franchises).Error
	if err != nil {
		return nil, err
	}
	return franchises, nil
}

// UpdateFields updates the given columns of a franchise.
// Timestamps are taken from the map as is.
func (r *FranchiseRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Franchise{}).Where("id = ?", id).UpdateColumns(updates).Error
}

// Delete deletes a franchise row and returns the number of rows removed
func (r *FranchiseRepository) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Franchise{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *FranchiseRepository) preloadTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Branches", orderedByCreation).
		Preload("Branches.Products", orderedByCreation)
}
