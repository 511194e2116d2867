package repository

import (
	"franchise-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ExistsByID reports whether a product with the given ID exists
func (r *ProductRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAll retrieves all products
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order(creationOrder).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByBranchID retrieves the products of a branch in creation order
func (r *ProductRepository) GetByBranchID(branchID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("branch_id = ?", branchID).Order(creationOrder).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByBranchIDOrderByStockDesc retrieves the products of a branch, highest stock first.
// Equal stock is ordered by ascending id.
func (r *ProductRepository) GetByBranchIDOrderByStockDesc(branchID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("branch_id = ?", branchID).Order("stock DESC, id ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CountByBranchIDs counts the products still referencing any of the given branches
func (r *ProductRepository) CountByBranchIDs(branchIDs []uuid.UUID) (int64, error) {
	if len(branchIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Product{}).Where("branch_id IN ?", branchIDs).Count(&count).Error
	return count, err
}

// UpdateFields updates the given columns of a product.
// Timestamps are taken from the map as is.
func (r *ProductRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).UpdateColumns(updates).Error
}

// Delete deletes a product and returns the number of rows removed
func (r *ProductRepository) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Product{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// DeleteByBranchIDs deletes every product of the given branches
func (r *ProductRepository) DeleteByBranchIDs(branchIDs []uuid.UUID) (int64, error) {
	if len(branchIDs) == 0 {
		return 0, nil
	}
	result := r.db.Where("branch_id IN ?", branchIDs).Delete(&models.Product{})
	return result.RowsAffected, result.Error
}
