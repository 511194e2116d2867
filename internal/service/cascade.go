package service

import (
	"fmt"

	"franchise-backend/internal/database/models"
	apperrors "franchise-backend/internal/errors"
	"franchise-backend/internal/metrics"
	"franchise-backend/internal/repository"

	"github.com/google/uuid"
)

// cascadeResult counts the descendants removed together with the root entity
type cascadeResult struct {
	Branches int64
	Products int64
}

// deleteFranchiseTree removes a franchise, its branches and their products.
// Must run inside a read-write unit of work: on any error the caller's
// transaction rolls back and nothing is removed.
func deleteFranchiseTree(repos *repository.Repositories, id uuid.UUID) (*cascadeResult, error) {
	exists, err := repos.Franchises.ExistsByID(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, id.String())
	}

	branches, err := repos.Branches.GetByFranchiseID(id)
	if err != nil {
		return nil, err
	}
	branchIDs := branchIDsOf(branches)

	result := &cascadeResult{}
	if result.Products, err = repos.Products.DeleteByBranchIDs(branchIDs); err != nil {
		return nil, err
	}
	if result.Branches, err = repos.Branches.DeleteByFranchiseID(id); err != nil {
		return nil, err
	}

	deleted, err := repos.Franchises.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, id.String())
	}

	// nothing may reference the franchise or its branches once it is gone
	remainingBranches, err := repos.Branches.CountByFranchiseID(id)
	if err != nil {
		return nil, err
	}
	remainingProducts, err := repos.Products.CountByBranchIDs(branchIDs)
	if err != nil {
		return nil, err
	}
	if remainingBranches > 0 || remainingProducts > 0 {
		return nil, apperrors.NewIntegrityError(apperrors.EntityFranchise, id.String(),
			fmt.Sprintf("%d branches and %d products still reference the deleted franchise", remainingBranches, remainingProducts))
	}

	return result, nil
}

// deleteBranchTree removes a branch and its products. Same transactional
// contract as deleteFranchiseTree.
func deleteBranchTree(repos *repository.Repositories, id uuid.UUID) (*cascadeResult, error) {
	exists, err := repos.Branches.ExistsByID(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(apperrors.EntityBranch, id.String())
	}

	ids := []uuid.UUID{id}
	result := &cascadeResult{}
	if result.Products, err = repos.Products.DeleteByBranchIDs(ids); err != nil {
		return nil, err
	}

	deleted, err := repos.Branches.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, apperrors.NewNotFoundError(apperrors.EntityBranch, id.String())
	}

	remainingProducts, err := repos.Products.CountByBranchIDs(ids)
	if err != nil {
		return nil, err
	}
	if remainingProducts > 0 {
		return nil, apperrors.NewIntegrityError(apperrors.EntityBranch, id.String(),
			fmt.Sprintf("%d products still reference the deleted branch", remainingProducts))
	}

	return result, nil
}

func (r *cascadeResult) record(root string) {
	metrics.CascadeDeletedRecords.WithLabelValues(root, root).Inc()
	if r.Branches > 0 {
		metrics.CascadeDeletedRecords.WithLabelValues(root, apperrors.EntityBranch).Add(float64(r.Branches))
	}
	if r.Products > 0 {
		metrics.CascadeDeletedRecords.WithLabelValues(root, apperrors.EntityProduct).Add(float64(r.Products))
	}
}

func branchIDsOf(branches []models.Branch) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(branches))
	for i := range branches {
		ids = append(ids, branches[i].ID)
	}
	return ids
}
