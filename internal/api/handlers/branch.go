package handlers

import (
	"net/http"

	"franchise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BranchHandler handles HTTP requests for branches
type BranchHandler struct {
	service service.BranchServiceInterface
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(service service.BranchServiceInterface) *BranchHandler {
	return &BranchHandler{service: service}
}

// CreateBranch handles POST /api/v1/branches
// @Summary Create a new branch
// @Description Create a branch under an existing franchise
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body service.CreateBranchRequest true "Branch data"
// @Success 201 {object} service.BranchResponse "Successfully created branch"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Franchise not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req service.CreateBranchRequest
	if !bindJSON(c, &req) {
		return
	}

	branch, err := h.service.Create(&req)
	if err != nil {
		respondWithError(c, err, "Failed to create branch")
		return
	}

	c.JSON(http.StatusCreated, branch)
}

// ListBranches handles GET /api/v1/branches
// @Summary List branches
// @Tags branches
// @Produce json
// @Success 200 {array} service.BranchResponse "Successfully retrieved branches"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	branches, err := h.service.GetAll()
	if err != nil {
		respondWithError(c, err, "Failed to list branches")
		return
	}

	c.JSON(http.StatusOK, branches)
}

// ListBranchesByFranchise handles GET /api/v1/franchises/:id/branches
// @Summary List the branches of a franchise
// @Tags branches
// @Produce json
// @Param id path string true "Franchise ID (UUID)"
// @Success 200 {array} service.BranchResponse "Successfully retrieved branches"
// @Failure 400 {object} ErrorResponse "Invalid franchise ID"
// @Failure 404 {object} ErrorResponse "Franchise not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /franchises/{id}/branches [get]
func (h *BranchHandler) ListBranchesByFranchise(c *gin.Context) {
	franchiseID, ok := parseIDParam(c, "franchise")
	if !ok {
		return
	}

	branches, err := h.service.GetByFranchise(franchiseID)
	if err != nil {
		respondWithError(c, err, "Failed to list branches")
		return
	}

	c.JSON(http.StatusOK, branches)
}

// GetBranch handles GET /api/v1/branches/:id
// @Summary Get branch by ID
// @Tags branches
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Success 200 {object} service.BranchResponse "Successfully retrieved branch"
// @Failure 400 {object} ErrorResponse "Invalid branch ID"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	id, ok := parseIDParam(c, "branch")
	if !ok {
		return
	}

	branch, err := h.service.GetByID(id)
	if err != nil {
		respondWithError(c, err, "Failed to get branch")
		return
	}

	c.JSON(http.StatusOK, branch)
}

// RenameBranch handles PUT /api/v1/branches/:id/name
// @Summary Rename a branch
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Param name body service.UpdateNameRequest true "New name"
// @Success 200 {object} service.BranchResponse "Successfully renamed branch"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /branches/{id}/name [put]
func (h *BranchHandler) RenameBranch(c *gin.Context) {
	id, ok := parseIDParam(c, "branch")
	if !ok {
		return
	}
	var req service.UpdateNameRequest
	if !bindJSON(c, &req) {
		return
	}

	branch, err := h.service.Rename(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to rename branch")
		return
	}

	c.JSON(http.StatusOK, branch)
}

// DeleteBranch handles DELETE /api/v1/branches/:id
// @Summary Delete a branch
// @Description Delete a branch together with all of its products
// @Tags branches
// @Param id path string true "Branch ID (UUID)"
// @Success 204 "Branch deleted"
// @Failure 400 {object} ErrorResponse "Invalid branch ID"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	id, ok := parseIDParam(c, "branch")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondWithError(c, err, "Failed to delete branch")
		return
	}

	c.Status(http.StatusNoContent)
}
