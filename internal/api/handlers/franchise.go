package handlers

import (
	"net/http"

	"franchise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FranchiseHandler handles HTTP requests for franchises
type FranchiseHandler struct {
	service service.FranchiseServiceInterface
}

// NewFranchiseHandler creates a new franchise handler
func NewFranchiseHandler(service service.FranchiseServiceInterface) *FranchiseHandler {
	return &FranchiseHandler{service: service}
}

// CreateFranchise handles POST /api/v1/franchises
// @Summary Create a new franchise
// @Description Create a franchise without branches
// @Tags franchises
// @Accept json
// @Produce json
// @Param franchise body service.CreateFranchiseRequest true "Franchise data"
// @Success 201 {object} service.FranchiseResponse "Successfully created franchise"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /franchises [post]
func (h *FranchiseHandler) CreateFranchise(c *gin.Context) {
	var req service.CreateFranchiseRequest
	if !bindJSON(c, &req) {
		return
	}

	franchise, err := h.service.Create(&req)
	if err != nil {
		respondWithError(c, err, "Failed to create franchise")
		return
	}

	c.JSON(http.StatusCreated, franchise)
}

// ListFranchises handles GET /api/v1/franchises
// @Summary List franchises
// @Description List all franchises with their branches and products, oldest first
// @Tags franchises
// @Produce json
// @Success 200 {array} service.FranchiseResponse "Successfully retrieved franchises"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /franchises [get]
func (h *FranchiseHandler) ListFranchises(c *gin.Context) {
	franchises, err := h.service.GetAll()
	if err != nil {
		respondWithError(c, err, "Failed to list franchises")
		return
	}

	c.JSON(http.StatusOK, franchises)
}

// GetFranchise handles GET /api/v1/franchises/:id
// @Summary Get franchise by ID
// @Description Get a franchise with its branches and their products
// @Tags franchises
// @Produce json
// @Param id path string true "Franchise ID (UUID)"
// @Success 200 {object} service.FranchiseResponse "Successfully retrieved franchise"
// @Failure 400 {object} ErrorResponse "Invalid franchise ID"
// @Failure 404 {object} ErrorResponse "Franchise not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /franchises/{id} [get]
func (h *FranchiseHandler) GetFranchise(c *gin.Context) {
	id, ok := parseIDParam(c, "franchise")
	if !ok {
		return
	}

	franchise, err := h.service.GetByID(id)
	if err != nil {
		respondWithError(c, err, "Failed to get franchise")
		return
	}

	c.JSON(http.StatusOK, franchise)
}

// RenameFranchise handles PUT /api/v1/franchises/:id
// @Summary Rename a franchise
// @Tags franchises
// @Accept json
// @Produce json
// @Param id path string true "Franchise ID (UUID)"
// @Param name body service.UpdateNameRequest true "New name"
// @Success 200 {object} service.FranchiseResponse "Successfully renamed franchise"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Franchise not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /franchises/{id} [put]
func (h *FranchiseHandler) RenameFranchise(c *gin.Context) {
	id, ok := parseIDParam(c, "franchise")
	if !ok {
		return
	}
	var req service.UpdateNameRequest
	if !bindJSON(c, &req) {
		return
	}

	franchise, err := h.service.Rename(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to rename franchise")
		return
	}

	c.JSON(http.StatusOK, franchise)
}

// DeleteFranchise handles DELETE /api/v1/franchises/:id
// @Summary Delete a franchise
// @Description Delete a franchise together with all of its branches and products
// @Tags franchises
// @Param id path string true "Franchise ID (UUID)"
// @Success 204 "Franchise deleted"
// @Failure 400 {object} ErrorResponse "Invalid franchise ID"
// @Failure 404 {object} ErrorResponse "Franchise not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /franchises/{id} [delete]
func (h *FranchiseHandler) DeleteFranchise(c *gin.Context) {
	id, ok := parseIDParam(c, "franchise")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondWithError(c, err, "Failed to delete franchise")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTopStockProducts handles GET /api/v1/franchises/:id/top-stock-products
// @Summary Top stock product per branch
// @Description For each branch of the franchise that has products, the product with the highest stock. Ties go to the lowest product id.
// @Tags franchises
// @Produce json
// @Param id path string true "Franchise ID (UUID)"
// @Success 200 {array} service.TopStockProductResponse "Report in branch creation order"
// @Failure 400 {object} ErrorResponse "Invalid franchise ID"
// @Failure 404 {object} ErrorResponse "Franchise not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /franchises/{id}/top-stock-products [get]
func (h *FranchiseHandler) GetTopStockProducts(c *gin.Context) {
	id, ok := parseIDParam(c, "franchise")
	if !ok {
		return
	}

	report, err := h.service.GetTopStockProducts(id)
	if err != nil {
		respondWithError(c, err, "Failed to get top stock products")
		return
	}

	c.JSON(http.StatusOK, report)
}
