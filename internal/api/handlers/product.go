package handlers

import (
	"net/http"

	"franchise-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service service.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(service service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// CreateProduct handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a product in an existing branch
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.CreateProductRequest true "Product data"
// @Success 201 {object} service.ProductResponse "Successfully created product"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.service.Create(&req)
	if err != nil {
		respondWithError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts handles GET /api/v1/products
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} service.ProductResponse "Successfully retrieved products"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.GetAll()
	if err != nil {
		respondWithError(c, err, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// ListProductsByBranch handles GET /api/v1/branches/:id/products
// @Summary List the products of a branch
// @Tags products
// @Produce json
// @Param id path string true "Branch ID (UUID)"
// @Success 200 {array} service.ProductResponse "Successfully retrieved products"
// @Failure 400 {object} ErrorResponse "Invalid branch ID"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /branches/{id}/products [get]
func (h *ProductHandler) ListProductsByBranch(c *gin.Context) {
	branchID, ok := parseIDParam(c, "branch")
	if !ok {
		return
	}

	products, err := h.service.GetByBranch(branchID)
	if err != nil {
		respondWithError(c, err, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} service.ProductResponse "Successfully retrieved product"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "product")
	if !ok {
		return
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		respondWithError(c, err, "Failed to get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProductStock handles PUT /api/v1/products/:id/stock
// @Summary Set product stock
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param stock body service.UpdateStockRequest true "New stock"
// @Success 200 {object} service.ProductResponse "Successfully updated stock"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id}/stock [put]
func (h *ProductHandler) UpdateProductStock(c *gin.Context) {
	id, ok := parseIDParam(c, "product")
	if !ok {
		return
	}
	var req service.UpdateStockRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.service.UpdateStock(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to update product stock")
		return
	}

	c.JSON(http.StatusOK, product)
}

// RenameProduct handles PUT /api/v1/products/:id/name
// @Summary Rename a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param name body service.UpdateNameRequest true "New name"
// @Success 200 {object} service.ProductResponse "Successfully renamed product"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id}/name [put]
func (h *ProductHandler) RenameProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "product")
	if !ok {
		return
	}
	var req service.UpdateNameRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.service.Rename(id, &req)
	if err != nil {
		respondWithError(c, err, "Failed to rename product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
// @Summary Delete a product
// @Tags products
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Product deleted"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "product")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondWithError(c, err, "Failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}
