package handlers

import (
	"errors"
	"net/http"

	apperrors "franchise-backend/internal/errors"
	"franchise-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}

// parseIDParam reads the :id path parameter. On failure it writes a 400 and returns false.
func parseIDParam(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body into req. On failure it writes a 400 and returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return false
	}
	return true
}

// respondWithError maps a service error to its HTTP status.
// Anything that is neither a validation nor a lookup failure is a 500.
func respondWithError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: err.Error(),
			Field:   validationErr.Field,
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback, Details: err.Error()})
	}
}
