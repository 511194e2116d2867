package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "franchise-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateNameRequest represents the request to rename a franchise, branch or product
type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,notblank,min=3,max=100"`
}

// NewValidator creates a validator that reports JSON field names and knows the
// notblank rule used by all name fields.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// validateRequest validates req and converts the first failing rule into a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), validationMessage(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func validationMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// translateError passes domain errors through, turns a missing record into a
// NotFoundError for entity/id and wraps everything else.
func translateError(err error, entity string, id uuid.UUID, action string) error {
	switch {
	case apperrors.IsNotFound(err), apperrors.IsValidation(err), apperrors.IsIntegrity(err):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFoundError(entity, id.String())
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
