package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"registro-api/internal/app/models/dto"
)

// Context keys set by the validation pre-conditions
const (
	IDKey   = "id"
	BodyKey = "body"
)

// ValidateID checks that the :id path parameter is a positive integer and
// stores it in the context.
func ValidateID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationResponse([]dto.FieldError{
				{Field: "id", Message: "debe ser un entero positivo"},
			}))
			return
		}

		c.Set(IDKey, id)
		c.Next()
	}
}

// ValidateBody binds the JSON body into a fresh request struct built by
// newBody and runs its declarative field rules. Every failing field is
// collected into one response; the handler only runs on a clean bind.
func ValidateBody(newBody func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := newBody()
		if err := c.ShouldBindJSON(body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationResponse(collectFieldErrors(err)))
			return
		}

		c.Set(BodyKey, body)
		c.Next()
	}
}

// collectFieldErrors flattens a binding error into (field, message) pairs.
// Rule failures come back with every failing field; decode errors carry at
// most one offending field.
func collectFieldErrors(err error) []dto.FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		errores := make([]dto.FieldError, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			errores = append(errores, dto.FieldError{
				Field:   fieldErr.Field(),
				Message: formatFieldError(fieldErr),
			})
		}
		return errores
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []dto.FieldError{{Field: typeErr.Field, Message: "tipo de dato inválido"}}
	}

	return []dto.FieldError{{Field: "body", Message: "JSON inválido"}}
}

// formatFieldError renders one failed rule as a user-facing message
func formatFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email válido"
	case "password":
		return "mínimo 8 caracteres, al menos una minúscula y un número"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return "debe tener al menos " + fieldErr.Param() + " caracteres"
		}
		return "debe ser al menos " + fieldErr.Param()
	case "max":
		if fieldErr.Kind() == reflect.String {
			return "debe tener como máximo " + fieldErr.Param() + " caracteres"
		}
		return "debe ser como máximo " + fieldErr.Param()
	case "gte":
		return "debe ser al menos " + fieldErr.Param()
	case "lte":
		return "debe ser como máximo " + fieldErr.Param()
	default:
		return "no es válido"
	}
}
