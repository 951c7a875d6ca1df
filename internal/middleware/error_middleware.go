package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/pkg/apperrors"
	"registro-api/internal/pkg/logger"
)

// HandleAPIError converts a service error into the wire envelope. Anything
// outside the known taxonomy is logged server-side and reported as a generic
// internal error; internal detail never reaches the caller.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Usuario o contraseña inválidos")))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Registro duplicado")))

	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Solicitud inválida")))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundResponse(apperrors.Message(err, "Recurso no encontrado")))

	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("No autenticado"))

	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Error interno del servidor"))
	}
}
