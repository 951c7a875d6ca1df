package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/pkg/auth"
)

// UserIDKey is the context key holding the authenticated user id
const UserIDKey = "userID"

// AuthMiddleware guards protected routes. Verification is stateless: any
// holder of a validly signed, unexpired token is the embedded user.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// RequireAuth validates the bearer token and stores the user id in the
// request context. Missing, malformed, expired and forged tokens all abort
// with 401 before the handler runs.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No autenticado"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "No autenticado"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
