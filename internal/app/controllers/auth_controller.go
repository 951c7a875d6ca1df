package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/app/services"
	"registro-api/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates a user and issues a bearer token
// @Summary Log in
// @Description Verifies email and password and returns a signed bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Response "Invalid credentials or validation failure"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	req := ctx.MustGet(middleware.BodyKey).(*dto.LoginRequest)

	token, username, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success:  true,
		Token:    token,
		Username: username,
	})
}
