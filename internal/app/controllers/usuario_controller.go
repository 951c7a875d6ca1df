package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/app/services"
	"registro-api/internal/middleware"
)

// UsuarioController handles account endpoints
type UsuarioController struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioController creates a new UsuarioController
func NewUsuarioController(usuarioService *services.UsuarioService) *UsuarioController {
	return &UsuarioController{
		usuarioService: usuarioService,
	}
}

// Register creates a new account
// @Summary Register an account
// @Description Creates a user account; email and username must be unique
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Duplicate email/username or validation failure"
// @Router /usuarios [post]
func (c *UsuarioController) Register(ctx *gin.Context) {
	req := ctx.MustGet(middleware.BodyKey).(*dto.RegisterRequest)

	usuario, err := c.usuarioService.Register(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.NewUsuarioSummary(usuario)))
}

// List returns every account
// @Summary List accounts
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UsuarioListResponse
// @Failure 401 {object} dto.Response
// @Router /usuarios [get]
func (c *UsuarioController) List(ctx *gin.Context) {
	usuarios, err := c.usuarioService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UsuarioListResponse{Success: true, Usuarios: usuarios})
}

// Delete removes an account
// @Summary Delete an account
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /usuarios/{id} [delete]
func (c *UsuarioController) Delete(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)

	if err := c.usuarioService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Usuario eliminado"))
}
