package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/app/services"
	"registro-api/internal/middleware"
)

// MateriaController handles subject endpoints
type MateriaController struct {
	materiaService *services.MateriaService
}

// NewMateriaController creates a new MateriaController
func NewMateriaController(materiaService *services.MateriaService) *MateriaController {
	return &MateriaController{
		materiaService: materiaService,
	}
}

// Create registers a new subject
// @Summary Create a subject
// @Tags materias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MateriaRequest true "Subject data"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Duplicate (nombre, año) or validation failure"
// @Failure 401 {object} dto.Response
// @Router /materias [post]
func (c *MateriaController) Create(ctx *gin.Context) {
	req := ctx.MustGet(middleware.BodyKey).(*dto.MateriaRequest)

	materia, err := c.materiaService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(materia))
}

// List returns every subject
// @Summary List subjects
// @Tags materias
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MateriaListResponse
// @Failure 401 {object} dto.Response
// @Router /materias [get]
func (c *MateriaController) List(ctx *gin.Context) {
	materias, err := c.materiaService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MateriaListResponse{Success: true, Materias: materias})
}

// Get returns one subject
// @Summary Get a subject
// @Tags materias
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.MateriaResponse
// @Failure 404 {object} dto.Response
// @Router /materias/{id} [get]
func (c *MateriaController) Get(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)

	materia, err := c.materiaService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MateriaResponse{Success: true, Materia: *materia})
}

// Update replaces a subject's full field set
// @Summary Update a subject
// @Tags materias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param request body dto.MateriaRequest true "Subject data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "(nombre, año) in use by another subject"
// @Failure 404 {object} dto.Response
// @Router /materias/{id} [put]
func (c *MateriaController) Update(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)
	req := ctx.MustGet(middleware.BodyKey).(*dto.MateriaRequest)

	materia, err := c.materiaService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(materia))
}

// Delete removes a subject and, through the schema cascade, its grade rows
// @Summary Delete a subject
// @Tags materias
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /materias/{id} [delete]
func (c *MateriaController) Delete(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)

	if err := c.materiaService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Materia eliminada"))
}
