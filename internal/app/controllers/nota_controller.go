package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/app/services"
	"registro-api/internal/middleware"
)

// NotaController handles grade endpoints
type NotaController struct {
	notaService *services.NotaService
}

// NewNotaController creates a new NotaController
func NewNotaController(notaService *services.NotaService) *NotaController {
	return &NotaController{
		notaService: notaService,
	}
}

// Create registers grades for an (alumno, materia) pair
// @Summary Create a grade row
// @Tags notas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CrearNotaRequest true "Grade data"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Pair already has grades or validation failure"
// @Failure 404 {object} dto.Response "Student or subject missing"
// @Router /notas [post]
func (c *NotaController) Create(ctx *gin.Context) {
	req := ctx.MustGet(middleware.BodyKey).(*dto.CrearNotaRequest)

	nota, err := c.notaService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(nota))
}

// List returns every grade row with student and subject names
// @Summary List grade rows
// @Tags notas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.NotaListResponse
// @Failure 401 {object} dto.Response
// @Router /notas [get]
func (c *NotaController) List(ctx *gin.Context) {
	notas, err := c.notaService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NotaListResponse{Success: true, Notas: notas})
}

// Get returns one grade row
// @Summary Get a grade row
// @Tags notas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade row ID"
// @Success 200 {object} dto.NotaResponse
// @Failure 404 {object} dto.Response
// @Router /notas/{id} [get]
func (c *NotaController) Get(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)

	nota, err := c.notaService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NotaResponse{Success: true, Nota: *nota})
}

// Update replaces only the grade values of a row
// @Summary Update a grade row
// @Tags notas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade row ID"
// @Param request body dto.ActualizarNotaRequest true "Grade values"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /notas/{id} [put]
func (c *NotaController) Update(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)
	req := ctx.MustGet(middleware.BodyKey).(*dto.ActualizarNotaRequest)

	nota, err := c.notaService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(nota))
}

// Delete removes a grade row
// @Summary Delete a grade row
// @Tags notas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade row ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /notas/{id} [delete]
func (c *NotaController) Delete(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)

	if err := c.notaService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Registro de nota eliminado"))
}
