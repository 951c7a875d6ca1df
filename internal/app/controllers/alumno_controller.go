package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registro-api/internal/app/models/dto"
	"registro-api/internal/app/services"
	"registro-api/internal/middleware"
)

// AlumnoController handles student endpoints
type AlumnoController struct {
	alumnoService *services.AlumnoService
}

// NewAlumnoController creates a new AlumnoController
func NewAlumnoController(alumnoService *services.AlumnoService) *AlumnoController {
	return &AlumnoController{
		alumnoService: alumnoService,
	}
}

// Create registers a new student
// @Summary Create a student
// @Tags alumnos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AlumnoRequest true "Student data"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Duplicate DNI or validation failure"
// @Failure 401 {object} dto.Response
// @Router /alumnos [post]
func (c *AlumnoController) Create(ctx *gin.Context) {
	req := ctx.MustGet(middleware.BodyKey).(*dto.AlumnoRequest)

	alumno, err := c.alumnoService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(alumno))
}

// List returns every student
// @Summary List students
// @Tags alumnos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AlumnoListResponse
// @Failure 401 {object} dto.Response
// @Router /alumnos [get]
func (c *AlumnoController) List(ctx *gin.Context) {
	alumnos, err := c.alumnoService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumnoListResponse{Success: true, Alumnos: alumnos})
}

// Get returns one student
// @Summary Get a student
// @Tags alumnos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.AlumnoResponse
// @Failure 404 {object} dto.Response
// @Router /alumnos/{id} [get]
func (c *AlumnoController) Get(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)

	alumno, err := c.alumnoService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumnoResponse{Success: true, Alumno: *alumno})
}

// Update replaces a student's full field set
// @Summary Update a student
// @Tags alumnos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.AlumnoRequest true "Student data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "DNI in use by another student"
// @Failure 404 {object} dto.Response
// @Router /alumnos/{id} [put]
func (c *AlumnoController) Update(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)
	req := ctx.MustGet(middleware.BodyKey).(*dto.AlumnoRequest)

	alumno, err := c.alumnoService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(alumno))
}

// Delete removes a student and, through the schema cascade, its grade rows
// @Summary Delete a student
// @Tags alumnos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /alumnos/{id} [delete]
func (c *AlumnoController) Delete(ctx *gin.Context) {
	id := ctx.GetInt64(middleware.IDKey)

	if err := c.alumnoService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Alumno eliminado"))
}
