package routes

import (
	"github.com/gin-gonic/gin"

	"registro-api/internal/app/controllers"
	"registro-api/internal/app/models/dto"
	"registro-api/internal/middleware"
)

// SetupRouter wires every route to its handler behind an ordered chain of
// pre-conditions (authentication, path-parameter validation, body
// validation). A handler only runs when the whole chain passes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	usuarioController *controllers.UsuarioController,
	alumnoController *controllers.AlumnoController,
	materiaController *controllers.MateriaController,
	notaController *controllers.NotaController,
	authMiddleware *middleware.AuthMiddleware,
) {
	requireAuth := authMiddleware.RequireAuth()

	// Registration is the only public write; login the only other public route
	auth := router.Group("/auth")
	{
		auth.POST("/login",
			middleware.ValidateBody(func() interface{} { return &dto.LoginRequest{} }),
			authController.Login)
	}

	usuarios := router.Group("/usuarios")
	{
		usuarios.POST("",
			middleware.ValidateBody(func() interface{} { return &dto.RegisterRequest{} }),
			usuarioController.Register)
		usuarios.GET("", requireAuth, usuarioController.List)
		usuarios.DELETE("/:id", requireAuth, middleware.ValidateID(), usuarioController.Delete)
	}

	alumnos := router.Group("/alumnos", requireAuth)
	{
		alumnos.POST("",
			middleware.ValidateBody(func() interface{} { return &dto.AlumnoRequest{} }),
			alumnoController.Create)
		alumnos.GET("", alumnoController.List)
		alumnos.GET("/:id", middleware.ValidateID(), alumnoController.Get)
		alumnos.PUT("/:id",
			middleware.ValidateID(),
			middleware.ValidateBody(func() interface{} { return &dto.AlumnoRequest{} }),
			alumnoController.Update)
		alumnos.DELETE("/:id", middleware.ValidateID(), alumnoController.Delete)
	}

	materias := router.Group("/materias", requireAuth)
	{
		materias.POST("",
			middleware.ValidateBody(func() interface{} { return &dto.MateriaRequest{} }),
			materiaController.Create)
		materias.GET("", materiaController.List)
		materias.GET("/:id", middleware.ValidateID(), materiaController.Get)
		materias.PUT("/:id",
			middleware.ValidateID(),
			middleware.ValidateBody(func() interface{} { return &dto.MateriaRequest{} }),
			materiaController.Update)
		materias.DELETE("/:id", middleware.ValidateID(), materiaController.Delete)
	}

	notas := router.Group("/notas", requireAuth)
	{
		notas.POST("",
			middleware.ValidateBody(func() interface{} { return &dto.CrearNotaRequest{} }),
			notaController.Create)
		notas.GET("", notaController.List)
		notas.GET("/:id", middleware.ValidateID(), notaController.Get)
		notas.PUT("/:id",
			middleware.ValidateID(),
			middleware.ValidateBody(func() interface{} { return &dto.ActualizarNotaRequest{} }),
			notaController.Update)
		notas.DELETE("/:id", middleware.ValidateID(), notaController.Delete)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewMessageResponse("API en funcionamiento"))
	})
}
