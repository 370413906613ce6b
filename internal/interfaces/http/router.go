package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/segupro/polizas-api/internal/application/auth"
	"github.com/segupro/polizas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CatalogoUC    *usecase.CatalogoUseCase
	ContratanteUC *usecase.ParteUseCase
	AseguradoUC   *usecase.ParteUseCase
	PolizaUC      *usecase.PolizaUseCase
	ReporteUC     *usecase.ReporteUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/verify", authHandler.Verify)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token de tipo access)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios: perfil propio para cualquier rol, gestión solo admin
	userHandler := NewUserHandler(deps.UserUC)
	usuarios := protected.Group("/usuarios")
	usuarios.Get("/me", userHandler.Me)
	usuarios.Patch("/me", userHandler.UpdateMe)
	admin := usuarios.Group("/", RequireAdmin())
	admin.Post("/", userHandler.Create)
	admin.Get("/", userHandler.List)
	admin.Get("/:id", userHandler.GetByID)
	admin.Patch("/:id", userHandler.Update)
	admin.Delete("/:id", userHandler.Delete)

	// Catálogos
	registrarCatalogo(protected, "/aseguradoras", NewAseguradoraHandler(deps.CatalogoUC))
	registrarCatalogo(protected, "/ramos", NewRamoHandler(deps.CatalogoUC))
	registrarCatalogo(protected, "/formas-pago", NewFormaPagoHandler(deps.CatalogoUC))

	// Partes
	registrarParte(protected, "/contratantes", NewParteHandler(deps.ContratanteUC))
	registrarParte(protected, "/asegurados", NewParteHandler(deps.AseguradoUC))

	// Pólizas: las rutas estáticas van antes que /:id
	polizaHandler := NewPolizaHandler(deps.PolizaUC)
	polizas := protected.Group("/polizas")
	polizas.Get("/proximas-renovacion", polizaHandler.ProximasRenovacion)
	polizas.Get("/opciones", polizaHandler.Opciones)
	polizas.Post("/", polizaHandler.Create)
	polizas.Get("/", polizaHandler.List)
	polizas.Get("/:id", polizaHandler.GetByID)
	polizas.Put("/:id", polizaHandler.Update)
	polizas.Patch("/:id", polizaHandler.Update)
	polizas.Delete("/:id", polizaHandler.Delete)

	// Reportes
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes := protected.Group("/reportes")
	reportes.Get("/polizas", reporteHandler.Filtrar)
	reportes.Get("/polizas/export", reporteHandler.ExportPolizas)
	reportes.Get("/renovaciones/export", reporteHandler.ExportRenovaciones)
	reportes.Get("/historial", reporteHandler.Historial)
}

func registrarCatalogo(router fiber.Router, prefix string, h *CatalogoHandler) {
	g := router.Group(prefix)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func registrarParte(router fiber.Router, prefix string, h *ParteHandler) {
	g := router.Group(prefix)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
