package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jhoicas/belleza-api/internal/application/auth"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/review"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	SpaUC          *usecase.SpaUseCase
	ServiceUC      *usecase.ServiceUseCase
	MaterialUC     *usecase.MaterialUseCase
	ReviewUC       *review.UseCase
	ReportUC       *usecase.ReportUseCase
	LoginMaxPerMin int // 0 desactiva el límite de intentos de login
}

// Router registra las rutas de la API. El middleware se aplica por ruta para que las
// rutas públicas de un mismo prefijo (p. ej. /spas/buscar) no exijan token.
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.AuthUC)
	authOptional := OptionalAuth(deps.AuthUC)
	adminOnly := RequireRole(entity.RoleAdminPrincipal)
	admins := RequireRole(entity.RoleAdminPrincipal, entity.RoleAdminSpa)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "ok"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", loginLimiter(deps.LoginMaxPerMin), authHandler.Login)
	authGroup.Post("/setup_admin", authHandler.SetupAdmin)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	users := app.Group("/usuarios", authRequired)
	users.Post("/crear_admin_spa", adminOnly, authHandler.CreateAdminSpa)
	users.Get("/me", userHandler.Me)
	users.Get("/", adminOnly, userHandler.List)
	users.Patch("/desactivar/:id", adminOnly, userHandler.Deactivate)
	users.Patch("/activar/:id", adminOnly, userHandler.Activate)
	users.Get("/:id", userHandler.GetByID)

	// Spas
	spaHandler := NewSpaHandler(deps.SpaUC)
	spas := app.Group("/spas")
	spas.Get("/buscar", spaHandler.Search)
	spas.Post("/", authRequired, adminOnly, spaHandler.Create)
	spas.Get("/", authRequired, spaHandler.List)
	spas.Get("/:id", authOptional, spaHandler.GetByID)
	spas.Patch("/:id/restore", authRequired, adminOnly, spaHandler.Restore)
	spas.Patch("/:id", authRequired, admins, spaHandler.Update)
	spas.Delete("/:id", authRequired, adminOnly, spaHandler.Delete)

	// Servicios
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services := app.Group("/servicios")
	services.Get("/por_spa/:spa_id", serviceHandler.ListBySpa)
	services.Post("/asociar/:spa_id/:servicio_id", authRequired, admins, serviceHandler.Associate)
	services.Delete("/asociar/:spa_id/:servicio_id", authRequired, admins, serviceHandler.Disassociate)
	services.Post("/", authRequired, adminOnly, serviceHandler.Create)
	services.Get("/", authRequired, serviceHandler.List)
	services.Get("/:id", authRequired, serviceHandler.GetByID)
	services.Patch("/:id", authRequired, adminOnly, serviceHandler.Update)
	services.Delete("/:id", authRequired, adminOnly, serviceHandler.Delete)

	// Materiales
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials := app.Group("/materiales", authRequired)
	materials.Get("/por_spa/:spa_id", materialHandler.ListBySpa)
	materials.Post("/asociar/:spa_id/:material_id", admins, materialHandler.Associate)
	materials.Delete("/asociar/:spa_id/:material_id", admins, materialHandler.Disassociate)
	materials.Post("/", admins, materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Patch("/:id", admins, materialHandler.Update)
	materials.Delete("/:id", admins, materialHandler.Delete)

	// Reseñas
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews := app.Group("/resenas", authRequired)
	reviews.Post("/", RequireRole(entity.RoleUsuario), reviewHandler.Create)
	reviews.Get("/por_spa/:spa_id", reviewHandler.ListBySpa)
	reviews.Get("/mias", reviewHandler.ListMine)
	reviews.Get("/todas_admin", adminOnly, reviewHandler.ListAll)
	reviews.Get("/:id", reviewHandler.GetByID)
	reviews.Patch("/:id", reviewHandler.Update)
	reviews.Delete("/:id", reviewHandler.Delete)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := app.Group("/reportes", authRequired, adminOnly)
	reports.Get("/resenas_por_spa", reportHandler.ReviewCountBySpa)
	reports.Get("/promedio_por_spa/pdf", reportHandler.AverageBySpaPDF)
	reports.Get("/promedio_por_spa", reportHandler.AverageBySpa)
}

// loginLimiter limita intentos de login por IP y minuto.
func loginLimiter(max int) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "TOO_MANY_REQUESTS",
				Message: "demasiados intentos de login, espere un minuto",
			})
		},
	})
}
