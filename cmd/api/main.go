package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/jhoicas/belleza-api/docs"
	"github.com/jhoicas/belleza-api/internal/application/auth"
	"github.com/jhoicas/belleza-api/internal/application/review"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/belleza-api/internal/infrastructure/pdf"
	"github.com/jhoicas/belleza-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/belleza-api/internal/interfaces/http"
	"github.com/jhoicas/belleza-api/pkg/config"
	"github.com/jhoicas/belleza-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("esquema al día")
	}

	userRepo := postgres.NewUserRepository(pool)
	spaRepo := postgres.NewSpaRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	spaServiceRepo := postgres.NewSpaServiceRepository(pool)
	spaMaterialRepo := postgres.NewSpaMaterialRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
		Issuer: cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	spaUC := usecase.NewSpaUseCase(spaRepo, userRepo, spaServiceRepo, spaMaterialRepo, reviewRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, spaRepo, spaServiceRepo, txRunner)
	materialUC := usecase.NewMaterialUseCase(materialRepo, spaRepo, spaMaterialRepo, txRunner)
	reviewUC := review.NewUseCase(reviewRepo, spaRepo, txRunner)

	// PDF del reporte de promedios
	reportUC := usecase.NewReportUseCase(reportRepo, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.HTTP.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http").Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Belleza API",
	}))

	if cfg.HTTP.StaticDir != "" {
		app.Static("/static", cfg.HTTP.StaticDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		SpaUC:          spaUC,
		ServiceUC:      serviceUC,
		MaterialUC:     materialUC,
		ReviewUC:       reviewUC,
		ReportUC:       reportUC,
		LoginMaxPerMin: cfg.HTTP.LoginMaxPerMin,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
