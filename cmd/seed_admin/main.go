// seed_admin crea el primer admin_principal con las credenciales de configuración
// (ADMIN_NOMBRE, ADMIN_CORREO, ADMIN_CONTRASENA). Si ya existe uno no hace nada.
//
// Uso: go run ./cmd/seed_admin
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jhoicas/belleza-api/internal/application/auth"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/infrastructure/postgres"
	"github.com/jhoicas/belleza-api/pkg/config"
	"github.com/jhoicas/belleza-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed_admin")

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Error().Msg("ADMIN_CORREO y ADMIN_CONTRASENA son obligatorios")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrador"
	}
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
		Issuer: cfg.JWT.Issuer,
	})
	user, err := authUC.BootstrapAdmin(ctx, dto.RegisterRequest{
		Name:     name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	switch {
	case errors.Is(err, domain.ErrConflict):
		log.Info().Msg("ya existe un admin_principal, nada que hacer")
	case err != nil:
		log.Fatal().Err(err).Msg("crear admin_principal")
	default:
		log.Info().Str("id", user.ID).Str("correo", user.Email).Msg("admin_principal creado")
	}
}
