// migrate aplica (o revierte) el esquema de PostgreSQL y siembra el usuario por defecto.
//
// Uso: go run ./cmd/migrate [up|down]
package main

import (
	"context"
	"os"

	"github.com/jhoicas/inventory-ledger/internal/application/auth"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-ledger/pkg/config"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
	case "down":
		if err := postgres.MigrateDown(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("revertir migraciones")
		}
		log.Info().Msg("migraciones revertidas")
		return
	default:
		log.Fatal().Str("direction", direction).Msg("uso: migrate [up|down]")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer,
	})
	seeded, err := authUC.SeedDefault(ctx, cfg.Auth.DefaultUser, cfg.Auth.DefaultPassword)
	if err != nil {
		log.Error().Err(err).Msg("sembrar usuario por defecto")
		return
	}
	log.Info().Bool("seeded", seeded).Str("username", cfg.Auth.DefaultUser).Msg("usuario por defecto")
}
