// seed da de alta usuarios de prueba (un admin y un analista) para entornos
// de desarrollo. Es idempotente: si el username ya existe, actualiza rol,
// password y estado en lugar de fallar.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/application/usecase"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/infrastructure/postgres"
	"github.com/segupro/polizas-api/pkg/config"
	"github.com/segupro/polizas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	uc := usecase.NewUserUseCase(repo)

	seeds := []dto.CreateUserRequest{
		{
			Username:  "admin",
			Password:  "admin12345",
			Email:     "admin@segupro.local",
			Rol:       entity.RolAdmin,
			FirstName: "Admin",
			LastName:  "Sistema",
		},
		{
			Username:  "analista",
			Password:  "analista12345",
			Email:     "analista@segupro.local",
			Rol:       entity.RolAnalista,
			FirstName: "Ana",
			LastName:  "Lista",
		},
	}

	for _, in := range seeds {
		existing, err := repo.GetByUsername(in.Username)
		if err != nil {
			log.Fatal().Err(err).Str("username", in.Username).Msg("consultar usuario")
		}
		if existing == nil {
			if _, err := uc.Create(in); err != nil {
				log.Fatal().Err(err).Str("username", in.Username).Msg("crear usuario")
			}
			log.Info().Str("username", in.Username).Str("rol", in.Rol).Msg("usuario creado")
			continue
		}
		activo := true
		if _, err := uc.Update(existing.ID, dto.UpdateUserRequest{
			Password: &in.Password,
			Rol:      &in.Rol,
			IsActive: &activo,
		}); err != nil {
			log.Fatal().Err(err).Str("username", in.Username).Msg("actualizar usuario")
		}
		log.Info().Str("username", in.Username).Str("rol", in.Rol).Msg("usuario actualizado")
	}
}
