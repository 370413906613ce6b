package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/segupro/polizas-api/internal/application/auth"
	"github.com/segupro/polizas-api/internal/application/usecase"
	infraexcel "github.com/segupro/polizas-api/internal/infrastructure/excel"
	infrapdf "github.com/segupro/polizas-api/internal/infrastructure/pdf"
	"github.com/segupro/polizas-api/internal/infrastructure/postgres"
	httpRouter "github.com/segupro/polizas-api/internal/interfaces/http"
	"github.com/segupro/polizas-api/pkg/config"
	"github.com/segupro/polizas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	aseguradoraRepo := postgres.NewAseguradoraRepository(pool)
	ramoRepo := postgres.NewRamoRepository(pool)
	formaPagoRepo := postgres.NewFormaPagoRepository(pool)
	contratanteRepo := postgres.NewContratanteRepository(pool)
	aseguradoRepo := postgres.NewAseguradoRepository(pool)
	polizaRepo := postgres.NewPolizaRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, tokenRepo, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpMinutes:      cfg.JWT.ExpMinutes,
		RefreshExpHours: cfg.JWT.RefreshExpHours,
		Issuer:          cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	catalogoUC := usecase.NewCatalogoUseCase(aseguradoraRepo, ramoRepo, formaPagoRepo)
	contratanteUC := usecase.NewParteUseCase(contratanteRepo)
	aseguradoUC := usecase.NewParteUseCase(aseguradoRepo)
	polizaUC := usecase.NewPolizaUseCase(
		txRunner, polizaRepo, aseguradoraRepo, ramoRepo, formaPagoRepo,
		contratanteRepo, aseguradoRepo,
	)
	reporteUC := usecase.NewReporteUseCase(
		polizaRepo, reporteRepo,
		infraexcel.NewExcelizeExporter(), infrapdf.NewMarotoExporter(),
	)

	// Purga periódica de la blacklist: las filas expiradas ya no validan por
	// su propio exp, solo ocupan espacio.
	go purgarTokens(tokenRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pólizas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CatalogoUC:    catalogoUC,
		ContratanteUC: contratanteUC,
		AseguradoUC:   aseguradoUC,
		PolizaUC:      polizaUC,
		ReporteUC:     reporteUC,
		JWTSecret:     cfg.JWT.Secret,
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

func purgarTokens(repo *postgres.TokenRepo, log *logger.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		n, err := repo.DeleteExpired()
		if err != nil {
			log.Error().Err(err).Msg("purga de tokens bloqueados")
			continue
		}
		if n > 0 {
			log.Info().Int64("purgados", n).Msg("tokens bloqueados expirados eliminados")
		}
	}
}
