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
	_ "github.com/jhoicas/Recepcion-api/docs"
	"github.com/jhoicas/Recepcion-api/internal/application/receipt"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
	"github.com/jhoicas/Recepcion-api/internal/infrastructure/memory"
	"github.com/jhoicas/Recepcion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Recepcion-api/internal/interfaces/http"
	"github.com/jhoicas/Recepcion-api/pkg/config"
	"github.com/jhoicas/Recepcion-api/pkg/logger"
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
		Str("precision_source", cfg.Receipt.PrecisionSource).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()

	// Precisión por campo: tabla field_precisions o, sin base de datos, solo la de defecto.
	var precisionRepo repository.PrecisionRepository
	switch cfg.Receipt.PrecisionSource {
	case config.PrecisionSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		precisionRepo = postgres.NewPrecisionRepository(pool)
	default:
		precisionRepo = memory.NewPrecisionRepository(entity.FieldPrecision{
			DocType:   cfg.Receipt.DocType,
			FieldName: "qty",
			Precision: cfg.Receipt.DefaultPrecision,
			UpdatedAt: time.Now(),
		})
	}

	resolver := receipt.NewPrecisionResolver(precisionRepo, cfg.Receipt.DocType, cfg.Receipt.DefaultPrecision)
	reconcileUC := receipt.NewReconcileUseCase(resolver, log.Zerolog())
	precisionUC := receipt.NewPrecisionUseCase(precisionRepo, resolver)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Recepcion API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reconcile: reconcileUC,
		Precision: precisionUC,
		JWTSecret: cfg.JWT.Secret,
		RateLimit: cfg.HTTP.RateLimit,
		Log:       log.Component("http"),
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
