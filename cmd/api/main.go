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

	"github.com/jpcastillo/inventario-api/internal/application/catalog"
	"github.com/jpcastillo/inventario-api/internal/application/directory"
	"github.com/jpcastillo/inventario-api/internal/application/ledger"
	"github.com/jpcastillo/inventario-api/internal/application/receivable"
	"github.com/jpcastillo/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/jpcastillo/inventario-api/internal/interfaces/http"
	"github.com/jpcastillo/inventario-api/pkg/config"
	"github.com/jpcastillo/inventario-api/pkg/logger"
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

	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	kardexRepo := postgres.NewKardexRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	cuentaRepo := postgres.NewCuentaRepository(pool)
	cuotaRepo := postgres.NewCuotaRepository(pool)
	clienteRepo := postgres.NewClienteProvRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	cuentasUC := receivable.NewUseCase(txRunner, cuentaRepo, cuotaRepo)
	ledgerUC := ledger.NewUseCase(txRunner, cuentasUC, productoRepo, kardexRepo, movimientoRepo)
	productoUC := catalog.NewProductoUseCase(productoRepo, kardexRepo)
	categoriaUC := catalog.NewCategoriaUseCase(categoriaRepo)
	clientesUC := directory.NewUseCase(clienteRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:  productoUC,
		CategoriaUC: categoriaUC,
		LedgerUC:    ledgerUC,
		CuentasUC:   cuentasUC,
		ClientesUC:  clientesUC,
		JWTSecret:   cfg.JWT.Secret,
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
