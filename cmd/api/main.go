package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-boletas/internal/interfaces/http"
	"github.com/tu-usuario/gestion-boletas/pkg/config"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
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

	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(pool); err != nil {
			log.Fatal().Err(err).Msg("aplicando migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	proveedorRepo := postgres.NewProveedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	compraDetalleRepo := postgres.NewCompraDetalleRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	ventaDetalleRepo := postgres.NewVentaDetalleRepository(pool)

	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	compraUC := usecase.NewCompraUseCase(compraRepo)
	compraDetalleUC := usecase.NewCompraDetalleUseCase(compraDetalleRepo)
	ventaUC := usecase.NewVentaUseCase(ventaRepo)
	ventaDetalleUC := usecase.NewVentaDetalleUseCase(ventaDetalleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión de Boletas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProveedorUC:     proveedorUC,
		ProductoUC:      productoUC,
		CompraUC:        compraUC,
		CompraDetalleUC: compraDetalleUC,
		VentaUC:         ventaUC,
		VentaDetalleUC:  ventaDetalleUC,
		Log:             log,
		Env:             cfg.App.Env,
		Debug:           cfg.App.EsDesarrollo(),
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
