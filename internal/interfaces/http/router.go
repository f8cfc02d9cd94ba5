package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProveedorUC     *usecase.ProveedorUseCase
	ProductoUC      *usecase.ProductoUseCase
	CompraUC        *usecase.CompraUseCase
	CompraDetalleUC *usecase.CompraDetalleUseCase
	VentaUC         *usecase.VentaUseCase
	VentaDetalleUC  *usecase.VentaDetalleUseCase
	Log             *logger.Logger
	Env             string
	Debug           bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.Env)
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	// Proveedores
	proveedores := api.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC, deps.Log, deps.Debug)
	proveedores.Get("/", proveedorHandler.Listar)
	proveedores.Get("/:id", proveedorHandler.ObtenerPorID)
	proveedores.Post("/", proveedorHandler.Crear)
	proveedores.Put("/:id", proveedorHandler.Actualizar)
	proveedores.Delete("/:id", proveedorHandler.Eliminar)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.Log, deps.Debug)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/:id", productoHandler.ObtenerPorID)
	productos.Post("/", productoHandler.Crear)
	productos.Put("/:id", productoHandler.Actualizar)
	productos.Delete("/:id", productoHandler.Eliminar)

	// Compras. La ruta de verificación va antes de /:id para que
	// "check-documento" no se capture como identificador.
	compras := api.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC, deps.Log, deps.Debug)
	compras.Get("/check-documento/:numero", compraHandler.CheckDocumento)
	compras.Get("/", compraHandler.Listar)
	compras.Get("/:id", compraHandler.ObtenerPorID)
	compras.Post("/", compraHandler.Crear)
	compras.Put("/:id", compraHandler.Actualizar)
	compras.Delete("/:id", compraHandler.Eliminar)

	// Detalles de compra
	comprasDetalles := api.Group("/compras-detalles")
	compraDetalleHandler := NewCompraDetalleHandler(deps.CompraDetalleUC, deps.Log, deps.Debug)
	comprasDetalles.Get("/", compraDetalleHandler.Listar)
	comprasDetalles.Get("/:id", compraDetalleHandler.ObtenerPorID)
	comprasDetalles.Post("/", compraDetalleHandler.Crear)
	comprasDetalles.Put("/:id", compraDetalleHandler.Actualizar)
	comprasDetalles.Delete("/:id", compraDetalleHandler.Eliminar)

	// Ventas
	ventas := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC, deps.Log, deps.Debug)
	ventas.Get("/check-documento/:numero", ventaHandler.CheckDocumento)
	ventas.Get("/", ventaHandler.Listar)
	ventas.Get("/:id", ventaHandler.ObtenerPorID)
	ventas.Post("/", ventaHandler.Crear)
	ventas.Put("/:id", ventaHandler.Actualizar)
	ventas.Delete("/:id", ventaHandler.Eliminar)

	// Detalles de venta
	ventasDetalles := api.Group("/ventas-detalles")
	ventaDetalleHandler := NewVentaDetalleHandler(deps.VentaDetalleUC, deps.Log, deps.Debug)
	ventasDetalles.Get("/", ventaDetalleHandler.Listar)
	ventasDetalles.Get("/:id", ventaDetalleHandler.ObtenerPorID)
	ventasDetalles.Post("/", ventaDetalleHandler.Crear)
	ventasDetalles.Put("/:id", ventaDetalleHandler.Actualizar)
	ventasDetalles.Delete("/:id", ventaDetalleHandler.Eliminar)

	// Cualquier otra ruta bajo /api responde 404 explícito.
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Endpoint no encontrado"})
	})
}
