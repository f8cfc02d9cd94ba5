package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// ProductoHandler maneja las peticiones HTTP para Producto.
type ProductoHandler struct {
	uc    *usecase.ProductoUseCase
	log   *logger.Logger
	debug bool
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase, log *logger.Logger, debug bool) *ProductoHandler {
	return &ProductoHandler{uc: uc, log: log, debug: debug}
}

// Listar GET /api/productos?estado=ACTIVO
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Query("estado"))
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo productos", err)
	}
	return c.JSON(out)
}

// ObtenerPorID GET /api/productos/:id
func (h *ProductoHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ObtenerPorID(id)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo producto", err)
	}
	if out == nil {
		return respondNotFound(c, "Producto no encontrado")
	}
	return c.JSON(out)
}

// Crear POST /api/productos
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error creando producto", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar PUT /api/productos/:id
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error actualizando producto", err)
	}
	if out == nil {
		return respondNotFound(c, "Producto no encontrado")
	}
	return c.JSON(out)
}

// Eliminar DELETE /api/productos/:id — borrado lógico (estado INACTIVO).
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, h.log, h.debug, "Error eliminando producto", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
