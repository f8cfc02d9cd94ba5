package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// CompraDetalleHandler maneja las peticiones HTTP para líneas de compra.
type CompraDetalleHandler struct {
	uc    *usecase.CompraDetalleUseCase
	log   *logger.Logger
	debug bool
}

// NewCompraDetalleHandler construye el handler.
func NewCompraDetalleHandler(uc *usecase.CompraDetalleUseCase, log *logger.Logger, debug bool) *CompraDetalleHandler {
	return &CompraDetalleHandler{uc: uc, log: log, debug: debug}
}

// Listar GET /api/compras-detalles?id_compra=N
func (h *CompraDetalleHandler) Listar(c *fiber.Ctx) error {
	var idCompra *int64
	if raw := c.Query("id_compra"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_compra inválido"})
		}
		idCompra = &n
	}
	out, err := h.uc.Listar(idCompra)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo detalles de compra", err)
	}
	return c.JSON(out)
}

// ObtenerPorID GET /api/compras-detalles/:id
func (h *CompraDetalleHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ObtenerPorID(id)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo detalle", err)
	}
	if out == nil {
		return respondNotFound(c, "Detalle no encontrado")
	}
	return c.JSON(out)
}

// Crear POST /api/compras-detalles
func (h *CompraDetalleHandler) Crear(c *fiber.Ctx) error {
	var in dto.CompraDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error creando detalle de compra", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar PUT /api/compras-detalles/:id
func (h *CompraDetalleHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.CompraDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error actualizando detalle", err)
	}
	if out == nil {
		return respondNotFound(c, "Detalle no encontrado")
	}
	return c.JSON(out)
}

// Eliminar DELETE /api/compras-detalles/:id. Borrado físico directo.
func (h *CompraDetalleHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, h.log, h.debug, "Error eliminando detalle", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
