package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// VentaDetalleHandler maneja las peticiones HTTP para líneas de venta.
type VentaDetalleHandler struct {
	uc    *usecase.VentaDetalleUseCase
	log   *logger.Logger
	debug bool
}

// NewVentaDetalleHandler construye el handler.
func NewVentaDetalleHandler(uc *usecase.VentaDetalleUseCase, log *logger.Logger, debug bool) *VentaDetalleHandler {
	return &VentaDetalleHandler{uc: uc, log: log, debug: debug}
}

// Listar GET /api/ventas-detalles?id_venta=N
func (h *VentaDetalleHandler) Listar(c *fiber.Ctx) error {
	var idVenta *int64
	if raw := c.Query("id_venta"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_venta inválido"})
		}
		idVenta = &n
	}
	out, err := h.uc.Listar(idVenta)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo detalles de venta", err)
	}
	return c.JSON(out)
}

// ObtenerPorID GET /api/ventas-detalles/:id
func (h *VentaDetalleHandler) ObtenerPorID(c *fiber.Ctx) error {
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

// Crear POST /api/ventas-detalles
func (h *VentaDetalleHandler) Crear(c *fiber.Ctx) error {
	var in dto.VentaDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error creando detalle de venta", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar PUT /api/ventas-detalles/:id
func (h *VentaDetalleHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.VentaDetalleRequest
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

// Eliminar DELETE /api/ventas-detalles/:id. Borrado físico directo.
func (h *VentaDetalleHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, h.log, h.debug, "Error eliminando detalle", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
