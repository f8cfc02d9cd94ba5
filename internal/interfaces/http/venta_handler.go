package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// VentaHandler maneja las peticiones HTTP para Venta (documento con líneas).
type VentaHandler struct {
	uc    *usecase.VentaUseCase
	log   *logger.Logger
	debug bool
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase, log *logger.Logger, debug bool) *VentaHandler {
	return &VentaHandler{uc: uc, log: log, debug: debug}
}

// Listar GET /api/ventas devuelve las ventas sin anidar, más recientes primero.
func (h *VentaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respondError(c, h.log, h.debug, "Error listando ventas", err)
	}
	return c.JSON(out)
}

// ObtenerPorID GET /api/ventas/:id devuelve la venta con sus líneas anidadas.
func (h *VentaHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ObtenerPorID(id)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo venta", err)
	}
	if out == nil {
		return respondNotFound(c, "Venta no encontrada")
	}
	return c.JSON(out)
}

// Crear POST /api/ventas. Responde 409 si el número de documento ya existe.
func (h *VentaHandler) Crear(c *fiber.Ctx) error {
	var in dto.VentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "DUPLICATE",
				Message: "El número de documento ya existe. Debe ser único.",
			})
		}
		return respondError(c, h.log, h.debug, "Error creando venta", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar PUT /api/ventas/:id
func (h *VentaHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.VentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "DUPLICATE",
				Message: "El número de documento ya existe. Debe ser único.",
			})
		}
		return respondError(c, h.log, h.debug, "Error actualizando venta", err)
	}
	if out == nil {
		return respondNotFound(c, "Venta no encontrada")
	}
	return c.JSON(out)
}

// Eliminar DELETE /api/ventas/:id — borra las líneas y luego la cabecera.
func (h *VentaHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, h.log, h.debug, "Error eliminando venta", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckDocumento GET /api/ventas/check-documento/:numero — verificación
// best-effort antes del alta; la carrera la resuelve el constraint UNIQUE.
func (h *VentaHandler) CheckDocumento(c *fiber.Ctx) error {
	numero := c.Params("numero")
	if numero == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Número requerido"})
	}
	out, err := h.uc.CheckDocumento(numero)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error verificando documento", err)
	}
	return c.JSON(out)
}
