package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// ProveedorHandler maneja las peticiones HTTP para Proveedor.
type ProveedorHandler struct {
	uc    *usecase.ProveedorUseCase
	log   *logger.Logger
	debug bool
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase, log *logger.Logger, debug bool) *ProveedorHandler {
	return &ProveedorHandler{uc: uc, log: log, debug: debug}
}

// Listar GET /api/proveedores?estado=ACTIVO
func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Query("estado"))
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo proveedores", err)
	}
	return c.JSON(out)
}

// ObtenerPorID GET /api/proveedores/:id
func (h *ProveedorHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ObtenerPorID(id)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo proveedor", err)
	}
	if out == nil {
		return respondNotFound(c, "Proveedor no encontrado")
	}
	return c.JSON(out)
}

// Crear POST /api/proveedores
func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.ProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error creando proveedor", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar PUT /api/proveedores/:id
func (h *ProveedorHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.ProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error actualizando proveedor", err)
	}
	if out == nil {
		return respondNotFound(c, "Proveedor no encontrado")
	}
	return c.JSON(out)
}

// Eliminar DELETE /api/proveedores/:id — borrado lógico (estado INACTIVO).
func (h *ProveedorHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, h.log, h.debug, "Error eliminando proveedor", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
