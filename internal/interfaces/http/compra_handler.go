package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/application/usecase"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// CompraHandler maneja las peticiones HTTP para Compra (documento con líneas).
type CompraHandler struct {
	uc    *usecase.CompraUseCase
	log   *logger.Logger
	debug bool
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *usecase.CompraUseCase, log *logger.Logger, debug bool) *CompraHandler {
	return &CompraHandler{uc: uc, log: log, debug: debug}
}

// Listar GET /api/compras devuelve las compras con proveedor y líneas anidadas.
func (h *CompraHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo compras", err)
	}
	return c.JSON(out)
}

// ObtenerPorID GET /api/compras/:id
func (h *CompraHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ObtenerPorID(id)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error obteniendo compra", err)
	}
	if out == nil {
		return respondNotFound(c, "Compra no encontrada")
	}
	return c.JSON(out)
}

// Crear POST /api/compras
func (h *CompraHandler) Crear(c *fiber.Ctx) error {
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error creando compra", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar PUT /api/compras/:id
func (h *CompraHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error actualizando compra", err)
	}
	if out == nil {
		return respondNotFound(c, "Compra no encontrada")
	}
	return c.JSON(out)
}

// Eliminar DELETE /api/compras/:id — borra las líneas y luego la cabecera.
func (h *CompraHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Eliminar(id); err != nil {
		return respondError(c, h.log, h.debug, "Error eliminando compra", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckDocumento GET /api/compras/check-documento/:numero — verificación
// best-effort; la carrera entre check y create queda sin resguardo porque
// las compras no tienen constraint de unicidad.
func (h *CompraHandler) CheckDocumento(c *fiber.Ctx) error {
	numero := c.Params("numero")
	if numero == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Número requerido"})
	}
	out, err := h.uc.CheckDocumento(numero)
	if err != nil {
		return respondError(c, h.log, h.debug, "Error verificando documento de compra", err)
	}
	return c.JSON(out)
}
