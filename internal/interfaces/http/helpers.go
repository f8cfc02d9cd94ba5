package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/pkg/logger"
)

// parseID lee el parámetro de ruta "id" como entero. Si no es numérico
// responde 400 y devuelve ok=false.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
		return 0, false
	}
	return id, true
}

// respondError traduce errores de dominio a HTTP. Cualquier fallo de acceso a
// datos se loguea y sale como 500 con mensaje genérico; el detalle solo se
// expone en modo desarrollo.
func respondError(c *fiber.Ctx, log *logger.Logger, debug bool, generico string, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	log.Error().Err(err).Msg(generico)
	msg := generico
	if debug {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msg})
}

// respondNotFound responde 404 con el mensaje del recurso.
func respondNotFound(c *fiber.Ctx, mensaje string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: mensaje})
}

// respondBadBody responde 400 por cuerpo JSON ilegible.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
