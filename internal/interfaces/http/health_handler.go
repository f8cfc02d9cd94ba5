package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
)

// HealthHandler responde el estado del servicio.
type HealthHandler struct {
	env string
}

// NewHealthHandler construye el handler con el entorno configurado.
func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env}
}

// Check GET /health y GET /api/health
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.env,
	})
}
