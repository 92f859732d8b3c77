package handlers

import (
	"log/slog"

	"github.com/anjiri1684/error_paper/database"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store *database.Store
}

func NewHealthHandler(store *database.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health reports database statistics. It is the only health endpoint that
// touches storage.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	stats, err := h.store.Statistics(c.UserContext())
	if err != nil {
		slog.Error("health check failed", "error", err)
		return Fail(c, fiber.StatusInternalServerError, "Database health check failed", fiber.Map{"status": "unhealthy"})
	}
	return respond(c, fiber.StatusOK, fiber.Map{"status": "healthy", "database": stats}, "")
}

func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, fiber.Map{"status": "ready"}, "")
}

func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, fiber.Map{"status": "alive"}, "")
}
