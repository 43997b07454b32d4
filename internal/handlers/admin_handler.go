package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/repository"
)

type AdminHandler struct {
	logs repository.LogRepository
}

func NewAdminHandler(logs repository.LogRepository) *AdminHandler {
	return &AdminHandler{logs: logs}
}

// ListLogs returns recent persisted log records, newest first.
// Supports ?level=ERROR and ?limit=N (capped at 500).
func (h *AdminHandler) ListLogs(c *fiber.Ctx) error {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 500 {
		limit = 500
	}

	records, err := h.logs.FindRecent(c.Query("level"), limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(records)
}
