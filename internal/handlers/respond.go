package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/dto"
)

// fail translates a service error into the matching HTTP response.
// Anything without a domain kind is treated as an internal fault.
func fail(c *fiber.Ctx, err error) error {
	kind, ok := apperr.KindOf(err)
	if !ok {
		slog.Error("unhandled service error", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	status := fiber.StatusInternalServerError
	switch kind {
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
	case apperr.KindConflict:
		status = fiber.StatusConflict
	case apperr.KindRuleViolation:
		status = fiber.StatusUnprocessableEntity
	case apperr.KindForbidden:
		status = fiber.StatusForbidden
	case apperr.KindBadRequest:
		status = fiber.StatusBadRequest
	case apperr.KindUnauthorized:
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}

func parseID(c *fiber.Ctx, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid " + name + " parameter")
	}
	return id, nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, apperr.BadRequest(field + " must use the format " + dto.DateLayout)
	}
	return t, nil
}
