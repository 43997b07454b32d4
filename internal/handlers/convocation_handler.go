package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/dto"
	"github.com/musiconnect/musiconnect-api/internal/services"
)

type ConvocationHandler struct {
	convService *services.ConvocationService
}

func NewConvocationHandler(convService *services.ConvocationService) *ConvocationHandler {
	return &ConvocationHandler{convService: convService}
}

func (h *ConvocationHandler) Create(c *fiber.Ctx) error {
	var req dto.ConvocationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	deadline, err := parseDate(req.Deadline, "deadline")
	if err != nil {
		return fail(c, err)
	}

	conv, err := h.convService.Create(req.CreatorID, req.Title, req.Description, deadline)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewConvocationResponse(conv))
}

func (h *ConvocationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.ConvocationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	deadline, err := parseDate(req.Deadline, "deadline")
	if err != nil {
		return fail(c, err)
	}

	if err := h.convService.Edit(id, req.UserID, req.Title, req.Description, deadline); err != nil {
		return fail(c, err)
	}

	conv, err := h.convService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewConvocationResponse(conv))
}

func (h *ConvocationHandler) ListActive(c *fiber.Ctx) error {
	convs, err := h.convService.ListActive()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewConvocationResponses(convs))
}

func (h *ConvocationHandler) List(c *fiber.Ctx) error {
	convs, err := h.convService.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewConvocationResponses(convs))
}

func (h *ConvocationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	conv, err := h.convService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewConvocationResponse(conv))
}

func (h *ConvocationHandler) ListFavorites(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	convs, err := h.convService.ListFavoritesOf(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewConvocationResponses(convs))
}

func (h *ConvocationHandler) MarkFavorite(c *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.convService.MarkFavorite(req.UserID, req.ConvocationID); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "convocation marked as favorite"})
}

func (h *ConvocationHandler) UnmarkFavorite(c *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.convService.UnmarkFavorite(req.UserID, req.ConvocationID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "favorite removed"})
}

func (h *ConvocationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	if err := h.convService.Delete(id, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "convocation removed"})
}
