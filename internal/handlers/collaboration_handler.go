package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/dto"
	"github.com/musiconnect/musiconnect-api/internal/services"
)

type CollaborationHandler struct {
	collabService *services.CollaborationService
}

func NewCollaborationHandler(collabService *services.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{collabService: collabService}
}

func (h *CollaborationHandler) Create(c *fiber.Ctx) error {
	var req dto.CollaborationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return fail(c, err)
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		return fail(c, err)
	}

	collab, err := h.collabService.Create(req.Title, req.Description, start, end, req.CreatorID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCollaborationResponse(collab))
}

func (h *CollaborationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.CollaborationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return fail(c, err)
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		return fail(c, err)
	}

	if err := h.collabService.Update(id, req.UserID, req.Title, req.Description, start, end, req.Status); err != nil {
		return fail(c, err)
	}

	collab, err := h.collabService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCollaborationResponse(collab))
}

func (h *CollaborationHandler) ListActive(c *fiber.Ctx) error {
	collabs, err := h.collabService.ListActive()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCollaborationResponses(collabs))
}

func (h *CollaborationHandler) List(c *fiber.Ctx) error {
	collabs, err := h.collabService.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCollaborationResponses(collabs))
}

func (h *CollaborationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	collab, err := h.collabService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCollaborationResponse(collab))
}

func (h *CollaborationHandler) ListByCreator(c *fiber.Ctx) error {
	collabs, err := h.collabService.ListByCreatorName(c.Params("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewCollaborationResponses(collabs))
}

func (h *CollaborationHandler) AddCollaborator(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.AddCollaboratorRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.collabService.AddCollaborator(id, req.ArtisticName); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "collaborator added"})
}

func (h *CollaborationHandler) ListCollaborators(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	users, err := h.collabService.ListCollaborators(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewUserResponses(users))
}

func (h *CollaborationHandler) ListStatuses(c *fiber.Ctx) error {
	return c.JSON(h.collabService.ListStatuses())
}

func (h *CollaborationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	if err := h.collabService.Remove(id, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "collaboration removed"})
}
