package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/dto"
	"github.com/musiconnect/musiconnect-api/internal/services"
)

type BandHandler struct {
	bandService *services.BandService
}

func NewBandHandler(bandService *services.BandService) *BandHandler {
	return &BandHandler{bandService: bandService}
}

func (h *BandHandler) Create(c *fiber.Ctx) error {
	var req dto.BandRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	band, err := h.bandService.Create(req.Name, req.Description, req.Genres, req.AdminID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewBandResponse(band))
}

func (h *BandHandler) List(c *fiber.Ctx) error {
	bands, err := h.bandService.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewBandResponses(bands))
}

func (h *BandHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	band, err := h.bandService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewBandResponse(band))
}

func (h *BandHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.BandUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.bandService.Update(id, req.Name, req.Description, req.Genres, req.AdminID); err != nil {
		return fail(c, err)
	}

	band, err := h.bandService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewBandResponse(band))
}

func (h *BandHandler) AddMember(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.bandService.AddMember(id, req.UserID, req.AdminID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "member added to the band"})
}

func (h *BandHandler) ListMembers(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	members, err := h.bandService.ListMembers(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(members)
}

func (h *BandHandler) GetMember(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return fail(c, err)
	}

	name, err := h.bandService.GetMember(id, memberID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: name})
}

func (h *BandHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	adminID, err := parseID(c, "adminId")
	if err != nil {
		return fail(c, err)
	}

	if err := h.bandService.Delete(id, adminID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "band removed"})
}
