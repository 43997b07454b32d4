package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/dto"
	"github.com/musiconnect/musiconnect-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewUserResponses(users))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	err = h.userService.UpdateProfile(id, services.ProfileUpdate{
		Email:       req.Email,
		Bio:         req.Bio,
		Location:    req.Location,
		Instruments: req.Instruments,
		Available:   req.Available,
		Genres:      req.Genres,
	})
	if err != nil {
		return fail(c, err)
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) UpdateAvailability(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req dto.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	msg, err := h.userService.UpdateAvailability(id, req.Available)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.userService.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "account removed"})
}
