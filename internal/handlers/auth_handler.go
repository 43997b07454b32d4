package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/dto"
	"github.com/musiconnect/musiconnect-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := h.authService.Register(services.Registration{
		Email:        req.Email,
		Password:     req.Password,
		ArtisticName: req.ArtisticName,
		Instruments:  req.Instruments,
		Bio:          req.Bio,
		Location:     req.Location,
		Available:    req.Available,
		RoleID:       req.RoleID,
		Genres:       req.Genres,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(result)
}
