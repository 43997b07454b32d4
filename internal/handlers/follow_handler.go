package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/dto"
	"github.com/musiconnect/musiconnect-api/internal/services"
)

type FollowHandler struct {
	followService *services.FollowService
}

func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Create(c *fiber.Ctx) error {
	var req dto.FollowRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	follow, err := h.followService.Create(req.FollowerID, req.FollowedUserID, req.FollowedBandID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewFollowResponse(follow))
}

func (h *FollowHandler) ListFollowed(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return fail(c, err)
	}

	profiles, err := h.followService.ListFollowedProfiles(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profiles)
}

func (h *FollowHandler) Delete(c *fiber.Ctx) error {
	var req dto.UnfollowRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	msg, err := h.followService.Unfollow(req.FollowerID, req.FollowedUserID, req.FollowedBandID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}
