package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musiconnect/musiconnect-api/internal/dto"
	"github.com/musiconnect/musiconnect-api/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	reply, err := h.chatService.Ask(c.Context(), req.Prompt)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ChatResponse{Reply: reply})
}
