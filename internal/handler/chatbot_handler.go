package handler

import (
	"balanceai/internal/dto"
	"balanceai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatbotHandler handles the scripted wellness assistant.
type ChatbotHandler struct {
	chatbotService service.ChatbotService
}

// NewChatbotHandler creates a new ChatbotHandler instance.
func NewChatbotHandler(chatbotService service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

// SendMessage handles POST /api/chatbot/message.
func (h *ChatbotHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	reply, err := h.chatbotService.Reply(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(reply)
}
