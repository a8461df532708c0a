package chatbot

import (
	"errors"

	"transvert-logistics/logger"
	chatbotService "transvert-logistics/services/chatbot"
	chatTypes "transvert-logistics/types/chat"

	"github.com/gofiber/fiber/v2"
)

// ChatbotController proxies prompts to the Gemini-backed assistant.
type ChatbotController struct {
	Chatbot *chatbotService.Service
}

func NewChatbotController(service *chatbotService.Service) *ChatbotController {
	return &ChatbotController{Chatbot: service}
}

// Chat answers a single prompt. The response mirrors the public wire format:
// {success, response} or {success:false, error}.
func (cc *ChatbotController) Chat(c *fiber.Ctx) error {
	var req chatTypes.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse chat request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	answer, err := cc.Chatbot.Ask(c.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, chatbotService.ErrUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   chatbotService.ErrUnavailable.Error(),
			})
		}
		logger.Error("Chatbot request failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"response": answer,
	})
}
