package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"storefront/internal/bot"
	"storefront/internal/models"
	"storefront/internal/validation"
)

// ChatHandler exposes the shopping assistant.
type ChatHandler struct {
	engine   *bot.Engine
	recorder IntentRecorder
	log      *zap.Logger
}

// NewChatHandler creates a new chat handler. recorder may be nil.
func NewChatHandler(engine *bot.Engine, recorder IntentRecorder, log *zap.Logger) *ChatHandler {
	return &ChatHandler{engine: engine, recorder: recorder, log: log}
}

// Chat answers one customer message. Nothing about the exchange is stored
// except the intent counter.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	var req models.ChatRequest
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}
	if req.Message == "" {
		return jsonError(c, fiber.StatusBadRequest, "No message provided")
	}
	if valid, msg := validation.ValidateChatMessage(req.Message); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	turn := h.engine.Reply(req.Message)

	h.log.Debug("chat turn",
		zap.String("intent", string(turn.Intent)),
		zap.String("extracted", turn.Extracted),
	)
	if h.recorder != nil {
		h.recorder.RecordIntent(string(turn.Intent))
	}

	return c.JSON(models.ChatResponse{
		Status:      "ok",
		Response:    turn.Reply,
		UserMessage: turn.Input,
		Intent:      string(turn.Intent),
	})
}
