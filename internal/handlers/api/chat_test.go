package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/bot"
	"storefront/internal/models"
)

// firstVariant always picks the first reply variant.
type firstVariant struct{}

func (firstVariant) IntN(int) int { return 0 }

type countingRecorder struct {
	mu      sync.Mutex
	intents []string
}

func (r *countingRecorder) RecordIntent(intent string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, intent)
}

func chatApp(recorder IntentRecorder) *fiber.App {
	h := NewChatHandler(bot.Default(bot.WithSource(firstVariant{})), recorder, zap.NewNop())
	app := fiber.New()
	app.Post("/api/bot/chat", h.Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/bot/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]string{}
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func TestChatHandler_Replies(t *testing.T) {
	tpl := bot.DefaultTemplates()

	tests := []struct {
		name     string
		message  string
		intent   string
		response string
	}{
		{"greeting", "hello", "greeting", tpl.Sets[bot.IntentGreeting][0]},
		{"product category", "what's the price of watches", "product_search", "Looking for watch? I can show you our electronics collection!"},
		{"place order", "I want to place an order", "order", tpl.PlaceOrder},
		{"order status", "order status please", "order", tpl.OrderStatus},
		{"payment", "can I pay with bkash", "payment", tpl.Sets[bot.IntentPayment][0]},
		{"help", "help", "help", tpl.Help},
		{"whitespace falls back", "   ", "fallback", tpl.Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &countingRecorder{}
			app := chatApp(recorder)

			body, _ := json.Marshal(models.ChatRequest{Message: tt.message})
			status, out := postChat(t, app, string(body))

			require.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, "ok", out["status"])
			assert.Equal(t, tt.response, out["response"])
			assert.Equal(t, tt.message, out["user_message"])
			assert.Equal(t, tt.intent, out["intent"])
			assert.Equal(t, []string{tt.intent}, recorder.intents)
		})
	}
}

func TestChatHandler_NoMessage(t *testing.T) {
	for _, body := range []string{"", `{}`, `{"message": ""}`} {
		recorder := &countingRecorder{}
		app := chatApp(recorder)

		status, out := postChat(t, app, body)
		assert.Equal(t, fiber.StatusBadRequest, status, "body %q", body)
		assert.Equal(t, "error", out["status"])
		assert.Equal(t, "No message provided", out["error"])
		assert.Empty(t, recorder.intents)
	}
}

func TestChatHandler_BadBody(t *testing.T) {
	app := chatApp(nil)

	status, out := postChat(t, app, `{"message": 42}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid request body", out["error"])

	status, _ = postChat(t, app, `{"message": "`+strings.Repeat("a", 2001)+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
