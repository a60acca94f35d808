package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	pkgResponse "git-telegram-bridge/pkg/response"
	pkgTelegram "git-telegram-bridge/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects a response within a few seconds, and
// a slow registration store or GitHub probe must not trip that timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.) and empty text.
	if update.Message == nil || update.Message.Chat == nil || update.Message.Text == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.uc.HandleMessage(bgCtx, msg.Chat.ID, msg.Text); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background HandleMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}
