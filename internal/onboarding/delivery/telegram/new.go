package telegram

import (
	"github.com/gin-gonic/gin"

	"git-telegram-bridge/internal/onboarding"
	"git-telegram-bridge/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc onboarding.UseCase
}

// New creates a new Telegram delivery handler.
func New(l log.Logger, uc onboarding.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
