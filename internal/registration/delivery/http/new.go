package http

import (
	"github.com/gin-gonic/gin"

	"git-telegram-bridge/internal/registration"
	"git-telegram-bridge/pkg/log"
)

// Handler is the public interface for the registration HTTP delivery layer.
type Handler interface {
	Setup(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc registration.UseCase
}

// New creates a new HTTP handler for the registration domain.
func New(l log.Logger, uc registration.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
