package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"git-telegram-bridge/internal/registration"
	"git-telegram-bridge/internal/registration/repository"
	"git-telegram-bridge/pkg/response"
)

// Setup godoc
// @Summary     Set up a GitHub → Telegram integration
// @Description Registers a repository/chat pair, generates the webhook secret,
// @Description and sends a welcome message to the chat. The secret is returned
// @Description in the response body.
// @Tags        Integrations
// @Accept      json
// @Produce     json
// @Param       body body setupReq true "Integration data"
// @Success     200 {object} setupResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/integrations/setup [POST]
func (h *handler) Setup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetupReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Setup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Setup: %v", err)
		if errors.Is(err, registration.ErrInvalidRepoName) || errors.Is(err, registration.ErrDuplicateRegistration) {
			response.Error(c, err, nil)
			return
		}
		if errors.Is(err, repository.ErrFailedToInsert) || errors.Is(err, repository.ErrFailedToGet) {
			response.InternalError(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSetupResp(output))
}
