package webhook

import (
	"io"

	"github.com/gin-gonic/gin"

	registrationRepo "git-telegram-bridge/internal/registration/repository"
	pkgResponse "git-telegram-bridge/pkg/response"
)

// Transport headers GitHub sets on webhook deliveries.
const (
	headerEvent     = "X-GitHub-Event"
	headerSignature = "X-Hub-Signature-256"
)

// pingEvent is GitHub's liveness check, accepted with no authentication and
// no delivery.
const pingEvent = "ping"

// HandleGitHubWebhook is the admission pipeline for inbound GitHub events:
// ping short-circuit, envelope parse, registration lookup by repository,
// signature verification, typed decode, format, deliver.
//
// The ordering is load-bearing. Trust is anchored to the repository-identifier
// lookup: the secret that verifies the signature is the one belonging to the
// registration found for the event's claimed repository, so a valid signature
// from some *other* registration can never authenticate this event.
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Liveness ping bypasses everything.
	eventType := c.GetHeader(headerEvent)
	if eventType == pingEvent {
		pkgResponse.OK(c, gin.H{"status": "ok", "message": "pong"})
		return
	}

	// Capture the raw body before any decoding; the signature is computed
	// over these exact bytes.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "github webhook: failed to read body: %v", err)
		pkgResponse.Error(c, ErrMalformedPayload, nil)
		return
	}

	// 2–3. Envelope parse and repository extraction.
	repoName, err := h.parser.ExtractRepository(body)
	if err != nil {
		h.l.Errorf(ctx, "github webhook: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// 4. Registration lookup (case-insensitive).
	reg, err := h.repo.GetOneRegistration(ctx, registrationRepo.GetOneRegistrationOptions{
		GitHubRepo: repoName,
	})
	if err != nil {
		h.l.Errorf(ctx, "github webhook: registration lookup for %q failed: %v", repoName, err)
		pkgResponse.InternalError(c, err)
		return
	}
	if reg.ID == "" {
		h.l.Warnf(ctx, "github webhook: no registration for repository %q", repoName)
		pkgResponse.Forbidden(c)
		return
	}

	// 5. Signature verification with the matched registration's secret.
	if err := VerifySignature(body, reg.Secret, c.GetHeader(headerSignature)); err != nil {
		h.l.Errorf(ctx, "github webhook: signature verification failed for %q: %v", repoName, err)
		pkgResponse.Unauthorized(c)
		return
	}

	// 6. Typed decode into the event variant.
	event, err := h.parser.Decode(eventType, body)
	if err != nil {
		h.l.Errorf(ctx, "github webhook: failed to decode %s event: %v", eventType, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// 7–8. Format and deliver. Delivery failures surface as 500 and are not
	// retried here.
	message := FormatEvent(event)
	if err := h.bot.SendMessageWithMode(reg.ChatID, message, "Markdown"); err != nil {
		h.l.Errorf(ctx, "github webhook: delivery to chat %d failed: %v", reg.ChatID, err)
		pkgResponse.InternalError(c, ErrDelivery)
		return
	}

	h.l.Infof(ctx, "github webhook: delivered %s event for %s to chat %d", eventType, repoName, reg.ChatID)
	pkgResponse.OK(c, gin.H{"status": "ok", "message": "notification sent"})
}
