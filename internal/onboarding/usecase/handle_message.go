package usecase

import (
	"context"
	"crypto/hmac"
	"errors"
	"strings"

	"git-telegram-bridge/internal/onboarding"
	"git-telegram-bridge/internal/registration"
	registrationRepo "git-telegram-bridge/internal/registration/repository"
)

// greetings reset the conversation from any phase.
var greetings = map[string]bool{
	"/start": true,
	"/help":  true,
	"hi":     true,
	"hello":  true,
}

// generateKeyword asks the bot to mint the secret instead of supplying one.
const generateKeyword = "generate"

// HandleMessage runs one step of the onboarding state machine.
//
// The conversation for a chat is advanced under that chat's lock, and always
// advances before any reply is sent: a Telegram delivery failure does not roll
// back a phase transition.
func (uc *implUseCase) HandleMessage(ctx context.Context, chatID int64, text string) error {
	release := uc.store.Acquire(chatID)
	defer release()

	msg := strings.TrimSpace(text)

	if greetings[strings.ToLower(msg)] {
		uc.store.Set(chatID, onboarding.Conversation{Phase: onboarding.PhaseAwaitingRepository})
		return uc.reply(chatID, onboarding.MsgWelcome)
	}

	conv, ok := uc.store.Get(chatID)
	if !ok {
		// Unexpected state: no conversation on record and not a greeting.
		return uc.reply(chatID, onboarding.MsgUsageHint)
	}

	switch conv.Phase {
	case onboarding.PhaseAwaitingRepository:
		return uc.handleRepository(ctx, chatID, conv, msg)
	case onboarding.PhaseAwaitingSecret:
		return uc.handleSecret(ctx, chatID, conv, msg)
	default:
		uc.store.Delete(chatID)
		return uc.reply(chatID, onboarding.MsgUsageHint)
	}
}

func (uc *implUseCase) handleRepository(ctx context.Context, chatID int64, conv onboarding.Conversation, msg string) error {
	if !registration.IsValidRepoName(msg) {
		return uc.reply(chatID, onboarding.MsgInvalidRepo)
	}

	if uc.prober != nil {
		exists, err := uc.prober.RepositoryExists(ctx, msg)
		if err != nil {
			uc.l.Warnf(ctx, "onboarding: existence probe for %q failed: %v", msg, err)
			return uc.reply(chatID, onboarding.MsgTryAgain)
		}
		if !exists {
			return uc.reply(chatID, onboarding.MsgRepoNotFound(msg))
		}
	}

	conv.PendingRepo = msg
	conv.Phase = onboarding.PhaseAwaitingSecret
	uc.store.Set(chatID, conv)

	return uc.reply(chatID, onboarding.MsgSecretPrompt(msg))
}

func (uc *implUseCase) handleSecret(ctx context.Context, chatID int64, conv onboarding.Conversation, msg string) error {
	if strings.EqualFold(msg, generateKeyword) {
		return uc.createRegistration(ctx, chatID, conv)
	}

	// Caller-supplied secret: accept only if it matches an existing
	// registration for the pending repository.
	reg, err := uc.repo.GetOneRegistration(ctx, registrationRepo.GetOneRegistrationOptions{
		GitHubRepo: conv.PendingRepo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "onboarding: registration lookup for %q failed: %v", conv.PendingRepo, err)
		return uc.reply(chatID, onboarding.MsgTryAgain)
	}
	if reg.ID == "" || !hmac.Equal([]byte(reg.Secret), []byte(msg)) {
		return uc.reply(chatID, onboarding.MsgSecretMismatch)
	}

	uc.store.Delete(chatID)
	return uc.reply(chatID, onboarding.MsgSetupInstructions(reg, uc.webhookBaseURL))
}

func (uc *implUseCase) createRegistration(ctx context.Context, chatID int64, conv onboarding.Conversation) error {
	secret, err := registration.NewSecret()
	if err != nil {
		uc.l.Errorf(ctx, "onboarding: secret generation failed: %v", err)
		return uc.reply(chatID, onboarding.MsgTryAgain)
	}

	reg, err := uc.repo.CreateRegistration(ctx, registrationRepo.CreateRegistrationOptions{
		GitHubRepo: conv.PendingRepo,
		ChatID:     chatID,
		Secret:     secret,
	})
	if err != nil {
		if errors.Is(err, registrationRepo.ErrDuplicate) {
			// Keep the phase: the user can still finish with the existing secret.
			return uc.reply(chatID, onboarding.MsgAlreadyRegistered)
		}
		uc.l.Errorf(ctx, "onboarding: creating registration for %q failed: %v", conv.PendingRepo, err)
		return uc.reply(chatID, onboarding.MsgTryAgain)
	}

	uc.store.Delete(chatID)
	return uc.reply(chatID, onboarding.MsgSetupInstructions(reg, uc.webhookBaseURL))
}

func (uc *implUseCase) reply(chatID int64, text string) error {
	return uc.bot.SendMessageWithMode(chatID, text, "Markdown")
}
