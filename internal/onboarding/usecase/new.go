package usecase

import (
	"git-telegram-bridge/internal/onboarding"
	registrationRepo "git-telegram-bridge/internal/registration/repository"
	"git-telegram-bridge/pkg/log"
	pkgTelegram "git-telegram-bridge/pkg/telegram"
)

type implUseCase struct {
	l              log.Logger
	store          onboarding.Store
	repo           registrationRepo.Repository
	bot            *pkgTelegram.Bot
	prober         onboarding.RepoProber // nil disables the existence check
	webhookBaseURL string
}

// New creates the onboarding UseCase.
func New(
	l log.Logger,
	store onboarding.Store,
	repo registrationRepo.Repository,
	bot *pkgTelegram.Bot,
	prober onboarding.RepoProber,
	webhookBaseURL string,
) onboarding.UseCase {
	return &implUseCase{
		l:              l,
		store:          store,
		repo:           repo,
		bot:            bot,
		prober:         prober,
		webhookBaseURL: webhookBaseURL,
	}
}
