package usecase

import (
	"git-telegram-bridge/internal/registration"
	"git-telegram-bridge/internal/registration/repository"
	"git-telegram-bridge/pkg/log"
	pkgTelegram "git-telegram-bridge/pkg/telegram"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	bot  *pkgTelegram.Bot
}

// New creates the registration UseCase.
func New(l log.Logger, repo repository.Repository, bot *pkgTelegram.Bot) registration.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		bot:  bot,
	}
}
