package webhook

import (
	registrationRepo "git-telegram-bridge/internal/registration/repository"
	"git-telegram-bridge/pkg/log"
	pkgTelegram "git-telegram-bridge/pkg/telegram"
)

type Handler struct {
	repo   registrationRepo.Repository
	bot    *pkgTelegram.Bot
	parser *GitHubEventParser
	l      log.Logger
}

func NewHandler(
	repo registrationRepo.Repository,
	bot *pkgTelegram.Bot,
	l log.Logger,
) *Handler {
	return &Handler{
		repo:   repo,
		bot:    bot,
		parser: NewGitHubParser(),
		l:      l,
	}
}
