package usecase

import (
	"context"
	"errors"
	"fmt"

	"git-telegram-bridge/internal/registration"
	"git-telegram-bridge/internal/registration/repository"
)

// Setup creates a registration for the given repository and chat, generates
// its secret, and sends the welcome message. The secret is returned to the
// caller as well — this is the only synchronous secret return in the system.
func (uc *implUseCase) Setup(ctx context.Context, input registration.SetupInput) (registration.SetupOutput, error) {
	if !registration.IsValidRepoName(input.GitHubRepo) {
		return registration.SetupOutput{}, registration.ErrInvalidRepoName
	}

	secret, err := registration.NewSecret()
	if err != nil {
		return registration.SetupOutput{}, err
	}

	reg, err := uc.repo.CreateRegistration(ctx, repository.CreateRegistrationOptions{
		GitHubRepo: input.GitHubRepo,
		ChatID:     input.ChatID,
		Secret:     secret,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return registration.SetupOutput{}, registration.ErrDuplicateRegistration
		}
		return registration.SetupOutput{}, err
	}

	// Welcome delivery is best-effort: the registration already exists and the
	// secret is in the response, so a chat hiccup must not fail the setup.
	welcome := fmt.Sprintf(
		"🔗 *GitHub Integration Setup Complete*\n\n"+
			"Your GitHub repository `%s` has been connected to this chat.\n"+
			"You will receive notifications for repository events here.\n\n"+
			"Your API Key: `%s`\n"+
			"Add this key to your GitHub repository secrets as `API_TOKEN`",
		reg.GitHubRepo, reg.Secret,
	)
	if err := uc.bot.SendMessageWithMode(reg.ChatID, welcome, "Markdown"); err != nil {
		uc.l.Warnf(ctx, "registration usecase: failed to send welcome message to chat %d: %v", reg.ChatID, err)
	}

	return registration.SetupOutput{Registration: reg}, nil
}
