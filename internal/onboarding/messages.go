package onboarding

import (
	"fmt"

	"git-telegram-bridge/internal/model"
)

// Reply texts for the onboarding conversation. All are sent with Markdown
// parse mode.
const (
	MsgWelcome = "👋 Welcome to *Git Telegram Bridge*!\n\n" +
		"Send the GitHub repository you want to connect to this chat, " +
		"in the `owner/name` form (e.g. `golang/go`)."

	MsgInvalidRepo = "⚠️ That doesn't look like a repository name. " +
		"Use the `owner/name` form, e.g. `golang/go`."

	MsgSecretMismatch = "⚠️ That secret doesn't match this repository's registration. " +
		"Send the secret you received when it was registered, or /start over."

	MsgAlreadyRegistered = "⚠️ That repository is already registered. " +
		"Send its existing secret to finish, or /start over with a different repository."

	MsgUsageHint = "Send /start to connect a GitHub repository to this chat."

	MsgTryAgain = "Something went wrong on our side. Please send that again."
)

// MsgRepoNotFound tells the user the repository probe came up empty.
func MsgRepoNotFound(repo string) string {
	return fmt.Sprintf("⚠️ I couldn't find `%s` on GitHub. Double-check the name and send it again.", repo)
}

// MsgSecretPrompt asks for a secret for the accepted repository.
func MsgSecretPrompt(repo string) string {
	return fmt.Sprintf("🔐 Got it — `%s`.\n\nNow send the webhook secret, or reply `generate` and I'll create one for you.", repo)
}

// MsgSetupInstructions is the completion message: everything the user needs
// to wire the GitHub webhook, secret included.
func MsgSetupInstructions(reg model.Registration, webhookBaseURL string) string {
	return fmt.Sprintf(
		"✅ *`%s` is connected to this chat!*\n\n"+
			"Add a webhook to the repository with:\n"+
			"• Payload URL: `%s/webhook/github`\n"+
			"• Content type: `application/json`\n"+
			"• Secret: `%s`\n\n"+
			"Store the secret in your repository secrets as `API_TOKEN`.",
		reg.GitHubRepo, webhookBaseURL, reg.Secret,
	)
}
