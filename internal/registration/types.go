package registration

import "git-telegram-bridge/internal/model"

// --- UseCase Inputs ---

// SetupInput holds parameters for the direct (non-conversational) setup path.
type SetupInput struct {
	GitHubRepo string
	ChatID     int64
}

// --- UseCase Outputs ---

// SetupOutput carries the created registration. This is the one place a
// generated secret is returned synchronously instead of only being delivered
// to the chat.
type SetupOutput struct {
	Registration model.Registration
}
