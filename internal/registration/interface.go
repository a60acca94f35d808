package registration

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Setup generates a secret, persists the registration, and sends a
	// best-effort welcome message to the chat.
	Setup(ctx context.Context, input SetupInput) (SetupOutput, error)
}
