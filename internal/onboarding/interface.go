package onboarding

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleMessage advances the chat's conversation with one inbound message.
	// User mistakes (bad repository name, wrong secret) are answered in place
	// and are not errors; the returned error covers store and delivery failures.
	HandleMessage(ctx context.Context, chatID int64, text string) error
}

// RepoProber checks whether a repository exists upstream. Optional: a nil
// prober skips the existence check during onboarding.
type RepoProber interface {
	RepositoryExists(ctx context.Context, fullName string) (bool, error)
}
