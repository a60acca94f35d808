package repository

// CreateRegistrationOptions holds parameters for inserting a new Registration.
type CreateRegistrationOptions struct {
	GitHubRepo string
	ChatID     int64
	Secret     string
}

// GetOneRegistrationOptions holds filter parameters for fetching a single
// Registration. All non-empty fields are applied as AND conditions.
// GitHubRepo matches case-insensitively.
type GetOneRegistrationOptions struct {
	ID         string
	GitHubRepo string
	Secret     string
}
