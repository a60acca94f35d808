package model

import "time"

// Registration links a GitHub repository to a Telegram chat.
// The secret doubles as the HMAC key for webhook signatures. One secret per
// registration, generated at creation and never rotated by the core.
type Registration struct {
	ID         string    // store-assigned UUID
	GitHubRepo string    // "owner/name", case-insensitively unique
	ChatID     int64     // Telegram chat the messages are delivered to
	Secret     string    // hex-encoded HMAC key, unique
	CreatedAt  time.Time // informational only
}
