package repository

import (
	"context"

	"git-telegram-bridge/internal/model"
)

// Repository is the composed interface for the registration data store.
type Repository interface {
	RegistrationRepository
}

// RegistrationRepository defines all data access methods for Registration
// records. Registrations are append-only from the core's point of view:
// no update or delete path exists.
type RegistrationRepository interface {
	CreateRegistration(ctx context.Context, opt CreateRegistrationOptions) (model.Registration, error)
	GetOneRegistration(ctx context.Context, opt GetOneRegistrationOptions) (model.Registration, error)
}
