package postgre

import (
	"database/sql"
	"fmt"

	"git-telegram-bridge/internal/registration/repository"
	"git-telegram-bridge/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for registrations.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("registration/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("registration/repository/postgre.%s", method)
}
