package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"git-telegram-bridge/internal/model"
	repo "git-telegram-bridge/internal/registration/repository"
)

// CreateRegistration inserts a new Registration row and returns the created
// entity. A unique-violation (duplicate secret or repository) surfaces as
// repo.ErrDuplicate so the caller can distinguish it from an outage.
func (r *implRepository) CreateRegistration(ctx context.Context, opt repo.CreateRegistrationOptions) (model.Registration, error) {
	const query = `
		INSERT INTO registrations (id, github_repo, chat_id, secret, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, github_repo, chat_id, secret, created_at`

	var reg model.Registration
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.GitHubRepo, opt.ChatID, opt.Secret).Scan(
		&reg.ID, &reg.GitHubRepo, &reg.ChatID, &reg.Secret, &reg.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.Registration{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRegistration"), err)
		return model.Registration{}, repo.ErrFailedToInsert
	}
	return reg, nil
}

// GetOneRegistration retrieves a single Registration by the provided filters
// (AND condition). Returns zero-value Registration (ID == "") when not found —
// do NOT return error for not-found.
func (r *implRepository) GetOneRegistration(ctx context.Context, opt repo.GetOneRegistrationOptions) (model.Registration, error) {
	mods, args := r.buildGetOneQuery(opt)
	baseQuery := `SELECT id, github_repo, chat_id, secret, created_at FROM registrations`
	query := fmt.Sprintf("%s WHERE %s LIMIT 1", baseQuery, mods)

	var reg model.Registration
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&reg.ID, &reg.GitHubRepo, &reg.ChatID, &reg.Secret, &reg.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Registration{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRegistration"), err)
		return model.Registration{}, repo.ErrFailedToGet
	}
	return reg, nil
}
