package postgre

import (
	"fmt"
	"strings"

	repo "git-telegram-bridge/internal/registration/repository"
)

// buildGetOneQuery builds the WHERE clause and args for GetOneRegistration.
// The github_repo filter compares case-insensitively, which is what the
// admission pipeline's lookup contract requires; the migration adds a unique
// index on LOWER(github_repo) so the match can never be ambiguous.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneRegistrationOptions) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.GitHubRepo != "" {
		args = append(args, strings.ToLower(opt.GitHubRepo))
		conds = append(conds, fmt.Sprintf("LOWER(github_repo) = $%d", len(args)))
	}
	if opt.Secret != "" {
		args = append(args, opt.Secret)
		conds = append(conds, fmt.Sprintf("secret = $%d", len(args)))
	}

	if len(conds) == 0 {
		// No filters would match everything; force an empty result instead.
		return "FALSE", nil
	}
	return strings.Join(conds, " AND "), args
}
