package registration

import "errors"

var (
	ErrInvalidRepoName       = errors.New("repository name must look like owner/name")
	ErrDuplicateRegistration = errors.New("repository is already registered")
	ErrRegistrationNotFound  = errors.New("registration not found")
)
