package registration

import "regexp"

// repoNameRe matches "owner/name": alphanumerics plus -_. on both sides of a
// single slash. Spaces, missing slash, and double slash all fail.
var repoNameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+/[A-Za-z0-9._-]+$`)

// IsValidRepoName reports whether s is a well-formed GitHub repository
// identifier.
func IsValidRepoName(s string) bool {
	return repoNameRe.MatchString(s)
}
