package domain

import (
	"fmt"
	"strings"
)

// RepoRef identifies a repository on the remote as owner/name
type RepoRef struct {
	Name  string
	Owner string
}

// ParseRepoRef splits an "owner/name" identifier.
// Anything other than exactly two non-empty parts is rejected.
func ParseRepoRef(s string) (RepoRef, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, &ConfigurationError{
			Reason: fmt.Sprintf("invalid repository %q", s),
			Hint:   "Repositories must be written as owner/name",
		}
	}
	return RepoRef{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the owner/name form
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}
