package naming

import (
	"strings"

	"github.com/google/uuid"
)

// Naming for provisioned cloud resources.
// Project identifiers must satisfy the platform constraints: 6-30 chars,
// lowercase letters, digits and hyphens, starting with a letter.

const (
	projectPrefix = "firelift"

	// maxProjectIDLen is the platform limit for project identifiers.
	maxProjectIDLen = 30

	// ownerFragmentLen bounds how much of the requester id ends up in the
	// project id; the random token does the uniqueness work.
	ownerFragmentLen = 8

	suffixLen = 6
)

// ProjectID derives a collision-resistant project identifier from an opaque
// requester id: fixed prefix, a sanitized fragment of the owner, and a
// random token. Uniqueness is probabilistic only; the platform rejects
// collisions and the caller re-invokes to get a fresh id.
func ProjectID(ownerID string) string {
	owner := sanitize(ownerID, ownerFragmentLen)
	token := randomToken(suffixLen)

	parts := []string{projectPrefix}
	if owner != "" {
		parts = append(parts, owner)
	}
	parts = append(parts, token)

	id := strings.Join(parts, "-")
	if len(id) > maxProjectIDLen {
		id = strings.TrimSuffix(id[:maxProjectIDLen], "-")
	}
	return id
}

// DatabaseID is the identifier of the default document database.
func DatabaseID() string {
	return "(default)"
}

// RulesRelease is the release name that activates a ruleset for the
// document database of the given project.
func RulesRelease(projectID string) string {
	return "projects/" + projectID + "/releases/cloud.firestore"
}

// sanitize lowercases the input, keeps only [a-z0-9-], trims
// leading/trailing hyphens and truncates to max characters.
func sanitize(s string, max int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
		if b.Len() >= max {
			break
		}
	}
	return strings.Trim(b.String(), "-")
}

// randomToken returns n characters of a fresh UUID with hyphens removed.
func randomToken(n int) string {
	u := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(u) {
		n = len(u)
	}
	return u[:n]
}
