package domain

import "strings"

// CanonicalID normalizes an external account id for comparison. Provider
// ids arrive as numbers in some payloads and strings in others; the gateway
// formats them as decimal strings, and this strips any stray whitespace from
// configuration values.
func CanonicalID(id string) string {
	return strings.TrimSpace(id)
}

// IsAdmin reports whether the identity is the configured admin account.
// Both sides are compared in canonical string form. This is the only admin
// check in the codebase; every gate must call it.
func IsAdmin(identity *Identity, adminID string) bool {
	if identity == nil {
		return false
	}
	id := CanonicalID(identity.ExternalID)
	admin := CanonicalID(adminID)
	if id == "" || admin == "" {
		return false
	}
	return id == admin
}
