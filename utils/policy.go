package utils

// RoleAllowed reports whether the subject's role is in the allowed set. Kept
// as a pure function so access rules are testable without HTTP plumbing.
func RoleAllowed(role string, allowed []string) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
