package utils

import (
	"regexp"
	"strings"
)

// accountIDPattern matches the 24-character hex tokens used as external
// account references.
var accountIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidAccountID reports whether s is a well-formed account identifier.
func IsValidAccountID(s string) bool {
	return accountIDPattern.MatchString(s)
}

// FilterAccountIDs drops malformed account identifiers without reporting
// them. Clients routinely send junk here and the stored list must only
// ever contain well-formed tokens.
func FilterAccountIDs(ids []string) []string {
	filtered := make([]string, 0, len(ids))
	for _, id := range ids {
		if IsValidAccountID(id) {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

// FilterBlankStrings removes empty and whitespace-only entries, keeping
// order and duplicates.
func FilterBlankStrings(items []string) []string {
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// TruncateWithEllipsis shortens s to max characters, appending "..." only
// when something was cut off.
func TruncateWithEllipsis(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
