package contacts

import (
	"regexp"
	"strings"

	"github.com/dresiko/media-match-homework/internal/model"
)

var (
	quoteChars = regexp.MustCompile(`['’"]`)
	whitespace = regexp.MustCompile(`\s+`)
	invalid    = regexp.MustCompile(`[^a-z0-9-]`)
)

// NormalizeName converts a reporter display name into its directory lookup
// key: lowercase, apostrophes and quotes stripped, whitespace collapsed to
// hyphens, everything outside [a-z0-9-] removed. The same normalization is
// applied to storage keys and query-time lookups, and it is idempotent.
func NormalizeName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = quoteChars.ReplaceAllString(key, "")
	key = whitespace.ReplaceAllString(key, "-")
	return invalid.ReplaceAllString(key, "")
}

// Directory is a read-only reporter contact lookup. Resolve returns
// (nil, nil) when the reporter is simply not listed; errors are reserved for
// store failures.
type Directory interface {
	Resolve(name string) (*model.ContactInfo, error)
	Search(query string) ([]model.ContactInfo, error)
	All() ([]model.ContactInfo, error)
}
