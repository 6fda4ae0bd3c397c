package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeString strips any markup from free-text input (search terms,
// product names taken from the path) and lowercases the result.
func SanitizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(strictPolicy.Sanitize(s)))
}
