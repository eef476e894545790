// Package validate holds the input checks shared by signup and profile
// updates: username/email format validation and URL sanitization for
// user-authored links rendered on public portfolio pages.
package validate

import (
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_-]{3,30}$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	schemeRegex   = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*:`)
)

// SocialPlatforms is the fixed key set a profile may link out to.
// Anything else in the incoming socialLinks object is dropped.
var SocialPlatforms = []string{"github", "linkedin", "twitter", "instagram", "website", "email"}

func Username(s string) bool {
	return usernameRegex.MatchString(s)
}

func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// SanitizeURL trims the value and allows only http:, https:, mailto: or
// schemeless strings. Every other scheme (javascript:, data:, vbscript:,
// file:, ...) returns "". Links end up in href attributes on the public
// page, so the whitelist is the contract here.
func SanitizeURL(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	if !schemeRegex.MatchString(trimmed) {
		return trimmed
	}

	lower := strings.ToLower(trimmed)
	for _, allowed := range []string{"http:", "https:", "mailto:"} {
		if strings.HasPrefix(lower, allowed) {
			return trimmed
		}
	}
	return ""
}

// SanitizeSocialLinks keeps only the fixed platform keys, only when the
// value is a non-empty string, and passes each through SanitizeURL.
// Non-string values are dropped silently, same as unknown keys.
func SanitizeSocialLinks(in map[string]any) map[string]string {
	out := make(map[string]string)
	if in == nil {
		return out
	}
	for _, key := range SocialPlatforms {
		if v, ok := in[key]; ok {
			if s, isString := v.(string); isString && s != "" {
				out[key] = SanitizeURL(s)
			}
		}
	}
	return out
}
