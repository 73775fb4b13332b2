// Package sanitize strips disallowed markup from free-text fields before they
// are persisted. It wraps a bluemonday policy with a fixed allow-list:
// b, i, em, strong, and a (href only). Everything else — scripts, styles,
// images, event handlers — is removed.
//
// Sanitization runs strictly after validation (it operates on shape-checked
// strings) and strictly before persistence. It never fails.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong")
	p.AllowAttrs("href").OnElements("a")
	return p
}()

// HTML returns s with all markup outside the allow-list removed.
// Plain text passes through unchanged.
func HTML(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
