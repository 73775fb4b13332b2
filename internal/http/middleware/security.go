// Package middleware — hardening headers for JSON APIs behind a proxy.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures the headers emitted by SecurityHeaders.
// EnableHSTS should only be set when traffic is HTTPS end-to-end; HSTS is
// never emitted for plain-HTTP requests regardless.
type SecurityOptions struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration // defaults to 180 days when <= 0
}

// SecurityHeaders returns a Gin middleware that adds a conservative set of
// security headers: nosniff, frame denial, no-referrer, a restrictive
// Permissions-Policy, and (opt-in, HTTPS only) Strict-Transport-Security.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	maxAge := int(opt.HSTSMaxAge.Seconds())
	if maxAge <= 0 {
		maxAge = int((180 * 24 * time.Hour).Seconds())
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")

		if opt.EnableHSTS && c.Request.TLS != nil {
			h.Set("Strict-Transport-Security",
				"max-age="+strconv.Itoa(maxAge)+"; includeSubDomains")
		}

		c.Next()
	}
}
