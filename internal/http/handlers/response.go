// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they bind and validate input, call application
// services, and translate results into HTTP responses. Success bodies share
// one envelope:
//
//	{ "status": "success", "data": ..., "pagination": {...}? }
//
// Failures are never written here. fail() records the error on the Gin
// context and aborts; the terminal error responder middleware owns the
// error body shape, so a failure looks the same no matter which stage of
// the pipeline raised it.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bossnabeel/nexus-blog-app/internal/http/middleware"
)

// CookieOptions configures the auth cookie written on register and login.
type CookieOptions struct {
	// Name is the cookie name (JWT_COOKIE_NAME).
	Name string
	// MaxAge matches the credential TTL.
	MaxAge time.Duration
	// Secure marks the cookie HTTPS-only (production).
	Secure bool
}

// fail records err on the context and stops the chain. The terminal error
// responder turns it into the uniform error body.
func fail(c *gin.Context, err error) {
	middleware.Abort(c, err)
}

// ok writes a success envelope with the given payload.
func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

// okPage writes a success envelope carrying a list page and its pagination
// metadata.
func okPage(c *gin.Context, data, pagination any) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"data":       data,
		"pagination": pagination,
	})
}

// okMessage writes a success envelope carrying only a human-readable message.
func okMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"status": "success", "message": msg})
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// setAuthCookie attaches the issued credential as an httpOnly cookie so
// browser clients authenticate without handling the token themselves.
func (h *Handlers) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookies.Name, token, int(h.cookies.MaxAge.Seconds()), "/", "", h.cookies.Secure, true)
}

// clearAuthCookie expires the auth cookie.
func (h *Handlers) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookies.Name, "", -1, "/", "", h.cookies.Secure, true)
}

// callerID returns the authenticated caller's id, or "" for anonymous
// requests.
func callerID(c *gin.Context) string {
	if id := middleware.IdentityFrom(c); id != nil {
		return id.ID
	}
	return ""
}
