// Package middleware — identity resolution and authorization guards.
//
// Identity() runs on every API request: it locates a bearer credential
// (Authorization header, falling back to the jwt cookie), verifies it, and
// resolves it to a fresh Identity from the database. A missing credential is
// not a failure — anonymous access is valid for read-only endpoints. The
// guards below compose by sequential chaining; the first raised failure
// short-circuits the rest of the chain and the handler.
package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/auth"
	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

// identityKey is the Gin context key holding the resolved *domain.Identity.
const identityKey = "identity"

// Abort records a pipeline failure on the context and stops the chain.
// The terminal error responder turns it into the uniform JSON body.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// IdentityFrom returns the identity resolved for this request, or nil when
// the request is anonymous.
func IdentityFrom(c *gin.Context) *domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(*domain.Identity); ok {
			return id
		}
	}
	return nil
}

// bearerToken extracts the credential from the Authorization header.
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Identity resolves the request's credential to an identity, or leaves the
// request anonymous when no credential is present.
//
// A present-but-invalid token is an auth failure. A valid token whose account
// was deleted since issuance fails with a distinct message so revoked
// accounts can be told apart from bad tokens in logs, though both map to 401.
func Identity(db *gorm.DB, secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if v, err := c.Cookie(cookieName); err == nil {
				token = v
			}
		}
		if token == "" {
			c.Next()
			return
		}

		claims, err := auth.Verify(token, secret)
		if err != nil {
			Abort(c, apperr.Auth("invalid or expired token"))
			return
		}

		u, err := repo.GetUserByID(c.Request.Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				Abort(c, apperr.Auth("user no longer exist"))
				return
			}
			Abort(c, err)
			return
		}

		c.Set(identityKey, &domain.Identity{ID: u.ID, Username: u.Username, Role: u.Role})
		c.Next()
	}
}

// RequireLogin rejects anonymous requests.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c) == nil {
			Abort(c, apperr.Auth("you're not login"))
			return
		}
		c.Next()
	}
}

// RequireRole rejects callers whose role differs from role. It must run after
// RequireLogin; a missing identity here is a wiring bug, reported as a server
// fault rather than masked as 401.
func RequireRole(role string) gin.HandlerFunc {
	msg := fmt.Sprintf("Access Denied: %s role required.", role)
	if role == domain.RoleAdmin {
		msg = "Access Denied: Only Administrators can perform this action."
	}
	return func(c *gin.Context) {
		id := IdentityFrom(c)
		if id == nil {
			Abort(c, apperr.Internal("role check without resolved identity"))
			return
		}
		if id.Role != role {
			Abort(c, apperr.Forbidden(msg))
			return
		}
		c.Next()
	}
}

// RequirePostOwner rejects callers that do not own the post named by the
// :id route parameter. A missing post is not-found, not forbidden.
func RequirePostOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := IdentityFrom(c)
		if id == nil {
			Abort(c, apperr.Internal("ownership check without resolved identity"))
			return
		}
		owner, err := repo.GetPostOwner(c.Request.Context(), db, c.Param("id"))
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				Abort(c, apperr.NotFound("Post not found."))
				return
			}
			Abort(c, err)
			return
		}
		if owner != id.ID {
			Abort(c, apperr.Forbidden("you are not authorized"))
			return
		}
		c.Next()
	}
}

// RequireCommentOwner authorizes comment deletion: the comment's author and
// the parent post's author both qualify. Both owner ids are read in one
// transaction so the check never sees a torn view; if either row is missing
// the result is not-found, not forbidden.
func RequireCommentOwner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := IdentityFrom(c)
		if id == nil {
			Abort(c, apperr.Internal("ownership check without resolved identity"))
			return
		}
		commentOwner, postOwner, err := repo.CommentAndPostOwners(
			c.Request.Context(), db, c.Param("cid"), c.Param("id"))
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				Abort(c, apperr.NotFound("comment doesn't exist"))
				return
			}
			Abort(c, err)
			return
		}
		if commentOwner != id.ID && postOwner != id.ID {
			Abort(c, apperr.Forbidden("You are not authorized to delete this comment"))
			return
		}
		c.Next()
	}
}
