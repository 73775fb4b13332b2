package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

// asIdentity injects an identity without going through token resolution.
func asIdentity(id *domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != nil {
			c.Set(identityKey, id)
		}
		c.Next()
	}
}

func guardEngine(id *domain.Identity, guards ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorResponder(false))
	r.Use(asIdentity(id))
	handlers := append(guards, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"passed": true})
	})
	r.GET("/guarded/:id", handlers...)
	r.DELETE("/guarded/:id/comments/:cid", handlers...)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) (int, map[string]any) {
	t.Helper()
	return doJSON(t, r, httptest.NewRequest(http.MethodGet, path, nil))
}

func TestRequireLogin(t *testing.T) {
	r := guardEngine(nil, RequireLogin())
	code, body := get(t, r, "/guarded/x")
	if code != http.StatusUnauthorized {
		t.Fatalf("code = %d", code)
	}
	if body["message"] != "you're not login" {
		t.Fatalf("body = %v", body)
	}

	r = guardEngine(&domain.Identity{ID: "u1"}, RequireLogin())
	if code, _ := get(t, r, "/guarded/x"); code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
}

func TestRequireRole_Admin(t *testing.T) {
	r := guardEngine(&domain.Identity{ID: "u1", Role: domain.RoleUser}, RequireRole(domain.RoleAdmin))
	code, body := get(t, r, "/guarded/x")
	if code != http.StatusForbidden {
		t.Fatalf("code = %d", code)
	}
	if body["message"] != "Access Denied: Only Administrators can perform this action." {
		t.Fatalf("body = %v", body)
	}

	r = guardEngine(&domain.Identity{ID: "u1", Role: domain.RoleAdmin}, RequireRole(domain.RoleAdmin))
	if code, _ := get(t, r, "/guarded/x"); code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
}

func TestRequireRole_MissingIdentityIsServerFault(t *testing.T) {
	r := guardEngine(nil, RequireRole(domain.RoleAdmin))
	code, body := get(t, r, "/guarded/x")
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d", code)
	}
	if body["status"] != "error" {
		t.Fatalf("body = %v", body)
	}
}

func postFixture(t *testing.T, db *gorm.DB) (owner, stranger *domain.User, post *domain.Post) {
	t.Helper()
	owner = seedMWUser(t, db, "owner", domain.RoleUser)
	stranger = seedMWUser(t, db, "stranger", domain.RoleUser)
	p, err := repo.CreatePost(context.Background(), db, owner.ID, "t", "guarded target post")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	return owner, stranger, p
}

func TestRequirePostOwner(t *testing.T) {
	db := newMWDB(t)
	owner, stranger, p := postFixture(t, db)

	// Owner passes.
	r := guardEngine(&domain.Identity{ID: owner.ID}, RequirePostOwner(db))
	if code, _ := get(t, r, "/guarded/"+p.ID); code != http.StatusOK {
		t.Fatalf("owner code = %d", code)
	}

	// Non-owner is forbidden.
	r = guardEngine(&domain.Identity{ID: stranger.ID}, RequirePostOwner(db))
	code, body := get(t, r, "/guarded/"+p.ID)
	if code != http.StatusForbidden {
		t.Fatalf("stranger code = %d", code)
	}
	if body["message"] != "you are not authorized" {
		t.Fatalf("body = %v", body)
	}

	// Missing post is not-found, not forbidden.
	code, body = get(t, r, "/guarded/nope")
	if code != http.StatusNotFound {
		t.Fatalf("missing code = %d", code)
	}
	if body["message"] != "Post not found." {
		t.Fatalf("body = %v", body)
	}
}

func TestRequireCommentOwner(t *testing.T) {
	db := newMWDB(t)
	ctx := context.Background()
	postAuthor, commenter, p := postFixture(t, db)
	third := seedMWUser(t, db, "third", domain.RoleUser)

	c, err := repo.CreateComment(ctx, db, p.ID, commenter.ID, "hi")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	path := "/guarded/" + p.ID + "/comments/" + c.ID

	del := func(id *domain.Identity) (int, map[string]any) {
		r := guardEngine(id, RequireCommentOwner(db))
		return doJSON(t, r, httptest.NewRequest(http.MethodDelete, path, nil))
	}

	// Comment author passes.
	if code, _ := del(&domain.Identity{ID: commenter.ID}); code != http.StatusOK {
		t.Fatalf("comment author code = %d", code)
	}
	// Parent post author passes too.
	if code, _ := del(&domain.Identity{ID: postAuthor.ID}); code != http.StatusOK {
		t.Fatalf("post author code = %d", code)
	}
	// Anyone else is forbidden.
	code, body := del(&domain.Identity{ID: third.ID})
	if code != http.StatusForbidden {
		t.Fatalf("third party code = %d", code)
	}
	if body["message"] != "You are not authorized to delete this comment" {
		t.Fatalf("body = %v", body)
	}

	// Missing comment is not-found.
	r := guardEngine(&domain.Identity{ID: commenter.ID}, RequireCommentOwner(db))
	code, body = doJSON(t, r, httptest.NewRequest(http.MethodDelete, "/guarded/"+p.ID+"/comments/nope", nil))
	if code != http.StatusNotFound {
		t.Fatalf("missing code = %d", code)
	}
	if body["message"] != "comment doesn't exist" {
		t.Fatalf("body = %v", body)
	}
}
