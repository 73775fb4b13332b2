// Like HTTP handlers.
//
// This file exposes REST endpoints for likes under a post:
//   - GET  /posts/:id/likes  (list, paginated, public)
//   - POST /posts/:id/likes  (toggle)
//
// The toggle is idempotent in pairs: liking twice removes the like. The
// response status distinguishes the outcomes (201 created, 204 removed).
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bossnabeel/nexus-blog-app/internal/services"
	"github.com/bossnabeel/nexus-blog-app/internal/utils"
)

// LikeService defines the like operations consumed by HTTP handlers.
type LikeService interface {
	// Toggle flips userID's like on postID, reporting whether one was created.
	Toggle(ctx context.Context, postID, userID string) (created bool, err error)
	// List returns a page of likes on postID and the total count.
	List(ctx context.Context, postID string, page, limit int) ([]services.LikeView, int64, error)
}

// ListLikes godoc
// @ID          listLikes
// @Summary     List likes on a post (paginated)
// @Tags        Likes
// @Produce     json
// @Param       id     path   string  true   "Post ID (UUID)"  format(uuid)
// @Param       page   query  int     false  "Page number"     minimum(1) default(1)
// @Param       limit  query  int     false  "Items per page"  minimum(1) default(20)
// @Success     200  {object}  map[string]any
// @Router      /posts/{id}/likes [get]
func (h *Handlers) ListLikes(c *gin.Context) {
	page := utils.ClampPage(c.Query("page"))
	limit := utils.ClampLimit(c.Query("limit"), 20, 0)

	likes, total, err := h.likes.List(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	okPage(c, likes, utils.NewPagination(total, page, limit))
}

// ToggleLike godoc
// @ID          toggleLike
// @Summary     Toggle a like on a post
// @Description Creates the caller's like when absent (201) and removes it when present (204).
// @Tags        Likes
// @Produce     json
// @Param       id  path  string  true  "Post ID (UUID)"  format(uuid)
// @Success     201  {object}  map[string]any  "Like created"
// @Success     204  {string}  string          "Like removed"
// @Failure     401  {object}  map[string]any
// @Failure     404  {object}  map[string]any  "Post not found"
// @Failure     409  {object}  map[string]any  "Concurrent toggle"
// @Router      /posts/{id}/likes [post]
func (h *Handlers) ToggleLike(c *gin.Context) {
	created, err := h.likes.Toggle(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if created {
		okMessage(c, 201, "post liked")
		return
	}
	noContent(c)
}
