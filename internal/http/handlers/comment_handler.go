// Comment HTTP handlers.
//
// This file exposes REST endpoints for comments under a post:
//   - GET    /posts/:id/comments       (list, paginated, public)
//   - POST   /posts/:id/comments       (create)
//   - DELETE /posts/:id/comments/:cid  (delete, comment or post owner)
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/sanitize"
	"github.com/bossnabeel/nexus-blog-app/internal/services"
	"github.com/bossnabeel/nexus-blog-app/internal/utils"
	"github.com/bossnabeel/nexus-blog-app/internal/validation"
)

// CommentService defines the comment operations consumed by HTTP handlers.
type CommentService interface {
	// Create attaches a comment to postID on behalf of userID.
	Create(ctx context.Context, postID, userID, text string) (*services.CommentView, error)
	// List returns a page of comments on postID and the total count.
	List(ctx context.Context, postID string, page, limit int) ([]services.CommentView, int64, error)
	// Delete removes a comment by id.
	Delete(ctx context.Context, id string) error
}

// ListComments godoc
// @ID          listComments
// @Summary     List comments on a post (paginated)
// @Tags        Comments
// @Produce     json
// @Param       id     path   string  true   "Post ID (UUID)"  format(uuid)
// @Param       page   query  int     false  "Page number"     minimum(1) default(1)
// @Param       limit  query  int     false  "Items per page"  minimum(1) default(20)
// @Success     200  {object}  map[string]any
// @Router      /posts/{id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	page := utils.ClampPage(c.Query("page"))
	limit := utils.ClampLimit(c.Query("limit"), 20, 0)

	comments, total, err := h.comments.List(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	okPage(c, comments, utils.NewPagination(total, page, limit))
}

// CreateComment godoc
// @ID          createComment
// @Summary     Comment on a post
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       id    path  string                     true  "Post ID (UUID)"  format(uuid)
// @Param       body  body  validation.CommentRequest  true  "Comment payload"
// @Success     201  {object}  map[string]any
// @Failure     401  {object}  map[string]any
// @Failure     404  {object}  map[string]any  "Post not found"
// @Router      /posts/{id}/comments [post]
func (h *Handlers) CreateComment(c *gin.Context) {
	var req validation.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid JSON body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		fail(c, err)
		return
	}
	req.Text = sanitize.HTML(req.Text)

	v, err := h.comments.Create(c.Request.Context(), c.Param("id"), callerID(c), req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, 201, v)
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Description Allowed for the comment's author and the parent post's author.
// @Tags        Comments
// @Param       id   path  string  true  "Post ID (UUID)"     format(uuid)
// @Param       cid  path  string  true  "Comment ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     403  {object}  map[string]any
// @Failure     404  {object}  map[string]any  "Comment not found"
// @Router      /posts/{id}/comments/{cid} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	if err := h.comments.Delete(c.Request.Context(), c.Param("cid")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
