// Post HTTP handlers.
//
// This file exposes REST endpoints for post resources:
//   - GET    /posts      (list, paginated, optional auth)
//   - POST   /posts      (create)
//   - GET    /posts/:id  (detail with comments, optional auth)
//   - PATCH  /posts/:id  (update, owner only)
//   - DELETE /posts/:id  (delete, owner only)
//
// Titles and content pass through the HTML sanitizer after validation, so
// stored markup is limited to the allowlisted inline tags.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/sanitize"
	"github.com/bossnabeel/nexus-blog-app/internal/services"
	"github.com/bossnabeel/nexus-blog-app/internal/utils"
	"github.com/bossnabeel/nexus-blog-app/internal/validation"
)

// PostService defines the post operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PostService interface {
	// Create publishes a new post owned by userID.
	Create(ctx context.Context, userID, title, content string) (*domain.Post, error)
	// Update overwrites the title and content of a post.
	Update(ctx context.Context, id, title, content string) (*domain.Post, error)
	// Delete removes a post; its comments and likes cascade.
	Delete(ctx context.Context, id string) error
	// Get returns the single-post view personalized for callerID.
	Get(ctx context.Context, id, callerID string) (*services.PostDetail, error)
	// List returns a page of post summaries matching q and the total count.
	List(ctx context.Context, q services.ListPostsQuery) ([]services.PostSummary, int64, error)
}

// bindPostRequest binds, validates, and sanitizes a post payload.
func bindPostRequest(c *gin.Context) (validation.PostRequest, bool) {
	var req validation.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid JSON body"))
		return req, false
	}
	if err := validation.Struct(req); err != nil {
		fail(c, err)
		return req, false
	}
	req.Title = sanitize.HTML(req.Title)
	req.Content = sanitize.HTML(req.Content)
	return req, true
}

// ListPosts godoc
// @ID          listPosts
// @Summary     List posts (paginated)
// @Description Newest first. Filters: username (exact author), search (case-insensitive phrase over title and content, '+' separates words). isLiked reflects the caller only.
// @Tags        Posts
// @Produce     json
// @Param       username  query  string  false  "Filter by author username"
// @Param       search    query  string  false  "Search phrase"
// @Param       page      query  int     false  "Page number"     minimum(1) default(1)
// @Param       limit     query  int     false  "Items per page"  minimum(1) maximum(100) default(10)
// @Success     200  {object}  map[string]any
// @Router      /posts [get]
func (h *Handlers) ListPosts(c *gin.Context) {
	page := utils.ClampPage(c.Query("page"))
	limit := utils.ClampLimit(c.Query("limit"), 10, 100)

	posts, total, err := h.posts.List(c.Request.Context(), services.ListPostsQuery{
		Username: c.Query("username"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
		CallerID: callerID(c),
	})
	if err != nil {
		fail(c, err)
		return
	}
	okPage(c, posts, utils.NewPagination(total, page, limit))
}

// GetPost godoc
// @ID          getPost
// @Summary     Get a post with its comments
// @Tags        Posts
// @Produce     json
// @Param       id  path  string  true  "Post ID (UUID)"  format(uuid)
// @Success     200  {object}  map[string]any
// @Failure     404  {object}  map[string]any  "Post not found"
// @Router      /posts/{id} [get]
func (h *Handlers) GetPost(c *gin.Context) {
	p, err := h.posts.Get(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, 200, p)
}

// CreatePost godoc
// @ID          createPost
// @Summary     Create a post
// @Tags        Posts
// @Accept      json
// @Produce     json
// @Param       body  body  validation.PostRequest  true  "Post payload"
// @Success     201  {object}  map[string]any
// @Failure     401  {object}  map[string]any
// @Failure     403  {object}  map[string]any  "Validation failure"
// @Router      /posts [post]
func (h *Handlers) CreatePost(c *gin.Context) {
	req, okReq := bindPostRequest(c)
	if !okReq {
		return
	}
	p, err := h.posts.Create(c.Request.Context(), callerID(c), req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, 201, p)
}

// UpdatePost godoc
// @ID          updatePost
// @Summary     Update a post
// @Tags        Posts
// @Accept      json
// @Produce     json
// @Param       id    path  string                  true  "Post ID (UUID)"  format(uuid)
// @Param       body  body  validation.PostRequest  true  "Post payload"
// @Success     200  {object}  map[string]any
// @Failure     403  {object}  map[string]any  "Not the owner"
// @Failure     404  {object}  map[string]any  "Post not found"
// @Router      /posts/{id} [patch]
func (h *Handlers) UpdatePost(c *gin.Context) {
	req, okReq := bindPostRequest(c)
	if !okReq {
		return
	}
	p, err := h.posts.Update(c.Request.Context(), c.Param("id"), req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, 200, p)
}

// DeletePost godoc
// @ID          deletePost
// @Summary     Delete a post
// @Description Removes the post and, by cascade, its comments and likes.
// @Tags        Posts
// @Param       id  path  string  true  "Post ID (UUID)"  format(uuid)
// @Success     204  {string}  string  "No Content"
// @Failure     403  {object}  map[string]any  "Not the owner"
// @Failure     404  {object}  map[string]any  "Post not found"
// @Router      /posts/{id} [delete]
func (h *Handlers) DeletePost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
