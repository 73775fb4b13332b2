// Package services – PostService
//
// This file implements post publishing and retrieval, including the list
// view (pagination, author filter, phrase search, content previews) and the
// single-post view with per-caller personalization: IsLiked is computed only
// against the caller's own id and is always false for anonymous callers, so
// responses never reveal whether anyone else liked a post.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

// previewRunes caps the content preview length in list responses.
const previewRunes = 200

// PostService implements the use-cases around blog posts.
type PostService struct {
	// DB is the database handle used for all post operations.
	DB *gorm.DB
}

// Author is the public projection of a post or comment author.
type Author struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// PostSummary is one entry of the post list view.
type PostSummary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	Author        Author    `json:"author"`
	IsLiked       bool      `json:"isLiked"`
	LikesCount    int64     `json:"likesCount"`
	CommentsCount int64     `json:"commentsCount"`
}

// PostDetail is the single-post view with embedded comments.
type PostDetail struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	CreatedAt     time.Time     `json:"created_at"`
	Author        Author        `json:"author"`
	Comments      []CommentView `json:"comments"`
	CommentsCount int64         `json:"commentsCount"`
	IsLiked       bool          `json:"isLiked"`
	LikesCount    int64         `json:"likesCount"`
}

// ListPostsQuery narrows and pages the post list. CallerID is empty for
// anonymous requests.
type ListPostsQuery struct {
	Username string
	Search   string
	Page     int
	Limit    int
	CallerID string
}

// Create publishes a new post owned by userID. Title and content arrive
// validated and sanitized.
func (s *PostService) Create(ctx context.Context, userID, title, content string) (*domain.Post, error) {
	return repo.CreatePost(ctx, s.DB, userID, title, content)
}

// Update overwrites the title and content of a post.
func (s *PostService) Update(ctx context.Context, id, title, content string) (*domain.Post, error) {
	p, err := repo.UpdatePost(ctx, s.DB, id, title, content)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("Post not found.")
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a post; its comments and likes cascade.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := repo.DeletePost(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.NotFound("Post not found.")
		}
		return err
	}
	return nil
}

// Get returns the single-post view. IsLiked reflects only callerID's own
// like; it is false when callerID is empty.
func (s *PostService) Get(ctx context.Context, id, callerID string) (*PostDetail, error) {
	p, err := repo.GetPost(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}

	comments, err := repo.ListPostComments(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	likes, err := repo.CountLikes(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	isLiked := false
	if callerID != "" {
		if isLiked, err = repo.LikeExists(ctx, s.DB, id, callerID); err != nil {
			return nil, err
		}
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, newCommentView(c))
	}
	return &PostDetail{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		Author: Author{
			ID:        p.User.ID,
			Username:  p.User.Username,
			FirstName: p.User.FirstName,
			LastName:  p.User.LastName,
		},
		Comments:      views,
		CommentsCount: int64(len(comments)),
		IsLiked:       isLiked,
		LikesCount:    likes,
	}, nil
}

// List returns a page of post summaries matching q, newest first, with
// engagement counts resolved in grouped queries rather than per row.
func (s *PostService) List(ctx context.Context, q ListPostsQuery) ([]PostSummary, int64, error) {
	f := repo.PostFilter{
		Username: q.Username,
		Search:   strings.ReplaceAll(q.Search, "+", " "),
	}
	total, err := repo.CountPosts(ctx, s.DB, f)
	if err != nil {
		return nil, 0, err
	}
	posts, err := repo.ListPostsPage(ctx, s.DB, f, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	likeCounts, err := repo.LikeCounts(ctx, s.DB, ids)
	if err != nil {
		return nil, 0, err
	}
	commentCounts, err := repo.CommentCounts(ctx, s.DB, ids)
	if err != nil {
		return nil, 0, err
	}
	liked, err := repo.LikedSet(ctx, s.DB, q.CallerID, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostSummary{
			ID:        p.ID,
			Title:     p.Title,
			Content:   preview(p.Content),
			CreatedAt: p.CreatedAt,
			Author: Author{
				ID:       p.User.ID,
				Username: p.User.Username,
			},
			IsLiked:       liked[p.ID],
			LikesCount:    likeCounts[p.ID],
			CommentsCount: commentCounts[p.ID],
		})
	}
	return out, total, nil
}

// preview truncates content for list responses, appending an ellipsis when
// anything was cut.
func preview(content string) string {
	r := []rune(content)
	if len(r) <= previewRunes {
		return content
	}
	return string(r[:previewRunes]) + "..."
}
