// Package services – CommentService
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

// CommentService implements the use-cases around post comments.
type CommentService struct {
	// DB is the database handle used for all comment operations.
	DB *gorm.DB
}

// CommentView is the public projection of a comment.
type CommentView struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
	User      Author    `json:"user"`
}

func newCommentView(c domain.Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		Text:      c.Text,
		PostID:    c.PostID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		User: Author{
			ID:       c.User.ID,
			Username: c.User.Username,
		},
	}
}

// Create attaches a comment to postID on behalf of userID. The target post
// must exist; commenting on a missing post is a not-found failure rather
// than a foreign-key error.
func (s *CommentService) Create(ctx context.Context, postID, userID, text string) (*CommentView, error) {
	if _, err := repo.GetPostOwner(ctx, s.DB, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}
	c, err := repo.CreateComment(ctx, s.DB, postID, userID, text)
	if err != nil {
		return nil, err
	}
	v := newCommentView(*c)
	return &v, nil
}

// List returns a page of comments on postID, newest first.
func (s *CommentService) List(ctx context.Context, postID string, page, limit int) ([]CommentView, int64, error) {
	total, err := repo.CountComments(ctx, s.DB, postID)
	if err != nil {
		return nil, 0, err
	}
	comments, err := repo.ListCommentsPage(ctx, s.DB, postID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, newCommentView(c))
	}
	return out, total, nil
}

// Delete removes a comment. Authorization (comment author or parent-post
// author) is enforced by the ownership guard before this runs.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := repo.DeleteComment(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.NotFound("comment doesn't exist")
		}
		return err
	}
	return nil
}
