// Package services – LikeService
//
// Toggle-Like is an idempotent toggle, not a strict create: liking a post
// twice removes the like again. Repeated toggles are never an error. The
// unique (post_id, user_id) index backstops the check-then-write race; a
// violation at insert time is reported as a conflict failure, not a crash.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

// LikeService implements the use-cases around post likes.
type LikeService struct {
	// DB is the database handle used for all like operations.
	DB *gorm.DB
}

// LikeView is the public projection of a like row.
type LikeView struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	User      struct {
		Username string `json:"username"`
	} `json:"user"`
}

// Toggle flips userID's like on postID. It reports created=true when a like
// row was added and created=false when an existing one was removed.
func (s *LikeService) Toggle(ctx context.Context, postID, userID string) (created bool, err error) {
	if _, err := repo.GetPostOwner(ctx, s.DB, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, apperr.NotFound("post not found")
		}
		return false, err
	}

	existing, err := repo.GetLike(ctx, s.DB, postID, userID)
	switch {
	case err == nil:
		return false, repo.DeleteLike(ctx, s.DB, existing.ID)
	case errors.Is(err, repo.ErrNotFound):
		if err := repo.CreateLike(ctx, s.DB, postID, userID); err != nil {
			if repo.IsDuplicate(err) {
				// Lost the race against a concurrent toggle.
				return false, apperr.Conflict("post already liked")
			}
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// List returns a page of likes on postID with the liking users, newest first.
func (s *LikeService) List(ctx context.Context, postID string, page, limit int) ([]LikeView, int64, error) {
	total, err := repo.CountLikes(ctx, s.DB, postID)
	if err != nil {
		return nil, 0, err
	}
	likes, err := repo.ListLikesPage(ctx, s.DB, postID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]LikeView, 0, len(likes))
	for _, l := range likes {
		v := LikeView{
			ID:        l.ID,
			PostID:    l.PostID,
			UserID:    l.UserID,
			CreatedAt: l.CreatedAt,
		}
		v.User.Username = l.User.Username
		out = append(out, v)
	}
	return out, total, nil
}
