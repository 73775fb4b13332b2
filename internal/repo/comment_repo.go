// Package repo — repository functions for the Comment model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/domain"
)

// CreateComment inserts a new comment on postID and returns it with the
// author preloaded.
func CreateComment(ctx context.Context, db *gorm.DB, postID, userID, text string) (*domain.Comment, error) {
	c := &domain.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	var out domain.Comment
	if err := db.WithContext(ctx).Preload("User").Where("id = ?", c.ID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// CountComments returns the number of comments on postID.
func CountComments(ctx context.Context, db *gorm.DB, postID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("post_id = ?", postID).
		Count(&total).Error
	return total, err
}

// ListCommentsPage returns a page of comments on postID with authors
// preloaded, newest first.
func ListCommentsPage(ctx context.Context, db *gorm.DB, postID string, offset, limit int) ([]domain.Comment, error) {
	var out []domain.Comment
	err := db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListPostComments returns every comment on postID with authors preloaded,
// oldest first. Used when embedding comments into a single-post response.
func ListPostComments(ctx context.Context, db *gorm.DB, postID string) ([]domain.Comment, error) {
	var out []domain.Comment
	err := db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// CommentAndPostOwners reads the owner ids of a comment and its parent post
// inside one transaction so the ownership guard sees a consistent snapshot.
// Returns ErrNotFound when either row is missing.
func CommentAndPostOwners(ctx context.Context, db *gorm.DB, commentID, postID string) (commentOwner, postOwner string, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c struct{ UserID string }
		if err := tx.Model(&domain.Comment{}).
			Select("user_id").
			Where("id = ? AND post_id = ?", commentID, postID).
			Take(&c).Error; err != nil {
			return err
		}
		var p struct{ UserID string }
		if err := tx.Model(&domain.Post{}).
			Select("user_id").
			Where("id = ?", postID).
			Take(&p).Error; err != nil {
			return err
		}
		commentOwner, postOwner = c.UserID, p.UserID
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return commentOwner, postOwner, nil
}

// DeleteComment removes a comment. Returns ErrNotFound when no row was
// deleted.
func DeleteComment(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CommentCounts returns comment totals grouped by post id for the given
// posts. Posts without comments are absent from the map.
func CommentCounts(ctx context.Context, db *gorm.DB, postIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		PostID string
		N      int64
	}
	err := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.PostID] = r.N
	}
	return out, nil
}
