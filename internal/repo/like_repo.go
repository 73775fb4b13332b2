// Package repo — repository functions for the Like model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/domain"
)

// GetLike fetches the like row for (postID, userID), or ErrNotFound.
func GetLike(ctx context.Context, db *gorm.DB, postID, userID string) (*domain.Like, error) {
	var l domain.Like
	err := db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLike inserts a like row for (postID, userID). A concurrent toggle
// surfaces as a unique-constraint violation, propagated raw.
func CreateLike(ctx context.Context, db *gorm.DB, postID, userID string) error {
	l := &domain.Like{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(l).Error
}

// DeleteLike removes a like row by id.
func DeleteLike(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Like{}).Error
}

// LikeExists reports whether userID has liked postID. The check is scoped to
// the caller's own id so responses never leak other users' like state.
func LikeExists(ctx context.Context, db *gorm.DB, postID, userID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&n).Error
	return n > 0, err
}

// CountLikes returns the number of likes on postID.
func CountLikes(ctx context.Context, db *gorm.DB, postID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("post_id = ?", postID).
		Count(&total).Error
	return total, err
}

// ListLikesPage returns a page of likes on postID with the liking users
// preloaded, newest first.
func ListLikesPage(ctx context.Context, db *gorm.DB, postID string, offset, limit int) ([]domain.Like, error) {
	var out []domain.Like
	err := db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// LikeCounts returns like totals grouped by post id for the given posts.
// Posts without likes are absent from the map.
func LikeCounts(ctx context.Context, db *gorm.DB, postIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		PostID string
		N      int64
	}
	err := db.WithContext(ctx).
		Model(&domain.Like{}).
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

// LikedSet returns the subset of postIDs that userID has liked.
func LikedSet(ctx context.Context, db *gorm.DB, userID string, postIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(postIDs))
	if userID == "" || len(postIDs) == 0 {
		return out, nil
	}
	var ids []string
	err := db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
