// Package repo — aggregate statistics queries for the admin dashboard and
// per-user activity summaries. Each function is context-aware and safe to
// call from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/domain"
)

// Totals holds site-wide row counts.
type Totals struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// TotalCounts returns site-wide totals read inside one transaction so the
// four counts come from a single logical snapshot.
func TotalCounts(ctx context.Context, db *gorm.DB) (Totals, error) {
	var t Totals
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.User{}).Count(&t.Users).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Post{}).Count(&t.Posts).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Like{}).Count(&t.Likes).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Comment{}).Count(&t.Comments).Error
	})
	return t, err
}

// Activity holds recent engagement counts for one author.
type Activity struct {
	LikesReceived    int64
	CommentsReceived int64
	PostsCreated     int64
}

// UserActivity returns, for the author userID, the likes and comments
// received on their posts and the posts they created since the given time.
func UserActivity(ctx context.Context, db *gorm.DB, userID string, since time.Time) (Activity, error) {
	var a Activity
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Like{}).
			Joins("JOIN posts ON posts.id = likes.post_id").
			Where("posts.user_id = ? AND likes.created_at >= ?", userID, since).
			Count(&a.LikesReceived).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Comment{}).
			Joins("JOIN posts ON posts.id = comments.post_id").
			Where("posts.user_id = ? AND comments.created_at >= ?", userID, since).
			Count(&a.CommentsReceived).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Post{}).
			Where("user_id = ? AND created_at >= ?", userID, since).
			Count(&a.PostsCreated).Error
	})
	return a, err
}
