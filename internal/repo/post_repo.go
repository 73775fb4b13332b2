// Package repo — repository functions for the Post model.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/domain"
)

// PostFilter narrows post listings. Username is an exact author match;
// Search is a case-insensitive substring (phrase) match over title and
// content.
type PostFilter struct {
	Username string
	Search   string
}

// CreatePost inserts a new post owned by userID.
func CreatePost(ctx context.Context, db *gorm.DB, userID, title, content string) (*domain.Post, error) {
	p := &domain.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetPost fetches a post with its author preloaded, or ErrNotFound.
func GetPost(ctx context.Context, db *gorm.DB, id string) (*domain.Post, error) {
	var p domain.Post
	err := db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPostOwner returns the owning user id of a post, or ErrNotFound.
// Ownership guards need only this column, not the whole row.
func GetPostOwner(ctx context.Context, db *gorm.DB, id string) (string, error) {
	var row struct{ UserID string }
	err := db.WithContext(ctx).
		Model(&domain.Post{}).
		Select("user_id").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return "", err
	}
	return row.UserID, nil
}

// UpdatePost overwrites title and content of a post and returns the updated
// row. Returns ErrNotFound when the post is missing.
func UpdatePost(ctx context.Context, db *gorm.DB, id, title, content string) (*domain.Post, error) {
	res := db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "content": content})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var p domain.Post
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePost removes a post. Comments and likes cascade via foreign keys.
// Returns ErrNotFound when no row was deleted.
func DeletePost(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// postFilterQuery applies f to a posts query.
func postFilterQuery(ctx context.Context, db *gorm.DB, f PostFilter) *gorm.DB {
	q := db.WithContext(ctx).Model(&domain.Post{})
	if f.Username != "" {
		q = q.Joins("JOIN users ON users.id = posts.user_id").
			Where("users.username = ?", f.Username)
	}
	if f.Search != "" {
		p := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ?)", p, p)
	}
	return q
}

// CountPosts returns the number of posts matching f.
func CountPosts(ctx context.Context, db *gorm.DB, f PostFilter) (int64, error) {
	var total int64
	err := postFilterQuery(ctx, db, f).Count(&total).Error
	return total, err
}

// ListPostsPage returns a page of posts matching f with authors preloaded,
// newest first.
func ListPostsPage(ctx context.Context, db *gorm.DB, f PostFilter, offset, limit int) ([]domain.Post, error) {
	var out []domain.Post
	err := postFilterQuery(ctx, db, f).
		Preload("User").
		Order("posts.created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
