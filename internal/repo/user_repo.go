// Package repo — repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/domain"
)

// CreateUser inserts a new user row. ID and CreatedAt are assigned here;
// the caller supplies the already-hashed password. Unique violations on
// username/email propagate as the raw driver error.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(u).Error
}

// GetUserByID fetches a user by primary key, or ErrNotFound.
func GetUserByID(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByUsername fetches a user by username, or ErrNotFound.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UserExists reports whether any account already uses the given username or
// email. Used as the registration duplicate precheck; the unique indexes
// remain the authority under races.
func UserExists(ctx context.Context, db *gorm.DB, username, email string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&n).Error
	return n > 0, err
}

// UpdateUser applies the non-empty profile fields to the user row and
// returns the updated record. Returns ErrNotFound when the row is missing.
func UpdateUser(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.User, error) {
	if len(fields) > 0 {
		res := db.WithContext(ctx).
			Model(&domain.User{}).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return GetUserByID(ctx, db, id)
}

// userSearchQuery scopes a users query to a case-insensitive substring match
// over username, first name, and last name. An empty search matches all.
func userSearchQuery(ctx context.Context, db *gorm.DB, search string) *gorm.DB {
	q := db.WithContext(ctx).Model(&domain.User{})
	if search != "" {
		p := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(username) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			p, p, p,
		)
	}
	return q
}

// CountUsers returns the number of users matching search.
func CountUsers(ctx context.Context, db *gorm.DB, search string) (int64, error) {
	var total int64
	err := userSearchQuery(ctx, db, search).Count(&total).Error
	return total, err
}

// SearchUsersPage returns a page of users matching search, ordered by
// creation time ascending (oldest accounts first).
func SearchUsersPage(ctx context.Context, db *gorm.DB, search string, offset, limit int) ([]domain.User, error) {
	var out []domain.User
	err := userSearchQuery(ctx, db, search).
		Order("created_at asc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
