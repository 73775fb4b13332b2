// Package services defines the business logic for users, posts, comments,
// likes, and statistics. Services depend on an explicitly injected *gorm.DB
// handle and the thin repo layer; predictable failures are returned as typed
// apperr values constructed at the point of detection, so the HTTP layer's
// terminal responder can map them without reinterpretation.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/auth"
	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

// UserService implements registration, login, profile, and user search.
type UserService struct {
	// DB is the database handle used for all user operations.
	DB *gorm.DB
	// Secret signs issued credentials.
	Secret string
	// TokenTTL bounds credential validity (and the auth cookie lifetime).
	TokenTTL time.Duration
}

// RegisterInput carries the validated registration fields.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// UpdateInput carries the optional profile fields for PATCH /users/me.
// Empty fields are left untouched.
type UpdateInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
}

// UserSummary is the public projection of an account used in search results.
type UserSummary struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"created_at"`
}

// Register creates an account and issues a credential.
//
// A duplicate username or email is reported as a validation failure, never as
// a raw database error. The precheck races with concurrent registrations; if
// the unique index fires at write time the result is a conflict failure.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	taken, err := repo.UserExists(ctx, s.DB, in.Username, in.Email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", apperr.Validation("User already exist try different email or username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Username:  in.Username,
		Email:     strings.ToLower(in.Email),
		Password:  string(hash),
		Role:      domain.RoleUser,
	}
	if err := repo.CreateUser(ctx, s.DB, u); err != nil {
		if repo.IsDuplicate(err) {
			return nil, "", apperr.Conflict("username or email already taken")
		}
		return nil, "", err
	}

	token, err := auth.Issue(u, s.Secret, s.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies a username/password pair and issues a credential.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	u, err := repo.GetUserByUsername(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", apperr.Auth("Invalid username")
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, "", apperr.Auth("Invalid password")
	}
	token, err := auth.Issue(u, s.Secret, s.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Me returns the caller's full profile.
func (s *UserService) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := repo.GetUserByID(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

// Update applies the non-empty fields of in to the caller's profile.
// Username/email collisions surface as conflict failures.
func (s *UserService) Update(ctx context.Context, userID string, in UpdateInput) (*domain.User, error) {
	fields := map[string]any{}
	if in.FirstName != "" {
		fields["first_name"] = in.FirstName
	}
	if in.LastName != "" {
		fields["last_name"] = in.LastName
	}
	if in.Username != "" {
		fields["username"] = in.Username
	}
	if in.Email != "" {
		fields["email"] = strings.ToLower(in.Email)
	}
	u, err := repo.UpdateUser(ctx, s.DB, userID, fields)
	if err != nil {
		switch {
		case repo.IsDuplicate(err):
			return nil, apperr.Conflict("username or email already taken")
		case errors.Is(err, repo.ErrNotFound):
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

// Search returns a page of users matching the given term (case-insensitive
// substring over username and names; '+' separates words of a phrase).
func (s *UserService) Search(ctx context.Context, search string, page, limit int) ([]UserSummary, int64, error) {
	search = strings.ReplaceAll(search, "+", " ")
	total, err := repo.CountUsers(ctx, s.DB, search)
	if err != nil {
		return nil, 0, err
	}
	users, err := repo.SearchUsersPage(ctx, s.DB, search, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, total, nil
}
