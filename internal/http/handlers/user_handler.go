// User HTTP handlers.
//
// This file exposes REST endpoints for account resources:
//   - POST  /users/register  (create account, issue credential)
//   - POST  /users/login     (verify password, issue credential)
//   - GET   /users/logout    (expire the auth cookie)
//   - GET   /users           (search accounts, paginated)
//   - GET   /users/me        (own profile)
//   - PATCH /users/me        (update own profile)
//   - GET   /users/me/stats  (own 30-day activity)
//
// It also declares the Handlers aggregate and its service contracts.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
	"github.com/bossnabeel/nexus-blog-app/internal/services"
	"github.com/bossnabeel/nexus-blog-app/internal/utils"
	"github.com/bossnabeel/nexus-blog-app/internal/validation"
)

//
// Service contracts (context-aware)
//

// UserService defines the account operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type UserService interface {
	// Register creates an account and issues a credential.
	Register(ctx context.Context, in services.RegisterInput) (*domain.User, string, error)
	// Login verifies a username/password pair and issues a credential.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	// Me returns the caller's full profile.
	Me(ctx context.Context, userID string) (*domain.User, error)
	// Update applies the non-empty fields of in to the caller's profile.
	Update(ctx context.Context, userID string, in services.UpdateInput) (*domain.User, error)
	// Search returns a page of users matching search and the total count.
	Search(ctx context.Context, search string, page, limit int) ([]services.UserSummary, int64, error)
}

// StatService defines the statistics operations consumed by HTTP handlers.
type StatService interface {
	// AdminStats returns site-wide row totals.
	AdminStats(ctx context.Context) (repo.Totals, error)
	// MyStats returns the caller's engagement over the last 30 days.
	MyStats(ctx context.Context, userID string) (services.UserStats, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for users, posts, comments, likes, and
// statistics. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	users    UserService
	posts    PostService
	comments CommentService
	likes    LikeService
	stats    StatService
	cookies  CookieOptions
}

// New constructs a Handlers instance bound to the given services.
func New(users UserService, posts PostService, comments CommentService, likes LikeService, stats StatService, cookies CookieOptions) *Handlers {
	return &Handlers{
		users:    users,
		posts:    posts,
		comments: comments,
		likes:    likes,
		stats:    stats,
		cookies:  cookies,
	}
}

//
// DTOs
//

// AuthUser is the account projection returned by register and login.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func authUser(u *domain.User) AuthUser {
	return AuthUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

//
// Handlers
//

// Register godoc
// @ID          registerUser
// @Summary     Register a new account
// @Description Creates an account, sets the auth cookie, and returns the user with a bearer token.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body  validation.RegisterRequest  true  "Registration payload"
// @Success     201  {object}  map[string]any
// @Failure     403  {object}  map[string]any  "Validation failure"
// @Failure     409  {object}  map[string]any  "Username or email already taken"
// @Router      /users/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req validation.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid JSON body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		fail(c, err)
		return
	}

	u, token, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}

	h.setAuthCookie(c, token)
	ok(c, 201, gin.H{"user": authUser(u), "token": token})
}

// Login godoc
// @ID          loginUser
// @Summary     Log in
// @Description Verifies the password, sets the auth cookie, and returns the user with a bearer token.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body  validation.LoginRequest  true  "Login payload"
// @Success     200  {object}  map[string]any
// @Failure     401  {object}  map[string]any  "Invalid username or password"
// @Router      /users/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req validation.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid JSON body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		fail(c, err)
		return
	}

	u, token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	h.setAuthCookie(c, token)
	ok(c, 200, gin.H{"user": authUser(u), "token": token})
}

// Logout godoc
// @ID          logoutUser
// @Summary     Log out
// @Description Expires the auth cookie. Bearer tokens stay valid until expiry.
// @Tags        Users
// @Produce     json
// @Success     200  {object}  map[string]any
// @Router      /users/logout [get]
func (h *Handlers) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	okMessage(c, 200, "logout successfully")
}

// SearchUsers godoc
// @ID          searchUsers
// @Summary     Search users (paginated)
// @Description Case-insensitive substring search over username and names; '+' in the term separates words.
// @Tags        Users
// @Produce     json
// @Param       search  query  string  false  "Search term"
// @Param       page    query  int     false  "Page number"     minimum(1) default(1)
// @Param       limit   query  int     false  "Items per page"  minimum(1) default(15)
// @Success     200  {object}  map[string]any
// @Router      /users [get]
func (h *Handlers) SearchUsers(c *gin.Context) {
	page := utils.ClampPage(c.Query("page"))
	limit := utils.ClampLimit(c.Query("limit"), 15, 0)

	users, total, err := h.users.Search(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	okPage(c, users, utils.NewPagination(total, page, limit))
}

// Me godoc
// @ID          getMe
// @Summary     Get own profile
// @Tags        Users
// @Produce     json
// @Success     200  {object}  map[string]any
// @Failure     401  {object}  map[string]any
// @Router      /users/me [get]
func (h *Handlers) Me(c *gin.Context) {
	u, err := h.users.Me(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, 200, u)
}

// UpdateMe godoc
// @ID          updateMe
// @Summary     Update own profile
// @Description Applies the provided fields; omitted fields are left untouched.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body  body  validation.UpdateUserRequest  true  "Profile fields"
// @Success     200  {object}  map[string]any
// @Failure     401  {object}  map[string]any
// @Failure     409  {object}  map[string]any  "Username or email already taken"
// @Router      /users/me [patch]
func (h *Handlers) UpdateMe(c *gin.Context) {
	var req validation.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Validation("invalid JSON body"))
		return
	}
	if err := validation.Struct(req); err != nil {
		fail(c, err)
		return
	}

	u, err := h.users.Update(c.Request.Context(), callerID(c), services.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, 200, u)
}

// MyStats godoc
// @ID          getMyStats
// @Summary     Get own 30-day activity
// @Tags        Users
// @Produce     json
// @Success     200  {object}  map[string]any
// @Failure     401  {object}  map[string]any
// @Router      /users/me/stats [get]
func (h *Handlers) MyStats(c *gin.Context) {
	stats, err := h.stats.MyStats(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, 200, stats)
}
