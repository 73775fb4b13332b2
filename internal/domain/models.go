// Package domain defines the persistence models for users, posts, comments,
// and likes. These types are mapped with GORM and form the core data layer of
// the blogging application.
package domain

import "time"

// User roles. Every account is created as RoleUser; RoleAdmin unlocks the
// admin statistics endpoint.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a registered account. Username and Email are unique;
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	FirstName string    `json:"firstName"  gorm:"type:varchar(64);not null"`
	LastName  string    `json:"lastName"   gorm:"type:varchar(64);not null"`
	Username  string    `json:"username"   gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Password  string    `json:"-"          gorm:"type:varchar(128);not null"`
	Role      string    `json:"role"       gorm:"type:varchar(16);not null;default:'USER';check:role IN ('USER','ADMIN')"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Identity is the per-request view of an authenticated caller, resolved fresh
// from the credential on every request and never cached across requests.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// Post is a published blog entry. Title is optional; Content is the body.
// Comments and likes cascade when a post is deleted.
type Post struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index:idx_posts_user"`
	Title     string    `json:"title"      gorm:"type:varchar(200)"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_posts_created"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Post.
func (Post) TableName() string { return "posts" }

// Comment is a user remark attached to a post.
type Comment struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	PostID    string    `json:"post_id"    gorm:"type:char(36);not null;index:idx_comments_post"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index:idx_comments_user"`
	Text      string    `json:"text"       gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Post Post `json:"-"    gorm:"foreignKey:PostID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// Like marks that a user has liked a post. At most one like per (post, user)
// pair; the unique index turns a toggle race into a constraint violation
// instead of a double row.
type Like struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	PostID    string    `json:"post_id"    gorm:"type:char(36);not null;index;uniqueIndex:ux_likes_post_user"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index;uniqueIndex:ux_likes_post_user"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Post Post `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Like.
func (Like) TableName() string { return "likes" }
