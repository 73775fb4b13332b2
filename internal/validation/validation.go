// Package validation declares the request schemas for every write operation
// and validates untrusted bodies against them before any handler logic runs.
//
// Each schema is a plain struct with go-playground/validator tags. On failure,
// all field-level messages are concatenated into one human-readable string in
// schema field declaration order, comma-separated, and returned as a typed
// validation failure.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
)

// RegisterRequest is the schema for POST /users/register.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"min=2"`
	LastName  string `json:"lastName"  validate:"min=2"`
	Username  string `json:"username"  validate:"min=3"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"min=8"`
}

// LoginRequest is the schema for POST /users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"min=3"`
	Password string `json:"password" validate:"min=8"`
}

// UpdateUserRequest is the schema for PATCH /users/me. All fields are
// optional; present fields must satisfy the registration rules.
type UpdateUserRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,min=2"`
	LastName  string `json:"lastName"  validate:"omitempty,min=2"`
	Username  string `json:"username"  validate:"omitempty,min=3"`
	Email     string `json:"email"     validate:"omitempty,email"`
}

// PostRequest is the schema for creating and updating posts.
type PostRequest struct {
	Title   string `json:"title"   validate:"omitempty,max=200"`
	Content string `json:"content" validate:"required,min=12"`
}

// CommentRequest is the schema for creating comments.
type CommentRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldMessages maps "Struct.Field" (optionally ":tag") to the message
// surfaced to clients. Tag-qualified entries win over plain field entries.
var fieldMessages = map[string]string{
	"RegisterRequest.FirstName": "First name must be at least 2 characters long",
	"RegisterRequest.LastName":  "Last name must be at least 2 characters long",
	"RegisterRequest.Username":  "Username must be at least 3 characters long",
	"RegisterRequest.Email":     "Invalid email address",
	"RegisterRequest.Password":  "Password must be at least 8 characters long",

	"LoginRequest.Username": "Username must be at least 3 characters long",
	"LoginRequest.Password": "Password must be at least 8 characters long",

	"UpdateUserRequest.FirstName": "First name must be at least 2 characters long",
	"UpdateUserRequest.LastName":  "Last name must be at least 2 characters long",
	"UpdateUserRequest.Username":  "Username must be at least 3 characters long",
	"UpdateUserRequest.Email":     "Invalid email address",

	"PostRequest.Title":            "Title must be at most 200 characters long",
	"PostRequest.Content:required": "Content is required",
	"PostRequest.Content:min":      "Content must be at least 12 characters",

	"CommentRequest.Text:required": "Comment text is required",
	"CommentRequest.Text:min":      "Comment text must be at least 1 character",
}

// Struct validates s against its schema tags. On violation it returns a
// *apperr.Error (validation kind) whose message joins all field messages in
// declaration order. Non-schema errors (nil pointer, unsupported type) are
// returned raw for the terminal responder to classify.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return apperr.Validation(strings.Join(msgs, ", "))
}

func messageFor(fe validator.FieldError) string {
	key := fe.StructNamespace()
	if m, ok := fieldMessages[key+":"+fe.Tag()]; ok {
		return m
	}
	if m, ok := fieldMessages[key]; ok {
		return m
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
