package validation

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "janedoe",
		Email:     "jane@example.com",
		Password:  "supersecret",
	}
}

func TestStruct_ValidRegisterPasses(t *testing.T) {
	if err := Struct(validRegister()); err != nil {
		t.Fatalf("Struct: %v", err)
	}
}

func TestStruct_ShortPasswordMessage(t *testing.T) {
	req := validRegister()
	req.Password = "short"
	err := Struct(req)

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *apperr.Error", err)
	}
	if ae.Code != http.StatusForbidden {
		t.Fatalf("code = %d, want 403", ae.Code)
	}
	if ae.Message != "Password must be at least 8 characters long" {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestStruct_MultipleMessagesJoinedInDeclarationOrder(t *testing.T) {
	req := RegisterRequest{
		FirstName: "J",
		LastName:  "Doe",
		Username:  "jd",
		Email:     "not-an-email",
		Password:  "supersecret",
	}
	err := Struct(req)

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *apperr.Error", err)
	}
	want := "First name must be at least 2 characters long, " +
		"Username must be at least 3 characters long, " +
		"Invalid email address"
	if ae.Message != want {
		t.Fatalf("message = %q\nwant      %q", ae.Message, want)
	}
}

func TestStruct_PostContentRequired(t *testing.T) {
	err := Struct(PostRequest{Title: "t"})

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *apperr.Error", err)
	}
	if ae.Message != "Content is required" {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestStruct_PostContentTooShort(t *testing.T) {
	err := Struct(PostRequest{Content: "tiny"})

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *apperr.Error", err)
	}
	if ae.Message != "Content must be at least 12 characters" {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestStruct_UpdateUserOmittedFieldsPass(t *testing.T) {
	if err := Struct(UpdateUserRequest{}); err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if err := Struct(UpdateUserRequest{Email: "bad"}); err == nil {
		t.Fatal("expected invalid email to fail")
	}
}

func TestStruct_CommentTextRequired(t *testing.T) {
	err := Struct(CommentRequest{})

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *apperr.Error", err)
	}
	if ae.Message != "Comment text is required" {
		t.Fatalf("message = %q", ae.Message)
	}
}

func TestStruct_NonStructReturnsRawError(t *testing.T) {
	err := Struct(42)
	if err == nil {
		t.Fatal("expected error")
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		t.Fatalf("non-schema error should stay raw, got %v", ae)
	}
}
