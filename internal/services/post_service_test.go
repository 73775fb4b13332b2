package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/domain"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

func seedSvcUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		FirstName: "First", LastName: "Last",
		Username: username, Email: username + "@example.com",
		Password: "hash", Role: domain.RoleUser,
	}
	if err := repo.CreateUser(context.Background(), db, u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestPreview_TruncatesLongContent(t *testing.T) {
	short := "short content"
	if got := preview(short); got != short {
		t.Fatalf("short content changed: %q", got)
	}

	long := strings.Repeat("ä", previewRunes+50)
	got := preview(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("missing ellipsis: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != previewRunes+3 {
		t.Fatalf("rune count = %d, want %d", n, previewRunes+3)
	}

	exact := strings.Repeat("x", previewRunes)
	if got := preview(exact); got != exact {
		t.Fatalf("exact-length content changed")
	}
}

func TestPostCreateGetUpdateDelete(t *testing.T) {
	db := newSvcDB(t)
	svc := &PostService{DB: db}
	ctx := context.Background()
	u := seedSvcUser(t, db, "alice")

	p, err := svc.Create(ctx, u.ID, "Title", "long enough content")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := svc.Get(ctx, p.ID, "")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Author.Username != "alice" || detail.Title != "Title" {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	if _, err := svc.Update(ctx, p.ID, "New", "updated long content"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var ae *apperr.Error
	if _, err := svc.Update(ctx, "nope", "t", "c"); !errors.As(err, &ae) || ae.Code != http.StatusNotFound {
		t.Fatalf("update missing: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); !errors.As(err, &ae) || ae.Code != http.StatusNotFound {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestPostGet_IsLikedScopedToCaller(t *testing.T) {
	db := newSvcDB(t)
	svc := &PostService{DB: db}
	ctx := context.Background()

	author := seedSvcUser(t, db, "bob")
	fan := seedSvcUser(t, db, "carol")
	p, err := svc.Create(ctx, author.ID, "t", "is liked target post")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.CreateLike(ctx, db, p.ID, fan.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}

	// Anonymous: never liked, but the count still shows.
	detail, err := svc.Get(ctx, p.ID, "")
	if err != nil {
		t.Fatalf("Get anonymous: %v", err)
	}
	if detail.IsLiked || detail.LikesCount != 1 {
		t.Fatalf("anonymous: isLiked=%v likes=%d", detail.IsLiked, detail.LikesCount)
	}

	// The author did not like their own post.
	detail, err = svc.Get(ctx, p.ID, author.ID)
	if err != nil {
		t.Fatalf("Get author: %v", err)
	}
	if detail.IsLiked {
		t.Fatal("author should not see someone else's like as their own")
	}

	// The fan sees their like.
	detail, err = svc.Get(ctx, p.ID, fan.ID)
	if err != nil {
		t.Fatalf("Get fan: %v", err)
	}
	if !detail.IsLiked {
		t.Fatal("fan's like missing")
	}
}

func TestPostGet_EmbedsCommentsOldestFirst(t *testing.T) {
	db := newSvcDB(t)
	svc := &PostService{DB: db}
	ctx := context.Background()

	u := seedSvcUser(t, db, "dave")
	p, err := svc.Create(ctx, u.ID, "t", "comment embedding post")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, text := range []string{"one", "two"} {
		if _, err := repo.CreateComment(ctx, db, p.ID, u.ID, text); err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
	}

	detail, err := svc.Get(ctx, p.ID, "")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.CommentsCount != 2 || len(detail.Comments) != 2 {
		t.Fatalf("comments = %d/%d", detail.CommentsCount, len(detail.Comments))
	}
	if detail.Comments[0].User.Username != "dave" {
		t.Fatalf("comment author missing: %+v", detail.Comments[0])
	}
}

func TestPostGet_NotFound(t *testing.T) {
	db := newSvcDB(t)
	svc := &PostService{DB: db}

	_, err := svc.Get(context.Background(), "nope", "")
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Code != http.StatusNotFound || ae.Message != "post not found" {
		t.Fatalf("err = %v", err)
	}
}

func TestPostList_CountsPreviewAndCallerLikes(t *testing.T) {
	db := newSvcDB(t)
	svc := &PostService{DB: db}
	ctx := context.Background()

	author := seedSvcUser(t, db, "erin")
	fan := seedSvcUser(t, db, "frank")

	long := strings.Repeat("y", previewRunes+100)
	p1, err := svc.Create(ctx, author.ID, "first", long)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	p2, err := svc.Create(ctx, author.ID, "second", "short body of a post")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.CreateLike(ctx, db, p1.ID, fan.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	if _, err := repo.CreateComment(ctx, db, p2.ID, fan.ID, "hi"); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	out, total, err := svc.List(ctx, ListPostsQuery{Page: 1, Limit: 10, CallerID: fan.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(out) != 2 {
		t.Fatalf("total=%d len=%d", total, len(out))
	}

	byID := map[string]PostSummary{}
	for _, s := range out {
		byID[s.ID] = s
	}
	s1, s2 := byID[p1.ID], byID[p2.ID]

	if !strings.HasSuffix(s1.Content, "...") {
		t.Fatalf("long content not previewed: %q", s1.Content[:20])
	}
	if s1.LikesCount != 1 || !s1.IsLiked {
		t.Fatalf("p1 engagement: %+v", s1)
	}
	if s2.CommentsCount != 1 || s2.IsLiked {
		t.Fatalf("p2 engagement: %+v", s2)
	}
	if s1.Author.Username != "erin" {
		t.Fatalf("author: %+v", s1.Author)
	}
}

func TestPostList_FilterAndSearch(t *testing.T) {
	db := newSvcDB(t)
	svc := &PostService{DB: db}
	ctx := context.Background()

	a := seedSvcUser(t, db, "gina")
	b := seedSvcUser(t, db, "hank")
	if _, err := svc.Create(ctx, a.ID, "t", "gina writes about travel plans"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, b.ID, "t", "hank writes about cooking"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, total, err := svc.List(ctx, ListPostsQuery{Username: "gina", Page: 1, Limit: 10})
	if err != nil || total != 1 {
		t.Fatalf("username filter: total=%d err=%v", total, err)
	}

	// '+' separates phrase words in search.
	_, total, err = svc.List(ctx, ListPostsQuery{Search: "about+travel", Page: 1, Limit: 10})
	if err != nil || total != 1 {
		t.Fatalf("search: total=%d err=%v", total, err)
	}
}
