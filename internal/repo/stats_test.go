package repo

import (
	"context"
	"testing"
	"time"

	"github.com/bossnabeel/nexus-blog-app/internal/domain"
)

func TestTotalCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	empty, err := TotalCounts(ctx, db)
	if err != nil {
		t.Fatalf("TotalCounts: %v", err)
	}
	if empty != (Totals{}) {
		t.Fatalf("empty totals = %+v", empty)
	}

	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")
	p := seedPost(t, db, a.ID, "t", "totals target post one")
	if _, err := CreateComment(ctx, db, p.ID, b.ID, "hi"); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if err := CreateLike(ctx, db, p.ID, b.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}

	got, err := TotalCounts(ctx, db)
	if err != nil {
		t.Fatalf("TotalCounts: %v", err)
	}
	want := Totals{Users: 2, Posts: 1, Likes: 1, Comments: 1}
	if got != want {
		t.Fatalf("totals = %+v, want %+v", got, want)
	}
}

func TestUserActivity_WindowAndOwnership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := seedUser(t, db, "carol")
	fan := seedUser(t, db, "dan")

	recent := seedPost(t, db, author.ID, "t", "recent post by carol!")
	old := seedPost(t, db, author.ID, "t", "ancient post by carol!")
	foreign := seedPost(t, db, fan.ID, "t", "a post by someone else")

	now := time.Now().UTC()
	since := now.Add(-30 * 24 * time.Hour)
	backdate(t, db, &domain.Post{}, old.ID, now.Add(-60*24*time.Hour))

	// Recent engagement on the author's posts.
	if err := CreateLike(ctx, db, recent.ID, fan.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	if _, err := CreateComment(ctx, db, recent.ID, fan.ID, "hello"); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	// Engagement outside the window.
	oldLike := &domain.Like{ID: "like-old", PostID: old.ID, UserID: fan.ID, CreatedAt: now.Add(-45 * 24 * time.Hour)}
	if err := db.Create(oldLike).Error; err != nil {
		t.Fatalf("seed old like: %v", err)
	}
	backdate(t, db, &domain.Like{}, oldLike.ID, now.Add(-45*24*time.Hour))

	// Engagement on another author's post must not count.
	if err := CreateLike(ctx, db, foreign.ID, author.ID); err != nil {
		t.Fatalf("CreateLike foreign: %v", err)
	}

	a, err := UserActivity(ctx, db, author.ID, since)
	if err != nil {
		t.Fatalf("UserActivity: %v", err)
	}
	if a.LikesReceived != 1 {
		t.Errorf("LikesReceived = %d, want 1", a.LikesReceived)
	}
	if a.CommentsReceived != 1 {
		t.Errorf("CommentsReceived = %d, want 1", a.CommentsReceived)
	}
	if a.PostsCreated != 1 {
		t.Errorf("PostsCreated = %d, want 1 (old post outside window)", a.PostsCreated)
	}
}
