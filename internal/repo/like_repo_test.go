package repo

import (
	"context"
	"errors"
	"testing"
)

func TestLikeLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "alice")
	p := seedPost(t, db, u.ID, "t", "like lifecycle target")

	if _, err := GetLike(ctx, db, p.ID, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("before create err = %v, want ErrNotFound", err)
	}

	if err := CreateLike(ctx, db, p.ID, u.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}

	l, err := GetLike(ctx, db, p.ID, u.ID)
	if err != nil {
		t.Fatalf("GetLike: %v", err)
	}
	if l.PostID != p.ID || l.UserID != u.ID {
		t.Fatalf("unexpected row: %+v", l)
	}

	if ok, err := LikeExists(ctx, db, p.ID, u.ID); err != nil || !ok {
		t.Fatalf("LikeExists: ok=%v err=%v", ok, err)
	}
	if n, err := CountLikes(ctx, db, p.ID); err != nil || n != 1 {
		t.Fatalf("CountLikes: n=%d err=%v", n, err)
	}

	if err := DeleteLike(ctx, db, l.ID); err != nil {
		t.Fatalf("DeleteLike: %v", err)
	}
	if ok, err := LikeExists(ctx, db, p.ID, u.ID); err != nil || ok {
		t.Fatalf("after delete: ok=%v err=%v", ok, err)
	}
}

func TestCreateLike_DuplicatePairRejected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "bob")
	p := seedPost(t, db, u.ID, "t", "duplicate like target")

	if err := CreateLike(ctx, db, p.ID, u.ID); err != nil {
		t.Fatalf("first CreateLike: %v", err)
	}
	err := CreateLike(ctx, db, p.ID, u.ID)
	if err == nil || !IsDuplicate(err) {
		t.Fatalf("err = %v, want duplicate", err)
	}
}

func TestListLikesPage_PreloadsUsers(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := seedUser(t, db, "carol")
	p := seedPost(t, db, author.ID, "t", "list likes target post")

	for _, name := range []string{"fan1", "fan2"} {
		fan := seedUser(t, db, name)
		if err := CreateLike(ctx, db, p.ID, fan.ID); err != nil {
			t.Fatalf("CreateLike: %v", err)
		}
	}

	likes, err := ListLikesPage(ctx, db, p.ID, 0, 10)
	if err != nil {
		t.Fatalf("ListLikesPage: %v", err)
	}
	if len(likes) != 2 {
		t.Fatalf("len = %d", len(likes))
	}
	for _, l := range likes {
		if l.User.Username == "" {
			t.Fatalf("user not preloaded: %+v", l)
		}
	}
}

func TestLikeCountsAndLikedSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "dave")
	other := seedUser(t, db, "erin")
	p1 := seedPost(t, db, u.ID, "t", "grouped likes post one")
	p2 := seedPost(t, db, u.ID, "t", "grouped likes post two")

	if err := CreateLike(ctx, db, p1.ID, u.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	if err := CreateLike(ctx, db, p1.ID, other.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	if err := CreateLike(ctx, db, p2.ID, other.ID); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}

	counts, err := LikeCounts(ctx, db, []string{p1.ID, p2.ID})
	if err != nil {
		t.Fatalf("LikeCounts: %v", err)
	}
	if counts[p1.ID] != 2 || counts[p2.ID] != 1 {
		t.Fatalf("counts = %v", counts)
	}

	liked, err := LikedSet(ctx, db, u.ID, []string{p1.ID, p2.ID})
	if err != nil {
		t.Fatalf("LikedSet: %v", err)
	}
	if !liked[p1.ID] || liked[p2.ID] {
		t.Fatalf("liked = %v", liked)
	}

	// Anonymous callers get an empty set without touching the database.
	anon, err := LikedSet(ctx, db, "", []string{p1.ID})
	if err != nil || len(anon) != 0 {
		t.Fatalf("anonymous: %v %v", anon, err)
	}
}
