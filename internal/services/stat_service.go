// Package services – StatService
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

// activityWindow is the lookback period for per-user activity stats.
const activityWindow = 30 * 24 * time.Hour

// StatService implements the statistics endpoints.
type StatService struct {
	// DB is the database handle used for all statistics queries.
	DB *gorm.DB
}

// UserStats summarizes an author's recent engagement.
type UserStats struct {
	LikesReceivedLast30Days    int64 `json:"likesReceivedLast30Days"`
	CommentsReceivedLast30Days int64 `json:"commentsReceivedLast30Days"`
	PostsCreatedLast30Days     int64 `json:"postsCreatedLast30Days"`
}

// AdminStats returns site-wide row totals for the admin dashboard.
func (s *StatService) AdminStats(ctx context.Context) (repo.Totals, error) {
	return repo.TotalCounts(ctx, s.DB)
}

// MyStats returns the caller's engagement over the last 30 days.
func (s *StatService) MyStats(ctx context.Context, userID string) (UserStats, error) {
	since := time.Now().UTC().Add(-activityWindow)
	a, err := repo.UserActivity(ctx, s.DB, userID, since)
	if err != nil {
		return UserStats{}, err
	}
	return UserStats{
		LikesReceivedLast30Days:    a.LikesReceived,
		CommentsReceivedLast30Days: a.CommentsReceived,
		PostsCreatedLast30Days:     a.PostsCreated,
	}, nil
}
