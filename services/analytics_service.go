package services

import (
	"context"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// AnalyticsService records resume access events and aggregates the numbers
// shown on the admin dashboard
type AnalyticsService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewAnalyticsService(logger *gecho.Logger, db *database.DB) *AnalyticsService {
	return &AnalyticsService{
		logger: logger,
		db:     db,
	}
}

// DashboardStats is the aggregate view served to admins
type DashboardStats struct {
	TotalUsers         int                   `json:"total_users"`
	VerifiedUsers      int                   `json:"verified_users"`
	ContactSubmissions int                   `json:"contact_submissions"`
	ActiveSubscribers  int                   `json:"active_subscribers"`
	PublishedPosts     int                   `json:"published_posts"`
	ResumeDownloads    int                   `json:"resume_downloads"`
	RecentAccesses     []tables.ResumeAccess `json:"recent_accesses"`
	GeneratedAt        time.Time             `json:"generated_at"`
}

// RecordResumeAccess writes an access event. Callers fire it in a goroutine;
// a lost event never blocks or fails the download itself.
func (as *AnalyticsService) RecordResumeAccess(ctx context.Context, userID uuid.UUID, clientIP string) {
	access := &tables.ResumeAccess{
		UserId:     userID,
		ClientIP:   clientIP,
		AccessedAt: time.Now(),
	}

	if _, err := database.Query[tables.ResumeAccess](as.db).Insert(ctx, access); err != nil {
		as.logger.Warn("Failed to record resume access",
			gecho.Field("error", err),
			gecho.Field("user_id", userID),
		)
		return
	}

	as.logger.Debug("Resume access recorded", gecho.Field("user_id", userID), gecho.Field("client_ip", clientIP))
}

// GetDashboardStats aggregates counts across all tables
func (as *AnalyticsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{GeneratedAt: time.Now()}

	var err error
	if stats.TotalUsers, err = database.Query[tables.User](as.db).Count(ctx); err != nil {
		return nil, as.statsError("users", err)
	}

	if stats.VerifiedUsers, err = database.Query[tables.EmailVerification](as.db).
		Where("verified", true).
		Count(ctx); err != nil {
		return nil, as.statsError("verified users", err)
	}

	if stats.ContactSubmissions, err = database.Query[tables.Contact](as.db).Count(ctx); err != nil {
		return nil, as.statsError("contacts", err)
	}

	if stats.ActiveSubscribers, err = database.Query[tables.EmailSubscriber](as.db).
		Where("active", true).
		Count(ctx); err != nil {
		return nil, as.statsError("subscribers", err)
	}

	if stats.PublishedPosts, err = database.Query[tables.Post](as.db).
		Where("published", true).
		Count(ctx); err != nil {
		return nil, as.statsError("posts", err)
	}

	if stats.ResumeDownloads, err = database.Query[tables.ResumeAccess](as.db).Count(ctx); err != nil {
		return nil, as.statsError("resume accesses", err)
	}

	recent, err := database.Query[tables.ResumeAccess](as.db).
		OrderBy("accessed_at", database.DESC).
		Limit(10).
		All(ctx)
	if err != nil {
		return nil, as.statsError("recent accesses", err)
	}
	stats.RecentAccesses = recent

	return stats, nil
}

func (as *AnalyticsService) statsError(what string, err error) error {
	as.logger.Error("Failed to aggregate dashboard stats",
		gecho.Field("stat", what),
		gecho.Field("error", err),
	)
	return lib.MapPgError(err)
}
