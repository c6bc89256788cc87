package services

import (
	"context"
	"strings"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/MonkyMars/gecho"
)

// NewsletterService manages the subscriber list and bulk announcements
type NewsletterService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
}

func NewNewsletterService(logger *gecho.Logger, db *database.DB, emailService *EmailService) *NewsletterService {
	return &NewsletterService{
		logger:       logger,
		db:           db,
		emailService: emailService,
	}
}

// Subscribe adds an address to the list. A previously unsubscribed address
// is reactivated on the same row with a fresh unsubscribe token; subscribing
// while already active is a no-op. The returned bool reports whether the
// subscription is new (created or reactivated).
func (ns *NewsletterService) Subscribe(ctx context.Context, req *structs.SubscribeRequest) (*tables.EmailSubscriber, bool, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	token, err := lib.GenerateRandomToken()
	if err != nil {
		ns.logger.Error("Failed to generate unsubscribe token", gecho.Field("error", err))
		return nil, false, err
	}

	// Atomic get-or-create on the email unique constraint
	seed := &tables.EmailSubscriber{
		Email:            email,
		Name:             req.Name,
		Active:           true,
		UnsubscribeToken: token,
	}
	if _, err := database.Query[tables.EmailSubscriber](ns.db).
		OnConflictDoNothing("email").
		Insert(ctx, seed); err != nil {
		ns.logger.Error("Failed to upsert subscriber", gecho.Field("error", err), gecho.Field("email", email))
		return nil, false, lib.MapPgError(err)
	}

	subscriber, err := database.Query[tables.EmailSubscriber](ns.db).
		Where("email", email).
		First(ctx)
	if err != nil || subscriber == nil {
		ns.logger.Error("Failed to load subscriber after upsert", gecho.Field("error", err), gecho.Field("email", email))
		return nil, false, lib.MapPgError(err)
	}

	if subscriber.Active && subscriber.UnsubscribeToken != token {
		// Row existed before this call and is already subscribed
		return subscriber, false, nil
	}

	if !subscriber.Active {
		if _, err := database.Query[tables.EmailSubscriber](ns.db).
			Where("id", subscriber.Id).
			Update(ctx, map[string]any{"active": true, "unsubscribe_token": token}); err != nil {
			ns.logger.Error("Failed to reactivate subscriber", gecho.Field("error", err), gecho.Field("email", email))
			return nil, false, lib.MapPgError(err)
		}
		subscriber.Active = true
		subscriber.UnsubscribeToken = token
		ns.logger.Info("Subscriber reactivated", gecho.Field("subscriber_id", subscriber.Id))
	}

	ns.emailService.SendSubscriptionNotice(ctx, subscriber)

	return subscriber, true, nil
}

// Unsubscribe deactivates the subscription behind a token. Unknown tokens
// return ErrNotFound; repeating an unsubscribe is harmless.
func (ns *NewsletterService) Unsubscribe(ctx context.Context, token string) error {
	subscriber, err := database.Query[tables.EmailSubscriber](ns.db).
		Where("unsubscribe_token", token).
		First(ctx)
	if err != nil {
		ns.logger.Error("Failed to look up unsubscribe token", gecho.Field("error", err))
		return lib.MapPgError(err)
	}
	if subscriber == nil {
		return lib.ErrNotFound
	}

	if !subscriber.Active {
		return nil
	}

	if _, err := database.Query[tables.EmailSubscriber](ns.db).
		Where("id", subscriber.Id).
		Update(ctx, map[string]any{"active": false}); err != nil {
		ns.logger.Error("Failed to deactivate subscriber", gecho.Field("error", err), gecho.Field("subscriber_id", subscriber.Id))
		return lib.MapPgError(err)
	}

	ns.logger.Info("Subscriber unsubscribed", gecho.Field("subscriber_id", subscriber.Id))
	return nil
}

// Announce queues one copy of the announcement per active subscriber and
// returns how many were queued
func (ns *NewsletterService) Announce(ctx context.Context, req *structs.AnnouncementRequest) (int, error) {
	subscribers, err := database.Query[tables.EmailSubscriber](ns.db).
		Where("active", true).
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		ns.logger.Error("Failed to list subscribers for announcement", gecho.Field("error", err))
		return 0, lib.MapPgError(err)
	}

	for i := range subscribers {
		ns.emailService.SendAnnouncement(ctx, &subscribers[i], req.Subject, req.Body)
	}

	ns.logger.Info("Announcement queued",
		gecho.Field("subject", req.Subject),
		gecho.Field("recipients", len(subscribers)),
	)

	return len(subscribers), nil
}

// CountActiveSubscribers returns the size of the active list
func (ns *NewsletterService) CountActiveSubscribers(ctx context.Context) (int, error) {
	count, err := database.Query[tables.EmailSubscriber](ns.db).
		Where("active", true).
		Count(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	return count, nil
}
