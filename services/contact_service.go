package services

import (
	"context"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/MonkyMars/gecho"
)

// ContactService stores contact-form submissions and notifies the site admin
type ContactService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
}

func NewContactService(logger *gecho.Logger, db *database.DB, emailService *EmailService) *ContactService {
	return &ContactService{
		logger:       logger,
		db:           db,
		emailService: emailService,
	}
}

// SubmitContact persists a submission and queues the admin notification.
// The notification is best-effort; the stored row is the source of truth.
func (cs *ContactService) SubmitContact(ctx context.Context, req *structs.ContactRequest) (*tables.Contact, error) {
	contact := &tables.Contact{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		SubmittedAt: time.Now(),
	}

	contact, err := database.Query[tables.Contact](cs.db).Insert(ctx, contact)
	if err != nil {
		cs.logger.Error("Failed to store contact submission",
			gecho.Field("error", err),
			gecho.Field("email", req.Email),
		)
		return nil, lib.MapPgError(err)
	}

	cs.emailService.SendContactNotification(ctx, contact)

	cs.logger.Info("Contact submission stored", gecho.Field("contact_id", contact.Id))
	return contact, nil
}

// ListContacts returns submissions newest first for the admin dashboard
func (cs *ContactService) ListContacts(ctx context.Context, page, pageSize int) (*database.PaginatedResult[tables.Contact], error) {
	query := database.Query[tables.Contact](cs.db).
		OrderBy("submitted_at", database.DESC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		cs.logger.Error("Failed to list contact submissions", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	return result, nil
}
