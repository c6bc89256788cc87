package contact

import (
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/middleware"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ContactRoutesManager struct {
	logger         *gecho.Logger
	contactService *services.ContactService
	mw             *middleware.Middleware
}

func NewContactRoutesManager(logger *gecho.Logger, contactService *services.ContactService, mw *middleware.Middleware) *ContactRoutesManager {
	return &ContactRoutesManager{
		logger:         logger,
		contactService: contactService,
		mw:             mw,
	}
}

func (crm *ContactRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(crm.mw.CSRFMiddleware())
		r.Post("/contact", crm.HandleSubmit)
	})
}
