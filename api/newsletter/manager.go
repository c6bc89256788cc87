package newsletter

import (
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/middleware"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type NewsletterRoutesManager struct {
	logger            *gecho.Logger
	newsletterService *services.NewsletterService
	mw                *middleware.Middleware
}

func NewNewsletterRoutesManager(logger *gecho.Logger, newsletterService *services.NewsletterService, mw *middleware.Middleware) *NewsletterRoutesManager {
	return &NewsletterRoutesManager{
		logger:            logger,
		newsletterService: newsletterService,
		mw:                mw,
	}
}

func (nrm *NewsletterRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/newsletter", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(nrm.mw.CSRFMiddleware())
			r.Post("/subscribe", nrm.HandleSubscribe)
		})

		// Unsubscribe link opened from email, no CSRF possible there
		r.Get("/unsubscribe/{token}", nrm.HandleUnsubscribe)
	})
}
