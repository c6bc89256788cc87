package admin

import (
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/middleware"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger            *gecho.Logger
	analyticsService  *services.AnalyticsService
	newsletterService *services.NewsletterService
	blogService       *services.BlogService
	contactService    *services.ContactService
	mw                *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	analyticsService *services.AnalyticsService,
	newsletterService *services.NewsletterService,
	blogService *services.BlogService,
	contactService *services.ContactService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:            logger,
		analyticsService:  analyticsService,
		newsletterService: newsletterService,
		blogService:       blogService,
		contactService:    contactService,
		mw:                mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.AdminAuthMiddleware)
		r.Use(arm.mw.CSRFMiddleware())

		r.Get("/analytics", arm.HandleAnalytics)
		r.Get("/contacts", arm.HandleListContacts)
		r.Post("/announcements", arm.HandleAnnouncement)

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", arm.HandleCreatePost)
			r.Put("/{id}", arm.HandleUpdatePost)
			r.Delete("/{id}", arm.HandleDeletePost)
		})
	})
}
