package resume

import (
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/middleware"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ResumeRoutesManager struct {
	logger           *gecho.Logger
	authService      *services.AuthService
	emailService     *services.EmailService
	analyticsService *services.AnalyticsService
	cfg              *structs.Config
	mw               *middleware.Middleware
}

func NewResumeRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	emailService *services.EmailService,
	analyticsService *services.AnalyticsService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *ResumeRoutesManager {
	return &ResumeRoutesManager{
		logger:           logger,
		authService:      authService,
		emailService:     emailService,
		analyticsService: analyticsService,
		cfg:              cfg,
		mw:               mw,
	}
}

func (rrm *ResumeRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/resume", func(r chi.Router) {
		r.Use(rrm.mw.UserAuthMiddleware)
		r.Get("/", rrm.HandleDownload)
		r.Get("/email", rrm.HandleEmailResume)
	})
}
