package api

import (
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/admin"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/auth"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/blog"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/contact"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/debug"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/health"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/middleware"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/newsletter"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/resume"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes       *auth.AuthRoutesManager
	contactRoutes    *contact.ContactRoutesManager
	newsletterRoutes *newsletter.NewsletterRoutesManager
	blogRoutes       *blog.BlogRoutesManager
	resumeRoutes     *resume.ResumeRoutesManager
	adminRoutes      *admin.AdminRoutesManager
	healthRoutes     *health.HealthRoutesManager
	debugRoutes      *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	serviceManager *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		authRoutes:       auth.NewAuthRoutesManager(logger, serviceManager.AuthService, serviceManager.CacheService, cfg, mw),
		contactRoutes:    contact.NewContactRoutesManager(logger, serviceManager.ContactService, mw),
		newsletterRoutes: newsletter.NewNewsletterRoutesManager(logger, serviceManager.NewsletterService, mw),
		blogRoutes:       blog.NewBlogRoutesManager(logger, serviceManager.BlogService),
		resumeRoutes:     resume.NewResumeRoutesManager(logger, serviceManager.AuthService, serviceManager.EmailService, serviceManager.AnalyticsService, cfg, mw),
		adminRoutes:      admin.NewAdminRoutesManager(logger, serviceManager.AnalyticsService, serviceManager.NewsletterService, serviceManager.BlogService, serviceManager.ContactService, mw),
		healthRoutes:     health.NewHealthRoutesManager(serviceManager.HealthService),
		debugRoutes:      debug.NewDebugRoutesManager(serviceManager.CacheService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.contactRoutes.RegisterRoutes(r)
	rm.newsletterRoutes.RegisterRoutes(r)
	rm.blogRoutes.RegisterRoutes(r)
	rm.resumeRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
