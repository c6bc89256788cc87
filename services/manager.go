package services

import (
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/queue"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService       *AuthService
	EmailService      *EmailService
	CacheService      *CacheService
	HealthService     *HealthService
	ContactService    *ContactService
	NewsletterService *NewsletterService
	BlogService       *BlogService
	AnalyticsService  *AnalyticsService
	MailProducer      *queue.Producer
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	mailProducer := queue.NewProducer(logger)

	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg, mailProducer)
	authService := NewAuthService(cfg, logger, db, cacheService, emailService)
	healthService := NewHealthService(logger, db, cacheService)
	contactService := NewContactService(logger, db, emailService)
	newsletterService := NewNewsletterService(logger, db, emailService)
	blogService := NewBlogService(logger, db, cacheService)
	analyticsService := NewAnalyticsService(logger, db)

	return &ServiceManager{
		AuthService:       authService,
		EmailService:      emailService,
		CacheService:      cacheService,
		HealthService:     healthService,
		ContactService:    contactService,
		NewsletterService: newsletterService,
		BlogService:       blogService,
		AnalyticsService:  analyticsService,
		MailProducer:      mailProducer,
	}
}
