package auth

import (
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/middleware"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger       *gecho.Logger
	authService  *services.AuthService
	cacheService *services.CacheService
	cfg          *structs.Config
	mw           *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	cacheService *services.CacheService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:       logger,
		authService:  authService,
		cacheService: cacheService,
		cfg:          cfg,
		mw:           mw,
	}
}

func (ar *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		// CSRF token endpoint (must be called before protected routes)
		r.Get("/csrf", ar.HandleCSRF)

		// Verification link opened from email, no CSRF possible there
		r.Get("/verify-email/{token}", ar.HandleVerifyEmail)

		r.Group(func(r chi.Router) {
			r.Use(ar.mw.CSRFMiddleware())
			r.Post("/register", ar.HandleRegister)
			r.Post("/resend-verification", ar.HandleResendVerification)
			r.Post("/login", ar.HandleLogin)
			r.Post("/verify-login-code", ar.HandleVerifyLoginCode)
			r.Post("/refresh", ar.HandleRefresh)
			r.Post("/logout", ar.HandleLogout)
		})

		r.Get("/me", ar.HandleMe)
	})
}
