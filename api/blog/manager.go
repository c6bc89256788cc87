package blog

import (
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type BlogRoutesManager struct {
	logger      *gecho.Logger
	blogService *services.BlogService
}

func NewBlogRoutesManager(logger *gecho.Logger, blogService *services.BlogService) *BlogRoutesManager {
	return &BlogRoutesManager{
		logger:      logger,
		blogService: blogService,
	}
}

func (brm *BlogRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", brm.HandleListPosts)
		r.Get("/{slug}", brm.HandleGetPost)
	})
}
