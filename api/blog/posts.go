package blog

import (
	"errors"
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/handling"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (brm *BlogRoutesManager) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	opts := handling.ParseListOptions(r, 10, 50)

	result, err := brm.blogService.ListPublished(r.Context(), opts.Page, opts.PageSize)
	if err != nil {
		handling.HandleError(err, "Failed to list posts", brm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (brm *BlogRoutesManager) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := brm.blogService.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Post not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(post),
		gecho.Send(),
	)
}
