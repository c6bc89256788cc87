package newsletter

import (
	"errors"
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (nrm *NewsletterRoutesManager) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		gecho.BadRequest(w, gecho.WithMessage("Missing unsubscribe token"), gecho.Send())
		return
	}

	err := nrm.newsletterService.Unsubscribe(r.Context(), token)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Unknown unsubscribe link"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("You've been unsubscribed"),
		gecho.Send(),
	)
}
