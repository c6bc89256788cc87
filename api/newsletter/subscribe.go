package newsletter

import (
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

func (nrm *NewsletterRoutesManager) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SubscribeRequest](r)
	if err != nil {
		nrm.logger.Warn("Failed to extract and validate subscribe request", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("A valid email address is required"), gecho.WithData(err), gecho.Send())
		return
	}

	subscriber, subscribed, err := nrm.newsletterService.Subscribe(r.Context(), body)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	message := "You're subscribed"
	if !subscribed {
		message = "You're already subscribed"
	}

	gecho.Success(w,
		gecho.WithMessage(message),
		gecho.WithData(subscriber),
		gecho.Send(),
	)
}
