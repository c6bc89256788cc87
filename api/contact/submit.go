package contact

import (
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *ContactRoutesManager) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ContactRequest](r)
	if err != nil {
		crm.logger.Warn("Failed to extract and validate contact form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the contact form and try again"), gecho.WithData(err), gecho.Send())
		return
	}

	contact, err := crm.contactService.SubmitContact(r.Context(), body)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Thanks for reaching out! I'll get back to you soon"),
		gecho.WithData(contact),
		gecho.Send(),
	)
}
