package admin

import (
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

// HandleAnnouncement queues a bulk email to every active subscriber
func (arm *AdminRoutesManager) HandleAnnouncement(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AnnouncementRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate announcement", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Subject and body are required"), gecho.WithData(err), gecho.Send())
		return
	}

	recipients, err := arm.newsletterService.Announce(r.Context(), body)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Announcement queued"),
		gecho.WithData(map[string]int{"recipients": recipients}),
		gecho.Send(),
	)
}
