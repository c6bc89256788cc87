package admin

import (
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/handling"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/MonkyMars/gecho"
)

// HandleAnalytics serves the aggregated dashboard stats
func (arm *AdminRoutesManager) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := arm.analyticsService.GetDashboardStats(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to build dashboard stats", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}

// HandleListContacts pages through contact-form submissions
func (arm *AdminRoutesManager) HandleListContacts(w http.ResponseWriter, r *http.Request) {
	opts := handling.ParseListOptions(r, 20, 100)

	result, err := arm.contactService.ListContacts(r.Context(), opts.Page, opts.PageSize)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
