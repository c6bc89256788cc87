package resume

import (
	"context"
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api/middleware"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/MonkyMars/gecho"
)

// gate enforces the access checks in order: a valid session, an active
// account, then a verified email. The first failing check decides the
// response.
func (rrm *ResumeRoutesManager) gate(w http.ResponseWriter, r *http.Request) *tables.User {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return nil
	}

	user, err := rrm.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		rrm.logger.Warn("Failed to load user for resume access", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return nil
	}

	if !user.IsActive {
		gecho.Forbidden(w, gecho.WithMessage(lib.GetUserMessage(lib.ErrAccountInactive)), gecho.Send())
		return nil
	}

	verified, err := rrm.authService.IsEmailVerified(r.Context(), user.Id)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return nil
	}
	if !verified {
		gecho.Forbidden(w, gecho.WithMessage(lib.GetUserMessage(lib.ErrEmailUnverified)), gecho.Send())
		return nil
	}

	return user
}

// HandleDownload serves the resume file to verified users and records the
// access event
func (rrm *ResumeRoutesManager) HandleDownload(w http.ResponseWriter, r *http.Request) {
	user := rrm.gate(w, r)
	if user == nil {
		return
	}

	clientIP := lib.ClientIP(r)
	go rrm.analyticsService.RecordResumeAccess(context.Background(), user.Id, clientIP)

	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, rrm.cfg.Content.ResumePath)
}

// HandleEmailResume emails the download link instead of serving the file
func (rrm *ResumeRoutesManager) HandleEmailResume(w http.ResponseWriter, r *http.Request) {
	user := rrm.gate(w, r)
	if user == nil {
		return
	}

	rrm.emailService.SendResumeEmail(r.Context(), user)

	clientIP := lib.ClientIP(r)
	go rrm.analyticsService.RecordResumeAccess(context.Background(), user.Id, clientIP)

	gecho.Success(w,
		gecho.WithMessage("The resume link has been sent to your email"),
		gecho.Send(),
	)
}
