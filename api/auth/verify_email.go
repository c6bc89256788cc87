package auth

import (
	"fmt"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleVerifyEmail consumes a verification link and redirects to the
// frontend. Re-opening a consumed link redirects with status "already"
// without touching the account.
func (ar *AuthRoutesManager) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	token, err := uuid.Parse(chi.URLParam(r, "token"))
	if err != nil {
		ar.logger.Warn("Invalid verification token format", gecho.Field("error", err))
		http.Redirect(w, r, getRedirectURL(ar.cfg.Server.FrontendURL, "err"), http.StatusSeeOther)
		return
	}

	alreadyVerified, err := ar.authService.VerifyEmail(r.Context(), token)
	if err != nil {
		ar.logger.Warn("Email verification failed", gecho.Field("error", err))
		http.Redirect(w, r, getRedirectURL(ar.cfg.Server.FrontendURL, "err"), http.StatusSeeOther)
		return
	}

	status := "ok"
	if alreadyVerified {
		status = "already"
	}

	// User needs to log in manually after verification
	http.Redirect(w, r, getRedirectURL(ar.cfg.Server.FrontendURL, status), http.StatusSeeOther)
}

func getRedirectURL(cfgURL, status string) string {
	return fmt.Sprintf("%s/email-verified?status=%s", cfgURL, status)
}
