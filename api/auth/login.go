package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

// HandleLogin is the password phase. On success a login code is emailed and
// a pending-login cookie is set; no session exists until the code is
// confirmed.
func (ar *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	pendingID, err := ar.authService.Login(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrAccountInactive), errors.Is(err, lib.ErrEmailUnverified):
			gecho.Forbidden(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		case errors.Is(err, lib.ErrInvalidCredentials):
			gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		default:
			ar.logger.Error("Login failed", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		}
		return
	}

	expiry := time.Now().Add(ar.cfg.Auth.PendingLoginTTL)
	lib.SetCookie(lib.PendingCookieName, pendingID, expiry, w)

	gecho.Success(w,
		gecho.WithMessage("A login code has been sent to your email"),
		gecho.Send(),
	)
}
