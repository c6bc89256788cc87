package auth

import (
	"errors"
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

// HandleVerifyLoginCode is the code phase. A correct, unexpired, unused code
// completes the login and issues the session cookies.
func (ar *AuthRoutesManager) HandleVerifyLoginCode(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginCodeRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("A 6-digit code is required"), gecho.Send())
		return
	}

	pendingID, err := lib.GetCookieValue(lib.PendingCookieName, r)
	if err != nil || pendingID == "" {
		gecho.Unauthorized(w, gecho.WithMessage(lib.GetUserMessage(lib.ErrNoPendingLogin)), gecho.Send())
		return
	}

	authResponse, err := ar.authService.ConfirmLoginCode(r.Context(), pendingID, body.Code)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrNoPendingLogin), errors.Is(err, lib.ErrCodeInvalid):
			gecho.Unauthorized(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		default:
			ar.logger.Error("Login code confirmation failed", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		}
		return
	}

	lib.SetCookie(lib.RefreshCookieName, authResponse.RefreshToken, ar.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, authResponse.AccessToken, ar.authService.GetAccessTokenExpiration(), w)
	lib.ClearCookie(lib.PendingCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(authResponse.User),
		gecho.Send(),
	)
}
