package auth

import (
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh rotates the session cookies using the refresh token
func (ar *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("No refresh token found"), gecho.Send())
		return
	}

	authResponse, err := ar.authService.RefreshAccessToken(r.Context(), refreshToken)
	if err != nil {
		ar.logger.Warn("Failed to refresh access token", gecho.Field("error", err))
		lib.ClearCookie(lib.AccessCookieName, w)
		lib.ClearCookie(lib.RefreshCookieName, w)
		gecho.Unauthorized(w, gecho.WithMessage("Session expired. Please log in again"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, authResponse.RefreshToken, ar.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, authResponse.AccessToken, ar.authService.GetAccessTokenExpiration(), w)

	authResponse.User.PasswordHash = ""

	gecho.Success(w,
		gecho.WithMessage("Session refreshed"),
		gecho.WithData(authResponse.User),
		gecho.Send(),
	)
}
