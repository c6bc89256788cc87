package auth

import (
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	accessToken, err := lib.GetCookieValue(lib.AccessCookieName, r)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid access token"), gecho.Send())
		return
	}

	claims, err := lib.ParseToken(accessToken, ar.cfg.Auth.AccessTokenSecret)
	if err != nil {
		ar.logger.Warn("Failed to parse access token", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid access token"), gecho.Send())
		return
	}

	user, err := ar.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		ar.logger.Warn("Failed to load user for /me", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		gecho.NotFound(w, gecho.WithMessage(lib.GetUserMessage(lib.ErrNotFound)), gecho.Send())
		return
	}

	user.PasswordHash = ""

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
