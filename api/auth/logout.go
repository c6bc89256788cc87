package auth

import (
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var accessClaims, refreshClaims *structs.AuthClaims

	if accessToken, err := lib.GetCookieValue(lib.AccessCookieName, r); err == nil {
		if claims, err := lib.ParseToken(accessToken, ar.cfg.Auth.AccessTokenSecret); err == nil {
			accessClaims = claims
		} else {
			ar.logger.Warn("Failed to parse access token during logout", gecho.Field("error", err))
		}
	}

	if refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r); err == nil {
		if claims, err := lib.ParseToken(refreshToken, ar.cfg.Auth.RefreshTokenSecret); err == nil {
			refreshClaims = claims
		}
	}

	if accessClaims == nil && refreshClaims == nil {
		lib.ClearCookie(lib.AccessCookieName, w)
		lib.ClearCookie(lib.RefreshCookieName, w)
		gecho.Success(w,
			gecho.WithMessage("No active session"),
			gecho.Send(),
		)
		return
	}

	if err := ar.authService.Logout(accessClaims, refreshClaims); err != nil {
		ar.logger.Error("Failed to blacklist tokens during logout", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to logout"),
			gecho.Send(),
		)
		return
	}

	// Also clear user from cache
	if accessClaims != nil {
		if err := ar.cacheService.InvalidateUserCache(accessClaims.Sub); err != nil {
			ar.logger.Error("Failed to clear user cache during logout", gecho.Field("error", err), gecho.Field("user_id", accessClaims.Sub))
		}
	}

	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
