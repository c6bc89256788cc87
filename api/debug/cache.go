package debug

import (
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"

	"github.com/MonkyMars/gecho"
)

func (drm *DebugRoutesManager) ClearCache(w http.ResponseWriter, r *http.Request) {
	err := drm.cacheService.ClearAll()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to clear cache"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Cache cleared"),
		gecho.Send(),
	)
}

// RateLimitStatus reports the current counter for an ip/endpoint pair
func (drm *DebugRoutesManager) RateLimitStatus(w http.ResponseWriter, r *http.Request) {
	ip := r.URL.Query().Get("ip")
	if ip == "" {
		ip = lib.ClientIP(r)
	}
	endpoint := r.URL.Query().Get("endpoint")
	if endpoint == "" {
		gecho.BadRequest(w, gecho.WithMessage("endpoint query parameter is required"), gecho.Send())
		return
	}

	status, err := drm.cacheService.GetRateLimitStatus(ip, endpoint)
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to read rate limit status"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(status),
		gecho.Send(),
	)
}
