package auth

import (
	"errors"
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

// HandleResendVerification re-issues the verification email for an address.
// Unknown addresses get a 404; callers can tell whether an account exists,
// which mirrors how the rest of the registration flow behaves.
func (ar *AuthRoutesManager) HandleResendVerification(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ResendVerificationRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("A valid email address is required"), gecho.WithData(err), gecho.Send())
		return
	}

	err = ar.authService.ResendVerification(r.Context(), body.Email)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("No account found for that email address"), gecho.Send())
		case errors.Is(err, lib.ErrAlreadyVerified):
			gecho.Success(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		case errors.Is(err, lib.ErrTooManyRequests):
			gecho.TooManyRequests(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		default:
			ar.logger.Error("Failed to resend verification email", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("Failed to send verification email"), gecho.Send())
		}
		return
	}

	gecho.Success(w, gecho.WithMessage("Verification email sent"), gecho.Send())
}
