package auth

import (
	"errors"
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract and validate request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your registration information"), gecho.WithData(err), gecho.Send())
		return
	}

	user, err := ar.authService.Register(r.Context(), body)
	if err != nil {
		userMessage := lib.GetUserMessage(err)

		// Unique violations return 409 Conflict (already logged as warn in service)
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage(userMessage), gecho.Send())
			return
		}

		if isPasswordPolicyError(err) {
			gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
			return
		}

		gecho.InternalServerError(w, gecho.WithMessage(userMessage), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account created. Check your email for a verification link"),
		gecho.WithData(user),
		gecho.Send(),
	)
}

func isPasswordPolicyError(err error) bool {
	return errors.Is(err, lib.ErrPasswordTooShort) ||
		errors.Is(err, lib.ErrPasswordNumeric) ||
		errors.Is(err, lib.ErrPasswordTooCommon) ||
		errors.Is(err, lib.ErrPasswordTooSimilar)
}
