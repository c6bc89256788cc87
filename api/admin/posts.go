package admin

import (
	"errors"
	"net/http"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/lib"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.PostRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate post", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the post fields"), gecho.WithData(err), gecho.Send())
		return
	}

	post, err := arm.blogService.CreatePost(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("A post with that slug already exists"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Post created"),
		gecho.WithData(post),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid post id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.PostRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract and validate post", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the post fields"), gecho.WithData(err), gecho.Send())
		return
	}

	post, err := arm.blogService.UpdatePost(r.Context(), id, body)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Post not found"), gecho.Send())
			return
		}
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("A post with that slug already exists"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Post updated"),
		gecho.WithData(post),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid post id"), gecho.Send())
		return
	}

	if err := arm.blogService.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Post not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Post deleted"),
		gecho.Send(),
	)
}
