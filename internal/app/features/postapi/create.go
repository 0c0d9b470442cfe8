// internal/app/features/postapi/create.go
package postapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	poststore "github.com/dalemusser/foodhub/internal/app/store/posts"
	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"github.com/dalemusser/foodhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleAddPost creates a post authored by the authenticated user and
// returns it with the author expanded.
//
// POST /api/post/addpost
func (h *Handler) HandleAddPost(w http.ResponseWriter, r *http.Request) {
	authorID, ok := currentObjectID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req addPostRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Posts.Create(ctx, models.Post{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		Quantity:    req.Quantity,
		PostedBy:    authorID,
	})
	if err != nil {
		if errors.Is(err, poststore.ErrAuthorNotFound) {
			httpjson.Error(w, http.StatusForbidden, "no user found")
			return
		}
		h.Log.Error("add post failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	expanded, err := h.Posts.GetByID(ctx, created.ID)
	if err != nil {
		h.Log.Error("expanding created post failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	expanded.Author = expanded.Author.Redacted()

	httpjson.Write(w, http.StatusOK, expanded)
}
