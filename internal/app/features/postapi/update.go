// internal/app/features/postapi/update.go
package postapi

import (
	"context"
	"errors"
	"net/http"

	poststore "github.com/dalemusser/foodhub/internal/app/store/posts"
	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdatePost applies a partial content update to a post and returns
// the updated document with its author expanded.
//
// PUT /api/post/{id}
func (h *Handler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "no posts found")
		return
	}

	var req updatePostRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Posts.Apply(ctx, id, poststore.Update{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		Quantity:    req.Quantity,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "no posts found")
			return
		}
		h.Log.Error("update post failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	post.Author = post.Author.Redacted()

	httpjson.Write(w, http.StatusOK, post)
}
