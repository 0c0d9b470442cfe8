// internal/app/features/postapi/delete.go
package postapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDeletePost removes a post and returns the removed document.
// Deleting a missing post is a 404, including the second delete of the
// same ID.
//
// DELETE /api/post/{id}
func (h *Handler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Posts.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Post not found")
			return
		}
		h.Log.Error("delete post failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, deleted)
}
