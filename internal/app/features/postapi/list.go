// internal/app/features/postapi/list.go
package postapi

import (
	"context"
	"net/http"

	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleAllPosts lists every post, newest first, authors expanded.
//
// GET /api/post/allposts
func (h *Handler) HandleAllPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Posts.All(ctx)
	if err != nil {
		h.Log.Error("listing posts failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	for i := range posts {
		posts[i].Author = posts[i].Author.Redacted()
	}
	httpjson.Write(w, http.StatusOK, posts)
}
