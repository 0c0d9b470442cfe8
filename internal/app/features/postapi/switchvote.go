// internal/app/features/postapi/switchvote.go
package postapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/foodhub/internal/app/store/voting"
	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleSwitchVote toggles the authenticated user's vote on a post.
//
// POST /api/post/switchvote with {"id": "<hex id>"}
// 200 "up voted" or "down voted"; 404 when the post does not exist.
func (h *Handler) HandleSwitchVote(w http.ResponseWriter, r *http.Request) {
	voterID, ok := currentObjectID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req switchVoteRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	postID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Posts.ToggleVote(ctx, postID, voterID)
	if err != nil {
		if errors.Is(err, voting.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Post not found")
			return
		}
		h.Log.Error("post vote toggle failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	msg := "up voted"
	if res == voting.Downvoted {
		msg = "down voted"
	}
	httpjson.Write(w, http.StatusOK, msg)
}
