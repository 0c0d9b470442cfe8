// internal/app/features/authapi/upvote.go
package authapi

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

// HandleUpvote toggles the authenticated user's vote on another user.
//
// POST /api/auth/upvote with {"userID": "<hex id>"}
// 200 {message}; 404 when the target user does not exist. Voting for
// yourself is allowed.
func (h *Handler) HandleUpvote(w http.ResponseWriter, r *http.Request) {
	voterID, ok := currentObjectID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req upvoteRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Users.ToggleVote(ctx, targetID, voterID)
	if err != nil {
		if errors.Is(err, voting.ErrNotFound) {
			httpjson.Write(w, http.StatusNotFound, messageResponse{Message: "User not found"})
			return
		}
		h.Log.Error("user vote toggle failed", zap.Error(err))
		httpjson.Write(w, http.StatusInternalServerError, messageResponse{Message: "Error occurred while voting"})
		return
	}

	msg := "Upvoted successfully"
	if res == voting.Downvoted {
		msg = "Downvoted successfully"
	}
	httpjson.Write(w, http.StatusOK, messageResponse{Message: msg})
}
