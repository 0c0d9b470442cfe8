// internal/app/features/authapi/getuser.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleGetUser returns the authenticated user's profile, redacted.
//
// GET /api/auth/getuser
// 200 user; 403 when the account behind the token no longer exists.
func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := currentObjectID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "invalid token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusForbidden, "no user found")
			return
		}
		h.Log.Error("get user failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, user.Redacted())
}
