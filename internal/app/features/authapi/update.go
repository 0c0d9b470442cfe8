// internal/app/features/authapi/update.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/dalemusser/foodhub/internal/app/store/users"
	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/password"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdateUser applies a partial profile update to the authenticated
// user.
//
// PUT /api/auth/update_user
// Accepts any subset of name, email, password; a supplied password is
// re-hashed before storage. 200 with the updated, redacted user.
func (h *Handler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := currentObjectID(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req updateUserRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == nil && req.Email == nil && req.Password == nil {
		httpjson.Error(w, http.StatusBadRequest, "no updatable fields supplied")
		return
	}

	upd := userstore.Update{Name: req.Name, Email: req.Email}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			h.Log.Error("password hashing failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "update failed")
			return
		}
		upd.Password = &hash
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.Apply(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.Error(w, http.StatusNotFound, "no user found")
		case errors.Is(err, userstore.ErrDuplicateEmail):
			httpjson.Error(w, http.StatusInternalServerError, "user already exists.")
		default:
			h.Log.Error("update user failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "error occured")
		}
		return
	}

	httpjson.Write(w, http.StatusOK, user.Redacted())
}
