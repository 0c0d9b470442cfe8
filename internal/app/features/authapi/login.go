// internal/app/features/authapi/login.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/password"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleLogin verifies credentials and issues a token.
//
// POST /api/auth/login
// 200 {token, user}; 403 when the email is not registered; 400 when the
// password does not verify. The two failures are deliberately distinct so
// "unknown account" and "wrong password" keep their historical statuses.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusForbidden, "please sign up first")
			return
		}
		h.Log.Error("login lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !password.Verify(req.Password, user.Password) {
		httpjson.Error(w, http.StatusBadRequest, "wrong password")
		return
	}

	tok, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	httpjson.Write(w, http.StatusOK, authResponse{Token: tok, User: *user})
}
