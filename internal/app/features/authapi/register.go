// internal/app/features/authapi/register.go
package authapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/foodhub/internal/app/store/users"
	"github.com/dalemusser/foodhub/internal/app/system/httpjson"
	"github.com/dalemusser/foodhub/internal/app/system/password"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"github.com/dalemusser/foodhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleRegister creates an account and signs the new user in.
//
// POST /api/auth/register
// 201 {token, user} on success; 500 when the email is already registered.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		h.Log.Error("password hashing failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "registration failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusInternalServerError, "user already exists.")
			return
		}
		h.Log.Error("registration failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	tok, err := h.Tokens.Issue(user.ID.Hex())
	if err != nil {
		h.Log.Error("token issue failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "registration failed")
		return
	}

	httpjson.Write(w, http.StatusCreated, authResponse{Token: tok, User: user})
}
