// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/dalemusser/foodhub/internal/app/system/auth"
	"github.com/dalemusser/foodhub/internal/app/system/token"
	"github.com/go-chi/chi/v5"
)

// Routes returns the /api/auth subrouter. Registration and login are
// public; everything else sits behind the token gate.
func Routes(h *Handler, issuer *token.Issuer) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireToken(issuer))
		r.Get("/getuser", h.HandleGetUser)
		r.Put("/update_user", h.HandleUpdateUser)
		r.Post("/upvote", h.HandleUpvote)
	})

	return r
}
