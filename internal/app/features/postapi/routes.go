// internal/app/features/postapi/routes.go
package postapi

import (
	"github.com/dalemusser/foodhub/internal/app/system/auth"
	"github.com/dalemusser/foodhub/internal/app/system/token"
	"github.com/go-chi/chi/v5"
)

// Routes returns the /api/post subrouter. Listing, single reads, content
// updates, and the mail relay are public; creation, deletion, and voting
// sit behind the token gate. Fixed paths are registered alongside the
// {id} wildcard; chi resolves literals first.
func Routes(h *Handler, issuer *token.Issuer) chi.Router {
	r := chi.NewRouter()

	r.Get("/allposts", h.HandleAllPosts)
	r.Post("/mail", h.HandleMail)
	r.Get("/{id}", h.HandleGetPost)
	r.Put("/{id}", h.HandleUpdatePost)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireToken(issuer))
		r.Post("/addpost", h.HandleAddPost)
		r.Post("/switchvote", h.HandleSwitchVote)
		r.Delete("/{id}", h.HandleDeletePost)
	})

	return r
}
