// internal/app/features/authapi/handler.go
package authapi

import (
	"net/http"

	userstore "github.com/dalemusser/foodhub/internal/app/store/users"
	"github.com/dalemusser/foodhub/internal/app/system/auth"
	"github.com/dalemusser/foodhub/internal/app/system/token"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the account endpoints: registration, login, profile
// reads/updates, and user voting.
type Handler struct {
	Users  *userstore.Store
	Tokens *token.Issuer
	Log    *zap.Logger
}

func NewHandler(users *userstore.Store, tokens *token.Issuer, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		Tokens: tokens,
		Log:    logger,
	}
}

// currentObjectID returns the authenticated user's ID parsed as an
// ObjectID. A token whose user claim is not a valid ID is treated the same
// as a missing identity.
func currentObjectID(r *http.Request) (primitive.ObjectID, bool) {
	raw, ok := auth.CurrentUserID(r)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
