// internal/app/features/postapi/handler.go
package postapi

import (
	"net/http"

	poststore "github.com/dalemusser/foodhub/internal/app/store/posts"
	"github.com/dalemusser/foodhub/internal/app/system/auth"
	"github.com/dalemusser/foodhub/internal/app/system/mailer"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the post endpoints: create, list, read, update, delete,
// vote toggling, and the mail relay.
type Handler struct {
	Posts *poststore.Store
	Relay *mailer.Relay
	Log   *zap.Logger
}

func NewHandler(posts *poststore.Store, relay *mailer.Relay, logger *zap.Logger) *Handler {
	return &Handler{
		Posts: posts,
		Relay: relay,
		Log:   logger,
	}
}

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
