// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/foodhub/internal/app/features/authapi"
	healthfeature "github.com/dalemusser/foodhub/internal/app/features/health"
	postfeature "github.com/dalemusser/foodhub/internal/app/features/postapi"
	poststore "github.com/dalemusser/foodhub/internal/app/store/posts"
	userstore "github.com/dalemusser/foodhub/internal/app/store/users"
	"github.com/dalemusser/foodhub/internal/app/system/mailer"
	"github.com/dalemusser/foodhub/internal/app/system/token"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. FoodHub wires the stores, the token
// issuer, and the mail relay into the two API feature routers plus the
// health endpoint.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	issuer := token.New(appCfg.TokenSecret, appCfg.TokenExpiry)

	users := userstore.New(deps.FoodHubMongoDatabase)
	posts := poststore.New(deps.FoodHubMongoDatabase)
	relay := mailer.New(appCfg.MailSMTPHost, appCfg.MailSMTPPort, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.FoodHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Accounts: register, login, profile, user voting
	authHandler := authfeature.NewHandler(users, issuer, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler, issuer))

	// Posts: CRUD, voting, mail relay
	postHandler := postfeature.NewHandler(posts, relay, logger)
	r.Mount("/api/post", postfeature.Routes(postHandler, issuer))

	return r, nil
}
