// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for FoodHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_secret, etc.
//   - Environment variables: FOODHUB_MONGO_URI, FOODHUB_TOKEN_SECRET, etc.
//   - Command-line flags: --mongo_uri, --token_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "foodhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Token signing
	{Name: "token_secret", Default: "", Desc: "HMAC secret for signing API tokens (must be strong in production)"},
	{Name: "token_expiry", Default: "0s", Desc: "Token expiry (e.g., 24h); 0 disables expiry"},

	// Password hashing
	{Name: "bcrypt_cost", Default: 10, Desc: "bcrypt work factor for password hashing"},

	// Mail relay endpoint (credentials come with each request)
	{Name: "mail_smtp_host", Default: "smtp.gmail.com", Desc: "SMTP server host for the mail relay"},
	{Name: "mail_smtp_port", Default: 587, Desc: "SMTP server port for the mail relay"},
	{Name: "mail_timeout", Default: "15s", Desc: "Timeout for a single mail relay attempt"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FOODHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSecret: appValues.String("token_secret"),
		TokenExpiry: appValues.Duration("token_expiry", 0),

		BcryptCost: appValues.Int("bcrypt_cost"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailTimeout:  appValues.Duration("mail_timeout", 15*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// FoodHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect. A missing token secret is only
// warned about: historically the service starts without one and requests
// fail at the first issue/verify instead, and deployments rely on that.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.TokenSecret == "" {
		logger.Warn("token_secret is empty; issued tokens will not be secure and verification may fail")
	}

	return nil
}
