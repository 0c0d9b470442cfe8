// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (HTTP ports, TLS, logging level, CORS, body
// limits); AppConfig is everything specific to FoodHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Token configuration
	TokenSecret string        // HMAC secret for signing API tokens
	TokenExpiry time.Duration // 0 disables token expiry

	// Password hashing
	BcryptCost int

	// Mail relay. The SMTP endpoint is server config; the sending
	// credentials arrive with each mail request.
	MailSMTPHost string
	MailSMTPPort int
	MailTimeout  time.Duration
}
