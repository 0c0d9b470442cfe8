// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/foodhub/internal/app/system/password"
	"github.com/dalemusser/foodhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	password.Configure(appCfg.BcryptCost)
	timeouts.Configure(timeouts.Config{Mail: appCfg.MailTimeout})
	return nil
}
