// Package dashboard parses dashboard command flags and starts the service.
package dashboard

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/acme-dashboard/internal/platform/cmd"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard"
)

// Config holds dashboard command configuration.
type Config struct {
	HTTPAddr     string `env:"ACME_DASHBOARD_HTTP_ADDR"       envDefault:"localhost:3000"`
	AssetBaseURL string `env:"ACME_DASHBOARD_ASSET_BASE_URL"`
	HTMXSrc      string `env:"ACME_DASHBOARD_HTMX_SRC"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "dashboard HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "base URL prepended to static asset paths")
	fs.StringVar(&cfg.HTMXSrc, "htmx-src", cfg.HTMXSrc, "HTMX script URL")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dashboard server and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDashboard, func(ctx context.Context) error {
		server, err := dashboard.NewServer(ctx, dashboard.Config{
			HTTPAddr:     cfg.HTTPAddr,
			AssetBaseURL: cfg.AssetBaseURL,
			HTMXSrc:      cfg.HTMXSrc,
		})
		if err != nil {
			return fmt.Errorf("init dashboard server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve dashboard: %w", err)
		}
		return nil
	})
}
