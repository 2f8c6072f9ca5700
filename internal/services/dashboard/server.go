// Package dashboard hosts the browser-facing dashboard service: a stable
// navigation shell with a content region swapped by HTMX.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/acme-dashboard/internal/platform/timeouts"
	dashboardapp "github.com/louisbranch/acme-dashboard/internal/services/dashboard/app"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/layout"
	module "github.com/louisbranch/acme-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/modules"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/httpx"
	dashboardi18n "github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/i18n"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/observability"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/sidenav"
	dashboardstatic "github.com/louisbranch/acme-dashboard/internal/services/dashboard/static"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/templates"
)

// Config defines startup inputs for the dashboard service.
type Config struct {
	HTTPAddr     string
	AssetBaseURL string
	HTMXSrc      string
	// Logger receives request logs; nil uses log.Default().
	Logger *log.Logger
}

// Server hosts the dashboard HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if err := dashboardi18n.CheckCatalog(); err != nil {
		return nil, fmt.Errorf("check message catalog: %w", err)
	}
	deps := module.Dependencies{
		Shell: pagerender.Shell{
			Nav: sidenav.SideNav(),
			Assets: templates.Assets{
				BaseURL: strings.TrimSpace(cfg.AssetBaseURL),
				HTMXSrc: strings.TrimSpace(cfg.HTMXSrc),
			},
		},
	}
	h, err := dashboardapp.Composer{}.Compose(dashboardapp.ComposeInput{
		Dependencies:     deps,
		PublicModules:    modules.DefaultPublicModules(),
		DashboardModules: modules.DefaultDashboardModules(),
	})
	if err != nil {
		return nil, err
	}

	layoutCSS := layout.DefaultPolicy.Stylesheet()
	rootMux := http.NewServeMux()
	rootMux.HandleFunc(http.MethodGet+" "+routepath.LayoutStyles, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = io.WriteString(w, layoutCSS)
	})
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(dashboardstatic.FS))))
	rootMux.Handle(routepath.Root, h)

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a dashboard server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose dashboard handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("dashboard server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("dashboard listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown dashboard http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve dashboard http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
