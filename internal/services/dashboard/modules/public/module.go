// Package public serves routes outside the dashboard layout: the landing
// page, the health check, and sign-out.
package public

import (
	"net/http"

	module "github.com/louisbranch/acme-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/routepath"
)

// Module provides public routes.
type Module struct{}

// New returns a public module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps.Shell))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
