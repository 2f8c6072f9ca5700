// Package section serves the static dashboard sections rendered inside the
// layout.
package section

import (
	"net/http"

	module "github.com/louisbranch/acme-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/routepath"
)

// Module serves one dashboard section and the not-found pages below it.
type Module struct {
	id       string
	path     string
	titleKey string
	bodyKey  string
}

// Overview returns the dashboard landing section.
func Overview() Module {
	return Module{
		id:       "overview",
		path:     routepath.Dashboard,
		titleKey: "dashboard.overview.title",
		bodyKey:  "dashboard.overview.body",
	}
}

// Invoices returns the invoices section.
func Invoices() Module {
	return Module{
		id:       "invoices",
		path:     routepath.Invoices,
		titleKey: "dashboard.invoices.title",
		bodyKey:  "dashboard.invoices.body",
	}
}

// Customers returns the customers section.
func Customers() Module {
	return Module{
		id:       "customers",
		path:     routepath.Customers,
		titleKey: "dashboard.customers.title",
		bodyKey:  "dashboard.customers.body",
	}
}

// ID returns a stable module identifier.
func (m Module) ID() string { return m.id }

// Mount wires section route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, m.path, newHandlers(deps.Shell, m))
	return module.Mount{Prefix: m.path, Handler: mux}, nil
}
