// Package module defines the contract dashboard feature modules implement.
package module

import (
	"net/http"

	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/pagerender"
)

// Dependencies carries shared collaborators available to modules.
type Dependencies struct {
	// Shell is the stable page frame every module renders into.
	Shell pagerender.Shell
}

// Mount describes where a module is mounted and which handler serves it.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one feature area of the dashboard.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
