package modules

import (
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/modules/public"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/modules/section"
)

// DefaultPublicModules returns modules served outside the dashboard layout.
func DefaultPublicModules() []Module {
	return []Module{
		public.New(),
	}
}

// DefaultDashboardModules returns modules rendered inside the dashboard layout.
func DefaultDashboardModules() []Module {
	return []Module{
		section.Overview(),
		section.Invoices(),
		section.Customers(),
	}
}
