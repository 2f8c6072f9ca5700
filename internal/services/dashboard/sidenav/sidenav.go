// Package sidenav renders the dashboard navigation widget.
package sidenav

import (
	"github.com/louisbranch/acme-dashboard/internal/platform/icons"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/routepath"
)

const (
	// ActiveClass marks the link for the current section.
	ActiveClass = "is-active"

	matchExact  = "exact"
	matchPrefix = "prefix"
)

// Link is one navigation entry.
type Link struct {
	Path     string
	LabelKey string
	Icon     icons.ID
}

// Links returns the dashboard navigation entries in display order.
func Links() []Link {
	return []Link{
		{Path: routepath.Dashboard, LabelKey: "dashboard.nav.home", Icon: icons.IDHome},
		{Path: routepath.Invoices, LabelKey: "dashboard.nav.invoices", Icon: icons.IDInvoices},
		{Path: routepath.Customers, LabelKey: "dashboard.nav.customers", Icon: icons.IDCustomers},
	}
}

func linkMatch(link Link) string {
	if link.Path == routepath.Dashboard {
		return matchExact
	}
	return matchPrefix
}

func iconHref(id icons.ID) string {
	return "#" + icons.LucideSymbolID(icons.LucideNameOrDefault(id))
}
