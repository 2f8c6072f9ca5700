// Package routepath stores canonical HTTP paths for the dashboard service.
package routepath

import "strings"

const (
	Root            = "/"
	Health          = "/up"
	Logout          = "/logout"
	StaticPrefix    = "/static/"
	LayoutStyles    = "/static/layout.css"
	Dashboard       = "/dashboard"
	DashboardPrefix = "/dashboard/"
	Invoices        = "/dashboard/invoices"
	Customers       = "/dashboard/customers"
)

// IsDashboardPath reports whether path is served inside the dashboard layout.
func IsDashboardPath(path string) bool {
	path = strings.TrimSpace(path)
	return path == Dashboard || strings.HasPrefix(path, DashboardPrefix)
}

// Matches reports whether currentPath selects the navigation entry for
// target. The dashboard root only matches itself; other entries also match
// their sub-paths.
func Matches(target, currentPath string) bool {
	target = trimTrailingSlash(strings.TrimSpace(target))
	currentPath = trimTrailingSlash(strings.TrimSpace(currentPath))
	if target == "" || currentPath == "" {
		return false
	}
	if target == currentPath {
		return true
	}
	if target == Dashboard || target == Root {
		return false
	}
	return strings.HasPrefix(currentPath, target+"/")
}

func trimTrailingSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimRight(path, "/")
	}
	return path
}
