// Package layout renders the dashboard frame: a navigation region and a
// content region. The frame is stateless; it never inspects or stores the
// content it wraps.
package layout

import "github.com/a-h/templ"

const (
	// RootID identifies the frame element.
	RootID = "dashboard-layout"
	// NavRegionID identifies the navigation region.
	NavRegionID = "dashboard-nav"
	// ContentRegionID identifies the content region; HTMX swaps target it.
	ContentRegionID = "dashboard-content"
)

const (
	rootClass    = "dashboard-layout"
	navClass     = "dashboard-nav"
	contentClass = "dashboard-content"
)

// Props carries the page body. A nil Content renders the templ children
// found in the render context.
type Props struct {
	Content templ.Component
}

// Layout composes a navigation widget with page content.
type Layout struct {
	nav templ.Component
}

// New returns a layout that renders nav in the navigation region. The
// widget receives no inputs from the layout.
func New(nav templ.Component) Layout {
	if nav == nil {
		nav = templ.NopComponent
	}
	return Layout{nav: nav}
}

// Nav returns the navigation widget rendered by the layout.
func (l Layout) Nav() templ.Component {
	if l.nav == nil {
		return templ.NopComponent
	}
	return l.nav
}

// Render returns the frame with props.Content in the content region.
func (l Layout) Render(props Props) templ.Component {
	return frame(l.Nav(), props.Content)
}

// DashboardLayout renders props inside a frame around nav.
func DashboardLayout(nav templ.Component, props Props) templ.Component {
	return New(nav).Render(props)
}
