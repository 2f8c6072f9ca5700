// Package templates holds the dashboard's shared HTML components.
package templates

import (
	"strings"

	"github.com/louisbranch/acme-dashboard/internal/platform/branding"
)

// DefaultHTMXSrc is the HTMX script loaded when no override is configured.
const DefaultHTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

const (
	baseStylesPath = "/static/base.css"
	scriptPath     = "/static/dashboard.js"
)

// Assets locates the stylesheets and scripts referenced by the document.
type Assets struct {
	// BaseURL prefixes local static asset paths; empty serves them from
	// this host.
	BaseURL string
	HTMXSrc string
}

// DocumentOptions configures the document shell.
type DocumentOptions struct {
	Title  string
	Lang   string
	Assets Assets
}

// ComposePageTitle appends the application name to title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == branding.AppName {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

func documentLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "en-US"
	}
	return lang
}

func htmxSrc(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return DefaultHTMXSrc
	}
	return src
}

func assetURL(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return base + path
}
