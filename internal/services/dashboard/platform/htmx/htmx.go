// Package htmx reads HTMX request headers and writes HTMX-aware responses.
package htmx

import (
	"html"
	"net/http"
	"strings"
)

const (
	// RequestHeader marks requests issued by HTMX.
	RequestHeader = "HX-Request"
	// TargetHeader carries the id of the element the response will be swapped into.
	TargetHeader = "HX-Target"
	// HistoryRestoreHeader marks history cache misses that need a full document.
	HistoryRestoreHeader = "HX-History-Restore-Request"
	// RedirectHeader asks HTMX to perform a client-side full redirect.
	RedirectHeader = "HX-Redirect"
)

// IsRequest reports whether the request was initiated by HTMX.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(RequestHeader)), "true")
}

// IsHistoryRestore reports whether HTMX is restoring a page it had no
// snapshot for.
func IsHistoryRestore(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(HistoryRestoreHeader)), "true")
}

// Target returns the id of the element HTMX is swapping into, if any.
func Target(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(r.Header.Get(TargetHeader)), "#")
}

// WantsFragment reports whether the response should carry only the inner
// HTML of the element with id regionID. Requests without a target are
// treated as aimed at the region.
func WantsFragment(r *http.Request, regionID string) bool {
	if !IsRequest(r) || IsHistoryRestore(r) {
		return false
	}
	target := Target(r)
	return target == "" || target == regionID
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// WriteRedirect writes an HTMX-aware redirect response.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if w == nil {
		return
	}
	if IsRequest(r) {
		w.Header().Set(RedirectHeader, location)
		w.WriteHeader(http.StatusOK)
		return
	}
	if r == nil {
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
