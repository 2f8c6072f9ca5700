// Package weberror renders error pages inside the dashboard shell.
package weberror

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/templates"
)

// ShouldRenderErrorPage reports whether statusCode gets the error page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteError writes the error page for err. Statuses without an error page
// fall back to a plain-text response.
func WriteError(w http.ResponseWriter, r *http.Request, shell pagerender.Shell, err error) {
	WriteStatus(w, r, shell, apperrors.HTTPStatus(err))
}

// WriteStatus writes the error page for statusCode in the content region.
func WriteStatus(w http.ResponseWriter, r *http.Request, shell pagerender.Shell, statusCode int) {
	if w == nil {
		return
	}
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if !ShouldRenderErrorPage(statusCode) {
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}
	err := pagerender.WritePage(w, r, shell, pagerender.Page{
		TitleKey:   templates.ErrorTitleKey(statusCode),
		StatusCode: statusCode,
		Content:    templates.ErrorState(statusCode),
	})
	if err != nil {
		log.Printf("render error page failed path=%s status=%d err=%v", httpx.RequestPath(r), statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}
