package templates

import "net/http"

const (
	errorTitleNotFoundKey = "dashboard.error.not_found"
	errorTitleInternalKey = "dashboard.error.internal"
	errorBodyNotFoundKey  = "dashboard.error.not_found_body"
	errorBodyInternalKey  = "dashboard.error.internal_body"
	errorBackKey          = "dashboard.error.back"
)

// ErrorTitleKey returns the message key of the page title for statusCode.
func ErrorTitleKey(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return errorTitleNotFoundKey
	}
	return errorTitleInternalKey
}

func errorBodyKey(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return errorBodyNotFoundKey
	}
	return errorBodyInternalKey
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
