// Package i18n resolves the request language and localizer for dashboard
// handlers and templates.
package i18n

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/acme-dashboard/internal/platform/i18n"
	"github.com/louisbranch/acme-dashboard/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "acme_lang"
)

// Localizer provides translated strings for handlers and templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if r.URL != nil {
		if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
			if tag, ok := platformi18n.ParseTag(langValue); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves a printer and language string for a request,
// persisting an explicit ?lang= choice.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return message.NewPrinter(tag), tag.String()
}

// CheckCatalog reports an error when a supported language is absent from
// the message catalog or leaves base-locale keys untranslated.
func CheckCatalog() error {
	bundle := catalog.Default()
	for _, tag := range platformi18n.SupportedTags() {
		locale := tag.String()
		if !bundle.HasLocale(locale) {
			return fmt.Errorf("catalog has no %s messages", locale)
		}
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			return fmt.Errorf("catalog %s missing keys: %s", locale, strings.Join(missing, ", "))
		}
	}
	return nil
}
