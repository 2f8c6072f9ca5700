// Package pagerender centralizes page rendering for full-document and HTMX
// content-swap requests.
package pagerender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/layout"
	apperrors "github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/htmx"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/i18n"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/observability"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/pagectx"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Shell is the stable part of every page: the navigation widget and the
// assets the document loads.
type Shell struct {
	Nav    templ.Component
	Assets templates.Assets
}

// Page describes one page response.
type Page struct {
	// TitleKey is a message key, or literal text, for the page title.
	TitleKey   string
	StatusCode int
	Content    templ.Component
	// Bare renders Content directly in the document without the dashboard
	// layout.
	Bare bool
}

// WritePage renders page and writes it to w. HTMX requests aimed at the
// content region receive only the region's inner HTML and a title tag;
// everything else receives the full document.
func WritePage(w http.ResponseWriter, r *http.Request, shell Shell, page Page) error {
	if w == nil {
		return nil
	}
	ctx, span := otel.Tracer(observability.TracerName).Start(httpx.RequestContext(r), "pagerender.WritePage")
	defer span.End()

	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	content := page.Content
	if content == nil {
		content = templ.NopComponent
	}

	loc, lang := i18n.ResolveLocalizer(w, r)
	ctx = pagectx.WithState(ctx, pagectx.State{
		CurrentPath: httpx.RequestPath(r),
		Lang:        lang,
		Loc:         loc,
	})
	title := i18n.T(loc, page.TitleKey)
	fragment := !page.Bare && htmx.WantsFragment(r, layout.ContentRegionID)
	span.SetAttributes(
		attribute.Bool("dashboard.page.fragment", fragment),
		attribute.Int("http.response.status_code", statusCode),
	)

	var buf bytes.Buffer
	var err error
	switch {
	case fragment:
		buf.WriteString(htmx.TitleTag(templates.ComposePageTitle(title)))
		err = layout.Region(content).Render(ctx, &buf)
	case page.Bare:
		err = templates.Document(documentOptions(shell, title, lang)).Render(templ.WithChildren(ctx, content), &buf)
	default:
		frame := layout.New(shell.Nav).Render(layout.Props{Content: content})
		err = templates.Document(documentOptions(shell, title, lang)).Render(templ.WithChildren(ctx, frame), &buf)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render page")
		return apperrors.Wrap(renderErrorKind(err), "render page", err)
	}

	header := w.Header()
	header.Set("Content-Type", "text/html; charset=utf-8")
	header.Add("Vary", htmx.RequestHeader)
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

func renderErrorKind(err error) apperrors.Kind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.KindUnavailable
	}
	return apperrors.KindUnknown
}

func documentOptions(shell Shell, title, lang string) templates.DocumentOptions {
	return templates.DocumentOptions{Title: title, Lang: lang, Assets: shell.Assets}
}
