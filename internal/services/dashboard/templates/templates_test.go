package templates

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/pagectx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func renderString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func englishContext() context.Context {
	return pagectx.WithState(context.Background(), pagectx.State{Loc: message.NewPrinter(language.AmericanEnglish)})
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":          "Acme",
		"  ":        "Acme",
		"Acme":      "Acme",
		"Invoices":  "Invoices | Acme",
		" Reports ": "Reports | Acme",
	}
	for input, want := range tests {
		if got := ComposePageTitle(input); got != want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDocumentRendersShellAroundChildren(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), textComponent(`<div id="child">child</div>`))
	body := renderString(t, ctx, Document(DocumentOptions{Title: "Invoices", Lang: "pt-BR"}))

	for _, marker := range []string{
		`<!doctype html><html lang="pt-BR">`,
		`<title>Invoices | Acme</title>`,
		`<link rel="stylesheet" href="/static/base.css">`,
		`<link rel="stylesheet" href="/static/layout.css">`,
		`<script src="` + DefaultHTMXSrc + `"></script>`,
		`<script src="/static/dashboard.js" defer></script>`,
		`<symbol id="lucide-house"`,
		`</svg><div id="child">child</div></body></html>`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("document missing %q: %s", marker, body)
		}
	}
}

func TestDocumentUsesConfiguredAssets(t *testing.T) {
	t.Parallel()

	body := renderString(t, context.Background(), Document(DocumentOptions{
		Assets: Assets{BaseURL: "https://cdn.example.com/", HTMXSrc: "/vendor/htmx.min.js"},
	}))
	for _, marker := range []string{
		`<html lang="en-US">`,
		`href="https://cdn.example.com/static/base.css"`,
		`href="https://cdn.example.com/static/layout.css"`,
		`<script src="/vendor/htmx.min.js"></script>`,
		`<title>Acme</title>`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("document missing %q: %s", marker, body)
		}
	}
}

func TestDocumentEscapesTitle(t *testing.T) {
	t.Parallel()

	body := renderString(t, context.Background(), Document(DocumentOptions{Title: `<script>alert(1)</script>`}))
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Fatalf("title was not escaped: %s", body)
	}
}

func TestSectionPageLocalizes(t *testing.T) {
	t.Parallel()

	body := renderString(t, englishContext(), SectionPage("invoices", "dashboard.invoices.title", "dashboard.invoices.body"))
	want := `<section id="invoices" class="dashboard-section"><h1>Invoices</h1><p>Invoices will be listed here.</p></section>`
	if body != want {
		t.Fatalf("SectionPage() = %q, want %q", body, want)
	}
}

func TestErrorState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status     int
		wantStatus string
		wantTitle  string
	}{
		{status: http.StatusNotFound, wantStatus: `data-status="404"`, wantTitle: "<h1>Page not found</h1>"},
		{status: http.StatusInternalServerError, wantStatus: `data-status="500"`, wantTitle: "<h1>Something went wrong</h1>"},
		{status: http.StatusBadGateway, wantStatus: `data-status="500"`, wantTitle: "<h1>Something went wrong</h1>"},
	}
	for _, tc := range tests {
		body := renderString(t, englishContext(), ErrorState(tc.status))
		if !strings.Contains(body, tc.wantStatus) || !strings.Contains(body, tc.wantTitle) {
			t.Fatalf("ErrorState(%d) = %s", tc.status, body)
		}
		if !strings.Contains(body, `<a href="/dashboard">Go back</a>`) {
			t.Fatalf("ErrorState(%d) missing back link: %s", tc.status, body)
		}
	}
}

func TestErrorTitleKey(t *testing.T) {
	t.Parallel()

	if got := ErrorTitleKey(http.StatusNotFound); got != "dashboard.error.not_found" {
		t.Fatalf("ErrorTitleKey(404) = %q", got)
	}
	if got := ErrorTitleKey(http.StatusServiceUnavailable); got != "dashboard.error.internal" {
		t.Fatalf("ErrorTitleKey(503) = %q", got)
	}
}

func TestHomePageLinksToDashboard(t *testing.T) {
	t.Parallel()

	body := renderString(t, englishContext(), HomePage())
	for _, marker := range []string{"<h1>Welcome to Acme</h1>", `<a class="home-cta" href="/dashboard">Open the dashboard</a>`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("home page missing %q: %s", marker, body)
		}
	}
}
