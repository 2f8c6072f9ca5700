package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type errorComponent struct{ err error }

func (c errorComponent) Render(context.Context, io.Writer) error {
	return c.err
}

const testNav = `<nav id="test-nav">nav</nav>`

func testShell() Shell {
	return Shell{Nav: textComponent(testNav)}
}

func TestWritePageFullDocument(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	err := WritePage(rr, req, testShell(), Page{TitleKey: "dashboard.invoices.title", Content: textComponent("Page A")})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	if got := rr.Header().Get("Vary"); got != "HX-Request" {
		t.Fatalf("vary = %q, want %q", got, "HX-Request")
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"<!doctype html>",
		"<title>Invoices | Acme</title>",
		`<div id="dashboard-nav" class="dashboard-nav">` + testNav + `</div>`,
		`<div id="dashboard-content" class="dashboard-content">Page A</div>`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %s", marker, body)
		}
	}
	if strings.Index(body, `id="dashboard-nav"`) > strings.Index(body, `id="dashboard-content"`) {
		t.Fatal("nav region rendered after content region")
	}
}

func TestWritePageHTMXFragment(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "dashboard-content")
	err := WritePage(rr, req, testShell(), Page{TitleKey: "dashboard.invoices.title", Content: textComponent("Page B")})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	want := "<title>Invoices | Acme</title>Page B"
	if got := rr.Body.String(); got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
	if got := rr.Header().Get("Vary"); got != "HX-Request" {
		t.Fatalf("vary = %q, want %q", got, "HX-Request")
	}
}

func TestWritePageHTMXOutsideContentRegionGetsDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "other target", headers: map[string]string{"HX-Request": "true", "HX-Target": "sidebar"}},
		{name: "history restore", headers: map[string]string{"HX-Request": "true", "HX-History-Restore-Request": "true"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			for key, value := range tc.headers {
				req.Header.Set(key, value)
			}
			if err := WritePage(rr, req, testShell(), Page{Content: textComponent("Page A")}); err != nil {
				t.Fatalf("WritePage() error = %v", err)
			}
			if !strings.Contains(rr.Body.String(), `id="dashboard-nav"`) {
				t.Fatalf("expected full document, got %s", rr.Body.String())
			}
		})
	}
}

func TestWritePageNavIdenticalAcrossContent(t *testing.T) {
	t.Parallel()

	navOf := func(content string) string {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		if err := WritePage(rr, req, testShell(), Page{Content: textComponent(content)}); err != nil {
			t.Fatalf("WritePage() error = %v", err)
		}
		body := rr.Body.String()
		return body[:strings.Index(body, `<div id="dashboard-content"`)]
	}
	if navOf("Page A") != navOf("<table><tr><td>Page B</td></tr></table>") {
		t.Fatal("output before the content region depends on content")
	}
}

func TestWritePageStatusCode(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/missing", nil)
	if err := WritePage(rr, req, testShell(), Page{StatusCode: http.StatusNotFound, Content: textComponent("gone")}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestWritePageBareSkipsLayout(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	if err := WritePage(rr, req, testShell(), Page{Bare: true, Content: textComponent("<main>home</main>")}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	if strings.Contains(body, `id="dashboard-nav"`) {
		t.Fatalf("bare page rendered the layout: %s", body)
	}
	if !strings.Contains(body, "</svg><main>home</main></body>") {
		t.Fatalf("bare page missing body content: %s", body)
	}
}

func TestWritePageLocalizesFromQuery(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices?lang=pt-BR", nil)
	if err := WritePage(rr, req, testShell(), Page{TitleKey: "dashboard.invoices.title"}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<html lang="pt-BR">`) || !strings.Contains(body, "<title>Faturas | Acme</title>") {
		t.Fatalf("body not localized: %s", body)
	}
	if got := rr.Header().Get("Set-Cookie"); !strings.Contains(got, "acme_lang=pt-BR") {
		t.Fatalf("set-cookie = %q, want acme_lang=pt-BR", got)
	}
}

func TestWritePageRenderErrorWritesNothing(t *testing.T) {
	t.Parallel()

	renderErr := errors.New("boom")
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	err := WritePage(rr, req, testShell(), Page{Content: errorComponent{err: renderErr}})
	if !errors.Is(err, renderErr) {
		t.Fatalf("WritePage() error = %v, want %v", err, renderErr)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
	if rr.Header().Get("Content-Type") != "" {
		t.Fatal("headers written for failed render")
	}
}

func TestWritePageNilWriter(t *testing.T) {
	t.Parallel()

	if err := WritePage(nil, httptest.NewRequest(http.MethodGet, "/", nil), testShell(), Page{}); err != nil {
		t.Fatalf("WritePage(nil) error = %v", err)
	}
}

// Mutates the global tracer provider, so not parallel.
func TestWritePageRecordsRenderSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("HX-Request", "true")
	if err := WritePage(httptest.NewRecorder(), req, testShell(), Page{Content: textComponent("x")}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Name() != "pagerender.WritePage" {
		t.Fatalf("span name = %q", spans[0].Name())
	}
	found := false
	for _, kv := range spans[0].Attributes() {
		if kv.Key == attribute.Key("dashboard.page.fragment") && kv.Value.AsBool() {
			found = true
		}
	}
	if !found {
		t.Fatalf("span attributes = %v, want dashboard.page.fragment=true", spans[0].Attributes())
	}
}

func TestWritePageClassifiesRenderErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	err := WritePage(httptest.NewRecorder(), req, testShell(), Page{Content: errorComponent{err: errors.New("boom")}})
	if got := apperrors.HTTPStatus(err); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(render error) = %d, want %d", got, http.StatusInternalServerError)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rr := httptest.NewRecorder()
	err = WritePage(rr, req.WithContext(ctx), testShell(), Page{Content: textComponent("late")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("WritePage() error = %v, want context.Canceled", err)
	}
	if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", got, apperrors.KindUnavailable)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}
