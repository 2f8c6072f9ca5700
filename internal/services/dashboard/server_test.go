package dashboard

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"
)

func newTestHandler(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	h, err := NewHandler(Config{Logger: log.New(&logs, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h, &logs
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func renderNode(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		t.Fatalf("html.Render() error = %v", err)
	}
	return b.String()
}

func parseDocument(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func TestFullPageThenContentSwapKeepsNav(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	full := serve(h, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if full.Code != http.StatusOK {
		t.Fatalf("full status = %d, want %d", full.Code, http.StatusOK)
	}
	doc := parseDocument(t, full.Body.String())
	nav := findByID(doc, "dashboard-nav")
	content := findByID(doc, "dashboard-content")
	if nav == nil || content == nil {
		t.Fatalf("full page missing regions: %s", full.Body.String())
	}
	if nav.Parent != content.Parent || nav.NextSibling == nil {
		t.Fatal("nav and content regions are not siblings")
	}
	if !strings.Contains(renderNode(t, content), "<h1>Dashboard</h1>") {
		t.Fatalf("content region = %s", renderNode(t, content))
	}

	swapReq := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	swapReq.Header.Set("HX-Request", "true")
	swapReq.Header.Set("HX-Target", "dashboard-content")
	swap := serve(h, swapReq)
	if swap.Code != http.StatusOK {
		t.Fatalf("swap status = %d, want %d", swap.Code, http.StatusOK)
	}
	body := swap.Body.String()
	if strings.Contains(body, "dashboard-nav") || strings.Contains(body, "<html") {
		t.Fatalf("swap response should carry only content: %s", body)
	}
	if !strings.HasPrefix(body, "<title>Invoices | Acme</title>") || !strings.Contains(body, "<h1>Invoices</h1>") {
		t.Fatalf("swap body = %s", body)
	}
}

func TestNavIsIdenticalAcrossSectionsForSamePath(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	navHTML := func(path string) string {
		rr := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		nav := findByID(parseDocument(t, rr.Body.String()), "dashboard-nav")
		if nav == nil {
			t.Fatalf("%s missing nav region", path)
		}
		return renderNode(t, nav)
	}
	if navHTML("/dashboard/invoices") != navHTML("/dashboard/invoices/") {
		t.Fatal("nav differs for the same section")
	}
	invoicesNav := navHTML("/dashboard/invoices")
	if !strings.Contains(invoicesNav, `href="/dashboard/invoices"`) || !strings.Contains(invoicesNav, `aria-current="page"`) {
		t.Fatalf("nav missing active invoices link: %s", invoicesNav)
	}
}

func TestUnknownDashboardPathRendersNotFoundInLayout(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/dashboard/reports", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	doc := parseDocument(t, rr.Body.String())
	if findByID(doc, "dashboard-nav") == nil {
		t.Fatal("not-found page lost the nav region")
	}
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	tests := []struct {
		path        string
		contentType string
		marker      string
	}{
		{path: "/static/layout.css", contentType: "text/css", marker: "@media (min-width:768px)"},
		{path: "/static/base.css", contentType: "text/css", marker: ".sidenav"},
		{path: "/static/dashboard.js", contentType: "javascript", marker: "htmx:pushedIntoHistory"},
	}
	for _, tc := range tests {
		rr := serve(h, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", tc.path, rr.Code, http.StatusOK)
		}
		if got := rr.Header().Get("Content-Type"); !strings.Contains(got, tc.contentType) {
			t.Fatalf("%s content-type = %q, want %q", tc.path, got, tc.contentType)
		}
		if !strings.Contains(rr.Body.String(), tc.marker) {
			t.Fatalf("%s body missing %q", tc.path, tc.marker)
		}
	}
}

func TestHandlerLogsRequestsWithRequestID(t *testing.T) {
	t.Parallel()

	h, logs := newTestHandler(t)
	rr := serve(h, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	requestID := rr.Header().Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("missing X-Request-ID response header")
	}
	line := logs.String()
	for _, marker := range []string{"method=GET", "path=/up", "status=200", "request_id=" + requestID} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log missing %q: %q", marker, line)
		}
	}
}

func TestHandlerUsesConfiguredAssets(t *testing.T) {
	t.Parallel()

	h, err := NewHandler(Config{AssetBaseURL: "https://cdn.example.com", HTMXSrc: "/vendor/htmx.js", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	body := serve(h, httptest.NewRequest(http.MethodGet, "/dashboard", nil)).Body.String()
	for _, marker := range []string{`href="https://cdn.example.com/static/layout.css"`, `<script src="/vendor/htmx.js"></script>`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty http address")
	}
}

func TestNewServerUsesAddr(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(context.Background(), Config{HTTPAddr: " 127.0.0.1:0 "})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer srv.Close()
	if got := srv.Addr(); got != "127.0.0.1:0" {
		t.Fatalf("Addr() = %q, want %q", got, "127.0.0.1:0")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}

func TestListenAndServeRejectsNilReceiverAndContext(t *testing.T) {
	t.Parallel()

	var nilServer *Server
	if err := nilServer.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	srv := &Server{}
	//nolint:staticcheck // nil context is the case under test.
	if err := srv.ListenAndServe(nil); err == nil {
		t.Fatal("expected error for nil context")
	}
	nilServer.Close()
}

func TestHTMXNotFoundSwapsErrorStateIntoContent(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/dashboard/reports", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "dashboard-content")
	rr := serve(h, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "<title>Page not found | Acme</title>") || !strings.Contains(body, `data-status="404"`) {
		t.Fatalf("fragment = %s", body)
	}
	if strings.Contains(body, "dashboard-nav") {
		t.Fatalf("fragment should not include the nav region: %s", body)
	}

	script := serve(h, httptest.NewRequest(http.MethodGet, "/static/dashboard.js", nil)).Body.String()
	for _, marker := range []string{
		"htmx.config.responseHandling",
		`{ code: "404", swap: true, error: false }`,
		`{ code: "5..", swap: true, error: true }`,
	} {
		if !strings.Contains(script, marker) {
			t.Fatalf("dashboard.js missing %q", marker)
		}
	}
}
