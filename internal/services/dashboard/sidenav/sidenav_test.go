package sidenav

import (
	"context"
	"strings"
	"testing"

	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/pagectx"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/routepath"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func renderNav(t *testing.T, state pagectx.State) string {
	t.Helper()
	var b strings.Builder
	if err := SideNav().Render(pagectx.WithState(context.Background(), state), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func navLinks(t *testing.T, body string) []*html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return findAll(doc, func(n *html.Node) bool { return attr(n, "data-nav-path") != "" })
}

func TestSideNavRendersLinksInOrder(t *testing.T) {
	t.Parallel()

	body := renderNav(t, pagectx.State{
		CurrentPath: routepath.Dashboard,
		Loc:         message.NewPrinter(language.AmericanEnglish),
	})
	links := navLinks(t, body)
	if len(links) != 3 {
		t.Fatalf("nav links = %d, want 3", len(links))
	}
	wantPaths := []string{routepath.Dashboard, routepath.Invoices, routepath.Customers}
	wantLabels := []string{"Home", "Invoices", "Customers"}
	for i, link := range links {
		if got := attr(link, "href"); got != wantPaths[i] {
			t.Fatalf("link %d href = %q, want %q", i, got, wantPaths[i])
		}
		if got := attr(link, "hx-get"); got != wantPaths[i] {
			t.Fatalf("link %d hx-get = %q, want %q", i, got, wantPaths[i])
		}
		if got := attr(link, "hx-target"); got != "#dashboard-content" {
			t.Fatalf("link %d hx-target = %q", i, got)
		}
		if got := attr(link, "hx-push-url"); got != "true" {
			t.Fatalf("link %d hx-push-url = %q", i, got)
		}
		if got := text(link); got != wantLabels[i] {
			t.Fatalf("link %d label = %q, want %q", i, got, wantLabels[i])
		}
	}
	for _, marker := range []string{
		`class="sidenav-logo" href="/"`,
		">Acme</a>",
		`action="/logout"`,
		`<use href="#lucide-house"></use>`,
		`<use href="#lucide-files"></use>`,
		`<use href="#lucide-users"></use>`,
		`<use href="#lucide-log-out"></use></svg>Sign Out</button>`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("nav missing %q: %s", marker, body)
		}
	}
}

func TestSideNavMarksActiveLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantActive string
	}{
		{name: "overview", path: "/dashboard", wantActive: routepath.Dashboard},
		{name: "invoices", path: "/dashboard/invoices", wantActive: routepath.Invoices},
		{name: "invoice detail", path: "/dashboard/invoices/42/edit", wantActive: routepath.Invoices},
		{name: "customers trailing slash", path: "/dashboard/customers/", wantActive: routepath.Customers},
		{name: "unknown section", path: "/dashboard/reports", wantActive: ""},
		{name: "no path", path: "", wantActive: ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			links := navLinks(t, renderNav(t, pagectx.State{CurrentPath: tc.path}))
			var active []string
			for _, link := range links {
				if attr(link, "aria-current") == "page" {
					active = append(active, attr(link, "href"))
					if !strings.Contains(attr(link, "class"), ActiveClass) {
						t.Fatalf("active link %q missing class %q", attr(link, "href"), ActiveClass)
					}
				}
			}
			if tc.wantActive == "" {
				if len(active) != 0 {
					t.Fatalf("active links = %v, want none", active)
				}
				return
			}
			if len(active) != 1 || active[0] != tc.wantActive {
				t.Fatalf("active links = %v, want [%s]", active, tc.wantActive)
			}
		})
	}
}

func TestSideNavMatchModes(t *testing.T) {
	t.Parallel()

	links := navLinks(t, renderNav(t, pagectx.State{}))
	want := map[string]string{
		routepath.Dashboard: "exact",
		routepath.Invoices:  "prefix",
		routepath.Customers: "prefix",
	}
	for _, link := range links {
		path := attr(link, "data-nav-path")
		if got := attr(link, "data-nav-match"); got != want[path] {
			t.Fatalf("data-nav-match for %q = %q, want %q", path, got, want[path])
		}
	}
}

func TestSideNavLocalizesLabels(t *testing.T) {
	t.Parallel()

	body := renderNav(t, pagectx.State{
		CurrentPath: routepath.Invoices,
		Loc:         message.NewPrinter(language.BrazilianPortuguese),
	})
	for _, label := range []string{"Início", "Faturas", "Clientes", "Sair"} {
		if !strings.Contains(body, label) {
			t.Fatalf("nav missing pt-BR label %q: %s", label, body)
		}
	}
}

func TestSideNavIsStableForSameState(t *testing.T) {
	t.Parallel()

	state := pagectx.State{CurrentPath: routepath.Customers, Loc: message.NewPrinter(language.AmericanEnglish)}
	if renderNav(t, state) != renderNav(t, state) {
		t.Fatal("nav output differs across renders with the same state")
	}
}
