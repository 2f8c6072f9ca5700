package public

import (
	"log"
	"net/http"

	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/htmx"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/routepath"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/templates"
)

type handlers struct {
	shell pagerender.Shell
}

func newHandlers(shell pagerender.Shell) handlers {
	return handlers{shell: shell}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	page := pagerender.Page{
		TitleKey: "public.home.title",
		Content:  templates.HomePage(),
		Bare:     true,
	}
	if err := pagerender.WritePage(w, r, h.shell, page); err != nil {
		log.Printf("render home failed path=%s err=%v", httpx.RequestPath(r), err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	log.Printf("sign out request_id=%s", r.Header.Get(httpx.RequestIDHeader))
	htmx.WriteRedirect(w, r, routepath.Root)
}

func (handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
