package section

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/errors"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/httpx"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/pagerender"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/platform/weberror"
	"github.com/louisbranch/acme-dashboard/internal/services/dashboard/templates"
)

type handlers struct {
	shell   pagerender.Shell
	section Module
}

func newHandlers(shell pagerender.Shell, section Module) handlers {
	return handlers{shell: shell, section: section}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	page := pagerender.Page{
		TitleKey: h.section.titleKey,
		Content:  templates.SectionPage(h.section.id, h.section.titleKey, h.section.bodyKey),
	}
	if err := pagerender.WritePage(w, r, h.shell, page); err != nil {
		log.Printf("render section failed section=%s path=%s err=%v", h.section.id, httpx.RequestPath(r), err)
		weberror.WriteError(w, r, h.shell, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteError(w, r, h.shell, apperrors.E(apperrors.KindNotFound, "page not found"))
}
