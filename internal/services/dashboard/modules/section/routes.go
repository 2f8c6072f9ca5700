package section

import "net/http"

func registerRoutes(mux *http.ServeMux, path string, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+path, h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+path+"/{$}", h.handlePage)
	mux.HandleFunc(path+"/{rest...}", h.handleNotFound)
}
