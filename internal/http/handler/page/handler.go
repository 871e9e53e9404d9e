package page

import (
	"net/http"

	"github.com/bornholm/notionhtml/internal/core/port"
	"github.com/bornholm/notionhtml/internal/core/service"
)

type Handler struct {
	store      port.BlockStore
	documents  []service.DocumentOptionFunc
	stylesheet string
	mux        *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler returns a handler serving the pages of the given store.
// The stylesheet is inlined in standalone renderings.
func NewHandler(store port.BlockStore, stylesheet string, funcs ...service.DocumentOptionFunc) *Handler {
	h := &Handler{
		store:      store,
		documents:  funcs,
		stylesheet: stylesheet,
		mux:        &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /{pageID}", h.handlePage)
	h.mux.HandleFunc("GET /{pageID}/info", h.handleInfo)

	return h
}

var _ http.Handler = &Handler{}
