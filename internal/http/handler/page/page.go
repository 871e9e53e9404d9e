package page

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/notionhtml/internal/core/service"
	"github.com/bornholm/notionhtml/internal/render"
	"github.com/pkg/errors"
)

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	doc := h.newDocument(r)

	doc.DowngradeHeadings = getQueryBool(query, "downgrade", doc.DowngradeHeadings)
	doc.ImageWidth = getQueryInt(query, "width", doc.ImageWidth)

	html, err := doc.HTML(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not render page", slogx.Error(errors.WithStack(err)))
		writeError(w, err)
		return
	}

	var buff bytes.Buffer

	if getQueryBool(query, "standalone", false) {
		title, err := doc.Title(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "could not retrieve page title", slogx.Error(errors.WithStack(err)))
			writeError(w, err)
			return
		}

		page := render.StandalonePage{
			Title:      title,
			Body:       html,
			Stylesheet: h.stylesheet,
		}

		if err := render.WriteStandalone(&buff, page); err != nil {
			slog.ErrorContext(ctx, "could not write standalone page", slogx.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	} else {
		buff.WriteString(html)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buff.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buff.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "could not write response", slogx.Error(errors.WithStack(err)))
	}
}

func (h *Handler) newDocument(r *http.Request) *service.Document {
	pageID := r.PathValue("pageID")
	return service.NewDocument(pageID, h.store, h.documents...)
}
