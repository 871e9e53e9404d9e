package page

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type InfoResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc := h.newDocument(r)

	title, err := doc.Title(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve page title", slogx.Error(errors.WithStack(err)))
		writeError(w, err)
		return
	}

	createdAt, err := doc.CreatedAt(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve page creation time", slogx.Error(errors.WithStack(err)))
		writeError(w, err)
		return
	}

	updatedAt, err := doc.UpdatedAt(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not retrieve page edition time", slogx.Error(errors.WithStack(err)))
		writeError(w, err)
		return
	}

	res := InfoResponse{
		ID:        doc.ID().String(),
		Title:     title,
		CreatedAt: timeOrNil(createdAt),
		UpdatedAt: timeOrNil(updatedAt),
	}

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(errors.WithStack(err)))
	}
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
