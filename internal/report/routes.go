package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/summary", h.Summary)
	r.Get("/dashboard", h.Dashboard)

	return r
}
