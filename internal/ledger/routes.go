package ledger

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/balance", h.Balance)
	r.Get("/parties", h.PartyNames)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/settle", h.Settle)
	r.Delete("/{id}", h.Delete)

	return r
}
