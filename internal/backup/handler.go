package backup

import (
	"errors"
	"io"
	"net/http"

	"github.com/bizmoney-app/bizmoney-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	payload, err := h.service.Export(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to export backup")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="bizmoney_backup.json"`)
	config.JSON(w, http.StatusOK, payload)
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Import(r.Context(), raw); err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrBadFormat):
			http.Error(w, "invalid backup payload", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to import backup")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "backup imported"})
}
