package party

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/config"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
)

type Handler struct {
	ledgerRepo ledger.Repository
}

func NewHandler(ledgerRepo ledger.Repository) *Handler {
	return &Handler{ledgerRepo: ledgerRepo}
}

// List recomputes the party ledger from the session user's transaction log.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	txs, err := h.ledgerRepo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load transactions for party ledger")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, Aggregate(txs))
}
