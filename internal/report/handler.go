package report

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/config"
	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
)

type Handler struct {
	ledgerRepo ledger.Repository
	goalRepo   goal.Repository
}

func NewHandler(ledgerRepo ledger.Repository, goalRepo goal.Repository) *Handler {
	return &Handler{ledgerRepo: ledgerRepo, goalRepo: goalRepo}
}

type summaryResponse struct {
	Period            string                     `json:"period"`
	Summary           FinancialSummary           `json:"summary"`
	ExpenseCategories map[string]decimal.Decimal `json:"expenseCategories"`
}

// Summary renders the report view: period=month restricts to the current
// calendar month, anything else covers the full history.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	txs, err := h.ledgerRepo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load transactions for report")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	period := r.URL.Query().Get("period")
	if period != "all" {
		period = "month"
		now := time.Now()
		txs = FilterByMonth(txs, now.Year(), now.Month())
	}

	config.JSON(w, http.StatusOK, summaryResponse{
		Period:            period,
		Summary:           Summarize(txs),
		ExpenseCategories: ExpenseByCategory(txs),
	})
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	txs, err := h.ledgerRepo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load transactions for dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	goals, err := h.goalRepo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load goals for dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	today := time.Now().Format("2006-01-02")
	config.JSON(w, http.StatusOK, BuildDashboard(txs, goals, today))
}

func sessionUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}
