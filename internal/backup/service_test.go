package backup_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/backup"
	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/ledger"
	"github.com/bizmoney-app/bizmoney-api/internal/storage"
	"github.com/bizmoney-app/bizmoney-api/internal/user"
)

type fixture struct {
	service    backup.Service
	ledgerRepo ledger.Repository
	goalRepo   goal.Repository
	userRepo   user.Repository
	ctx        context.Context
	userID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gw := storage.NewMemory()
	userRepo := user.NewRepository(gw)
	ledgerRepo := ledger.NewRepository(gw)
	goalRepo := goal.NewRepository(gw)
	userID := uuid.New()
	return &fixture{
		service:    backup.NewService(userRepo, ledgerRepo, goalRepo),
		ledgerRepo: ledgerRepo,
		goalRepo:   goalRepo,
		userRepo:   userRepo,
		ctx:        auth.WithClaims(context.Background(), &auth.UserClaims{UserID: userID.String()}),
		userID:     userID,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newFixture(t)

	require.NoError(t, src.userRepo.Create(&user.User{ID: src.userID, Name: "Rafiq", Mobile: "01712345678"}))
	require.NoError(t, src.ledgerRepo.Create(&ledger.Transaction{
		ID: uuid.New(), UserID: src.userID, Amount: dec("300"),
		Type: ledger.TypeIncome, Category: "Sales", Date: "2026-08-01", Timestamp: 1, IsDue: true, PartyName: "Rahim",
	}))
	require.NoError(t, src.ledgerRepo.Create(&ledger.Transaction{
		ID: uuid.New(), UserID: src.userID, Amount: dec("120.75"),
		Type: ledger.TypeExpense, Category: "Rent", Date: "2026-08-02", Timestamp: 2,
	}))
	require.NoError(t, src.goalRepo.Create(&goal.Goal{
		ID: uuid.New(), UserID: src.userID, Title: "Fridge", TargetAmount: dec("1000"), Status: goal.StatusActive,
	}))

	payload, err := src.service.Export(src.ctx)
	require.NoError(t, err)
	require.Equal(t, backup.Version, payload.Version)
	require.NotEmpty(t, payload.ExportDate)
	require.Len(t, payload.Transactions, 2)
	require.Len(t, payload.Goals, 1)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	// Restore into a fresh store under the same user id.
	dst := newFixture(t)
	dst.userID = src.userID
	dst.ctx = src.ctx

	require.NoError(t, dst.service.Import(dst.ctx, raw))

	txs, err := dst.ledgerRepo.FindAllByUserID(src.userID)
	require.NoError(t, err)
	require.ElementsMatch(t, payload.Transactions, txs)

	goals, err := dst.goalRepo.FindAllByUserID(src.userID)
	require.NoError(t, err)
	require.ElementsMatch(t, payload.Goals, goals)
}

func TestImportRejectsMissingTransactions(t *testing.T) {
	f := newFixture(t)

	err := f.service.Import(f.ctx, []byte(`{"goals": []}`))
	require.ErrorIs(t, err, backup.ErrBadFormat)

	err = f.service.Import(f.ctx, []byte(`not json`))
	require.ErrorIs(t, err, backup.ErrBadFormat)
}

func TestImportToleratesAbsentGoals(t *testing.T) {
	f := newFixture(t)

	existing := goal.Goal{ID: uuid.New(), UserID: f.userID, Title: "keep", TargetAmount: dec("10"), Status: goal.StatusActive}
	require.NoError(t, f.goalRepo.Create(&existing))

	require.NoError(t, f.service.Import(f.ctx, []byte(`{"transactions": []}`)))

	// Transactions fully replaced, goal collection untouched.
	txs, err := f.ledgerRepo.FindAllByUserID(f.userID)
	require.NoError(t, err)
	require.Empty(t, txs)

	goals, err := f.goalRepo.FindAllByUserID(f.userID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
}

func TestImportIsFullReplace(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ledgerRepo.Create(&ledger.Transaction{
		ID: uuid.New(), UserID: f.userID, Amount: dec("999"),
		Type: ledger.TypeIncome, Category: "Old", Timestamp: 1,
	}))

	imported := ledger.Transaction{
		ID: uuid.New(), UserID: f.userID, Amount: dec("5"),
		Type: ledger.TypeExpense, Category: "New", Timestamp: 2,
	}
	raw, err := json.Marshal(map[string]interface{}{"transactions": []ledger.Transaction{imported}})
	require.NoError(t, err)

	require.NoError(t, f.service.Import(f.ctx, raw))

	txs, err := f.ledgerRepo.FindAllByUserID(f.userID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, imported.ID, txs[0].ID)
}
