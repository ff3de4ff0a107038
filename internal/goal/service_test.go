package goal_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/goal"
	"github.com/bizmoney-app/bizmoney-api/internal/storage"
)

func newTestService(t *testing.T) (goal.Service, goal.Repository, context.Context, uuid.UUID) {
	t.Helper()
	gw := storage.NewMemory()
	repo := goal.NewRepository(gw)
	service := goal.NewService(repo)
	userID := uuid.New()
	ctx := auth.WithClaims(context.Background(), &auth.UserClaims{UserID: userID.String()})
	return service, repo, ctx, userID
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateGoal(t *testing.T) {
	service, _, ctx, _ := newTestService(t)

	g, err := service.Create(ctx, goal.CreateGoalDTO{Title: "New fridge", TargetAmount: dec("1000")})
	require.NoError(t, err)
	require.Equal(t, goal.StatusActive, g.Status)
	require.True(t, g.CurrentAmount.IsZero())

	t.Run("EmptyTitle", func(t *testing.T) {
		_, err := service.Create(ctx, goal.CreateGoalDTO{Title: " ", TargetAmount: dec("10")})
		require.ErrorIs(t, err, goal.ErrValidation)
	})

	t.Run("NonPositiveTarget", func(t *testing.T) {
		_, err := service.Create(ctx, goal.CreateGoalDTO{Title: "x", TargetAmount: dec("0")})
		require.ErrorIs(t, err, goal.ErrValidation)
	})
}

func TestAddProgress(t *testing.T) {
	service, _, ctx, _ := newTestService(t)

	g, err := service.Create(ctx, goal.CreateGoalDTO{Title: "Shop rent advance", TargetAmount: dec("1000")})
	require.NoError(t, err)

	g, err = service.AddProgress(ctx, g.ID.String(), goal.AddProgressDTO{Amount: dec("400")})
	require.NoError(t, err)
	require.True(t, g.CurrentAmount.Equal(dec("400")))
	require.Equal(t, goal.StatusActive, g.Status)

	g, err = service.AddProgress(ctx, g.ID.String(), goal.AddProgressDTO{Amount: dec("600")})
	require.NoError(t, err)
	require.True(t, g.CurrentAmount.Equal(dec("1000")))
	require.Equal(t, goal.StatusCompleted, g.Status)

	// The synchronous completion already persisted COMPLETED, so the next
	// list pass has nothing new to celebrate.
	list, err := service.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list.NewlyCompleted)

	t.Run("RejectsNonPositive", func(t *testing.T) {
		_, err := service.AddProgress(ctx, g.ID.String(), goal.AddProgressDTO{Amount: dec("0")})
		require.ErrorIs(t, err, goal.ErrValidation)
		_, err = service.AddProgress(ctx, g.ID.String(), goal.AddProgressDTO{Amount: dec("-5")})
		require.ErrorIs(t, err, goal.ErrValidation)
	})

	t.Run("MissingGoal", func(t *testing.T) {
		_, err := service.AddProgress(ctx, uuid.NewString(), goal.AddProgressDTO{Amount: dec("5")})
		require.ErrorIs(t, err, goal.ErrGoalNotFound)
	})
}

func TestListReconciles(t *testing.T) {
	service, repo, ctx, userID := newTestService(t)

	// An imported goal already past target but still ACTIVE.
	stale := goal.Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "Imported",
		TargetAmount:  dec("500"),
		CurrentAmount: dec("700"),
		Status:        goal.StatusActive,
	}
	require.NoError(t, repo.Create(&stale))

	list, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.NewlyCompleted, 1)
	require.Equal(t, stale.ID, list.NewlyCompleted[0].ID)
	require.Equal(t, goal.StatusCompleted, list.Goals[0].Status)

	// Reconciliation wrote the status back; a second load reports nothing.
	list, err = service.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list.NewlyCompleted)
	require.Equal(t, goal.StatusCompleted, list.Goals[0].Status)
}

func TestDeleteGoal(t *testing.T) {
	service, _, ctx, _ := newTestService(t)

	g, err := service.Create(ctx, goal.CreateGoalDTO{Title: "x", TargetAmount: dec("10")})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, g.ID.String()))
	require.ErrorIs(t, service.Delete(ctx, g.ID.String()), goal.ErrGoalNotFound)
}
