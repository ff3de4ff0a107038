package goal_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bizmoney-app/bizmoney-api/internal/goal"
)

func TestReconcile(t *testing.T) {
	active := goal.Goal{ID: uuid.New(), Title: "ongoing", TargetAmount: dec("100"), CurrentAmount: dec("30"), Status: goal.StatusActive}
	overdue := goal.Goal{ID: uuid.New(), Title: "past target", TargetAmount: dec("100"), CurrentAmount: dec("100"), Status: goal.StatusActive}
	done := goal.Goal{ID: uuid.New(), Title: "already done", TargetAmount: dec("100"), CurrentAmount: dec("150"), Status: goal.StatusCompleted}

	in := []goal.Goal{active, overdue, done}
	out, completed := goal.Reconcile(in)

	require.Len(t, completed, 1)
	require.Equal(t, overdue.ID, completed[0].ID)
	require.Equal(t, goal.StatusCompleted, completed[0].Status)

	require.Equal(t, goal.StatusActive, out[0].Status)
	require.Equal(t, goal.StatusCompleted, out[1].Status)
	require.Equal(t, goal.StatusCompleted, out[2].Status)

	// Input untouched.
	require.Equal(t, goal.StatusActive, in[1].Status)

	// Second pass over the corrected collection reports nothing.
	_, completed = goal.Reconcile(out)
	require.Empty(t, completed)
}
