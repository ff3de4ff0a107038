package goal

// Reconcile corrects goals that are still marked ACTIVE despite sitting at or
// past their target (possible after a direct edit or a backup import). It
// returns the corrected collection and the goals completed by this pass.
// Pure: writing the corrected collection back is the caller's job, and doing
// so makes the pass idempotent — a reconciled goal never reports again.
func Reconcile(goals []Goal) ([]Goal, []Goal) {
	out := make([]Goal, len(goals))
	copy(out, goals)

	var completed []Goal
	for i := range out {
		if out[i].Status == StatusActive && out[i].CurrentAmount.GreaterThanOrEqual(out[i].TargetAmount) {
			out[i].Status = StatusCompleted
			completed = append(completed, out[i])
		}
	}
	return out, completed
}
