package usecase

import "strings"

// ShouldPromptForTime decides whether the UI should offer to log time after a
// triage move. It matches on column names, not identifiers: moving out of a
// column whose name contains "progress" into one whose name contains
// "verifying" or "done" counts as finishing work.
//
// The heuristic is deliberately kept as a single predicate so it can be
// replaced by an explicit per-column flag without touching the state machine.
func ShouldPromptForTime(oldColumnName, newColumnName string) bool {
	if oldColumnName == "" || newColumnName == "" {
		return false
	}

	oldName := strings.ToLower(oldColumnName)
	newName := strings.ToLower(newColumnName)

	return (strings.Contains(oldName, "progress") || strings.Contains(oldName, "in progress")) &&
		(strings.Contains(newName, "verifying") || strings.Contains(newName, "done") || newName == "done")
}
