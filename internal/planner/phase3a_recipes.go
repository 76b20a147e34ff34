package planner

import "github.com/BudgetAppV2/truck-load-planner/internal/model"

// MatchRecipes is Phase 3A's reserved hook for precomputed multi-group
// wall recipes. The matching algorithm itself is unspecified; this is a
// deterministic no-op stub that never builds a wall, regardless of
// input, which is the safest literal reading of a contract that is only
// documented for the empty case.
func MatchRecipes(pools []*OrphanPool, kbPatterns []model.KBPattern, diag *diagnostics) []*model.Wall {
	if len(kbPatterns) > 0 {
		diag.logf("Phase3A", "%d KB patterns supplied, recipe matching not implemented, skipping", len(kbPatterns))
	}
	return nil
}
