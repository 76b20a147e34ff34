package planner

import (
	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// ComputeGeometry is Phase 1: it resolves each group's packing geometry
// by running the rotation oracle (spec §4.1) against the group's base
// (w,d) and the truck width, and records the resolved orientation on
// the group in place.
func ComputeGeometry(groups []model.InventoryGroup, truckWidth float64, diag *diagnostics) {
	for i := range groups {
		g := &groups[i]
		if g.IsFloor || len(g.Cases) == 0 {
			continue
		}
		allow := g.Cases[0].AllowRotation
		w, d, rotated := ResolveRotation(allow, g.Width, g.Depth, truckWidth)
		if rotated {
			g.Width, g.Depth, g.Rotation = w, d, 90
			diag.logf("Phase1", "group %q rotated 90deg for better row fill (w=%.2f d=%.2f)", g.Tag, g.Width, g.Depth)
		}
	}
}
