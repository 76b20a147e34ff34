package planner

import (
	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// emitEntry is one item in the ordered emission sequence: either a real
// wall or a load-bar spacer (spec §4.10 walks this concatenation).
type emitEntry struct {
	wall   *model.Wall
	spacer *model.LoadBarSpacer
}

// EmitFloorWalls is Phase 1.5: for every floor-panel inventory group it
// dequeues perRow=floor(W/w) cases at a time into full-width walls, and
// interleaves a 2" load-bar spacer between consecutive floor walls
// (never after the last). Floor walls bypass all later optimization
// phases and are placed first at y=0 (spec §4.3).
func EmitFloorWalls(groups []model.InventoryGroup, truckWidth, loadBarGap float64, diag *diagnostics) (floorEntries []emitEntry, remaining []model.InventoryGroup) {
	var floorWalls []*model.Wall

	for _, g := range groups {
		if !g.IsFloor {
			remaining = append(remaining, g)
			continue
		}
		perRow := g.PerRow(truckWidth)
		if perRow <= 0 {
			diag.logf("Phase1.5", "floor group %q: no case fits truck width %.2f, skipping", g.Tag, truckWidth)
			continue
		}
		before := len(floorWalls)
		cases := g.Cases
		for len(cases) > 0 {
			n := perRow
			if n > len(cases) {
				n = len(cases)
			}
			batch := cases[:n]
			cases = cases[n:]

			w := model.NewWall(model.FullWall)
			w.IsFloor = true
			w.FlatTop = true
			for _, c := range batch {
				col := model.NewColumn(g.Tag, g.Dept, g.Width, g.Depth, c.EffectiveHeight(g.Height), g.Rotation, []model.Case{c})
				w.AddColumn(col)
			}
			floorWalls = append(floorWalls, w)
		}
		diag.logf("Phase1.5", "floor group %q: emitted %d floor walls (perRow=%d)", g.Tag, len(floorWalls)-before, perRow)
	}

	for i, w := range floorWalls {
		floorEntries = append(floorEntries, emitEntry{wall: w})
		if i < len(floorWalls)-1 {
			floorEntries = append(floorEntries, emitEntry{spacer: &model.LoadBarSpacer{Depth: loadBarGap}})
		}
	}
	return floorEntries, remaining
}
