package planner

import (
	"math"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// buildGreedyWall packs cases left-to-right into columns of up to
// maxStack identical cases, advancing x by the group width and
// stopping once the next column would overflow the truck width. It
// returns the built wall and how many cases were consumed.
func buildGreedyWall(g *model.InventoryGroup, cases []model.Case, truckWidth float64) (*model.Wall, int) {
	w := model.NewWall(model.FullWall)
	x := 0.0
	consumed := 0

	for consumed < len(cases) {
		if x+g.Width > truckWidth+0.5 {
			break
		}
		k := g.MaxStack
		if k > len(cases)-consumed {
			k = len(cases) - consumed
		}
		batch := cases[consumed : consumed+k]
		col := model.NewColumn(g.Tag, g.Dept, g.Width, g.Depth, g.Height, g.Rotation, batch)
		w.AddColumn(col)
		x += g.Width
		consumed += k
	}
	return w, consumed
}

// BuildFullWalls is Phase 2: for each non-floor inventory group it
// greedily builds full-width walls. A wall whose fill reaches minFill
// (WP_MIN_FILL) is kept as FULL_WALL; otherwise its cases (plus any
// still unconsumed) are dissolved into an orphan pool for the group
// (spec §4.4).
func BuildFullWalls(groups []model.InventoryGroup, truckWidth, minFill float64, diag *diagnostics) (walls []*model.Wall, pools []*OrphanPool) {
	for gi := range groups {
		g := &groups[gi]
		if g.IsFloor || len(g.Cases) == 0 {
			continue
		}
		cases := g.Cases

		for len(cases) > 0 {
			wall, consumed := buildGreedyWall(g, cases, truckWidth)
			if consumed == 0 {
				diag.logf("Phase2", "group %q: case width %.2f exceeds truck width %.2f, orphaning %d cases", g.Tag, g.Width, truckWidth, len(cases))
				if pool := newOrphanPool(g, cases); pool != nil {
					pools = append(pools, pool)
				}
				cases = nil
				break
			}

			fillRatio := wall.WidthFill / truckWidth
			if fillRatio < minFill {
				dissolved := append(wallCases(wall), cases[consumed:]...)
				diag.logf("Phase2", "group %q: wall fill %.2f%% below threshold, dissolving %d cases to orphan pool", g.Tag, fillRatio*100, len(dissolved))
				if pool := newOrphanPool(g, dissolved); pool != nil {
					pools = append(pools, pool)
				}
				cases = nil
				break
			}

			walls = append(walls, wall)
			diag.logf("Phase2", "group %q: built FULL_WALL fill=%.2f%% columns=%d", g.Tag, fillRatio*100, len(wall.Columns))
			cases = cases[consumed:]

			colsNeeded := math.Ceil(truckWidth * minFill / g.Width)
			if float64(len(cases)) < colsNeeded {
				if len(cases) > 0 {
					if pool := newOrphanPool(g, cases); pool != nil {
						pools = append(pools, pool)
					}
				}
				cases = nil
			}
		}
	}
	return walls, pools
}
