package planner

import (
	"sort"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// AbsorbWeakWalls is Phase 3C: every wall below absorbThresh fill is
// dissolved column-by-column into a depth-compatible stronger wall
// (lowest reliability first); whatever cannot be absorbed re-forms as a
// standalone wall at its original reliability tier (spec §4.7).
func AbsorbWeakWalls(walls []*model.Wall, absorbThresh, depthRelaxed, truckWidth float64, diag *diagnostics) []*model.Wall {
	var kept, weak []*model.Wall
	for _, w := range walls {
		if w.FillRatio(truckWidth) < absorbThresh {
			weak = append(weak, w)
		} else {
			kept = append(kept, w)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Reliability < kept[j].Reliability })

	for _, w := range weak {
		var stranded []model.Column
		for _, col := range w.Columns {
			placed := false
			for _, target := range kept {
				if target.FillRatio(truckWidth) < absorbThresh {
					continue
				}
				if absFloat(target.Depth-col.Depth) > depthRelaxed {
					continue
				}
				if target.WidthFill+col.Width > truckWidth+0.5 {
					continue
				}
				target.AddColumn(col)
				target.Reliability = target.Reliability.Demote(w.Reliability)
				placed = true
				break
			}
			if !placed {
				stranded = append(stranded, col)
			}
		}

		if len(stranded) == 0 {
			diag.logf("Phase3C", "fully absorbed weak wall (dept=%s, fill=%.2f%%) into stronger walls", w.MajorityDept(), w.FillRatio(truckWidth)*100)
			continue
		}

		remainder := model.NewWall(w.Reliability)
		for _, c := range stranded {
			remainder.AddColumn(c)
		}
		kept = append(kept, remainder)
		diag.logf("Phase3C", "partially absorbed weak wall, %d of %d columns stranded as %s", len(stranded), len(w.Columns), remainder.Reliability)
	}
	return kept
}
