package planner

import "github.com/BudgetAppV2/truck-load-planner/internal/model"

// GapFill is Phase 2.5: for every FULL_WALL under the gap threshold, it
// scans orphan pools in listing order and greedily appends columns from
// pools matching the wall's majority department and within the relaxed
// depth tolerance, demoting the wall to TIGHT_FIT if anything was
// appended (spec §4.5).
func GapFill(walls []*model.Wall, pools []*OrphanPool, gapThresh, depthRelaxed, truckWidth float64, diag *diagnostics) {
	for _, w := range walls {
		if w.Reliability != model.FullWall {
			continue
		}
		if w.FillRatio(truckWidth) >= gapThresh {
			continue
		}
		majority := w.MajorityDept()
		appended := false

		for _, pool := range pools {
			if pool == nil || len(pool.Cases) == 0 {
				continue
			}
			if pool.Dept != majority {
				continue
			}
			if absFloat(pool.Depth-w.Depth) > depthRelaxed {
				continue
			}

			gap := truckWidth - w.WidthFill
			for gap >= pool.Width-0.5 && len(pool.Cases) > 0 {
				k := pool.MaxStack
				if k > len(pool.Cases) {
					k = len(pool.Cases)
				}
				batch := pool.Cases[:k]
				pool.Cases = pool.Cases[k:]
				col := model.NewColumn(pool.GroupTag, pool.Dept, pool.Width, pool.Depth, pool.Height, pool.Rotation, batch)
				w.AddColumn(col)
				gap -= pool.Width
				appended = true
			}
		}

		if appended {
			w.Reliability = w.Reliability.Demote(model.TightFit)
			diag.logf("Phase2.5", "gap-filled wall (dept=%s) to fill=%.2f%%, demoted to %s", majority, w.FillRatio(truckWidth)*100, w.Reliability)
		}
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
