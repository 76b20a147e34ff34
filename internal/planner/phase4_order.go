package planner

import (
	"fmt"
	"math"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// Score is the literal Phase 4 ordering formula (spec §4.9, coefficients
// preserved bit-for-bit). Lower scores rank first, closer to the cab:
// tall, full, departmentally coherent walls sink to the lowest scores so
// they form the stable "back" of the load.
func Score(w *model.Wall, env model.TruckEnvelope, deptPriority map[string]int) int {
	fillRatio := w.FillRatio(env.Width)
	effectiveH := w.MaxHeight * fillRatio
	heightInv := math.Round(100 - effectiveH)
	deptPri := float64(deptPriority[w.MajorityDept()])
	relGroup := float64(w.Reliability.Capped())

	score := heightInv*100 + deptPri*4 + relGroup

	if len(w.Columns) > 0 {
		maxStacked := w.Columns[0].StackedHeight
		minStacked := w.Columns[0].StackedHeight
		for _, c := range w.Columns[1:] {
			if c.StackedHeight > maxStacked {
				maxStacked = c.StackedHeight
			}
			if c.StackedHeight < minStacked {
				minStacked = c.StackedHeight
			}
		}
		heightRange := maxStacked - minStacked
		if heightRange > 10 && env.Height > 0 {
			score += math.Round((heightRange / env.Height) * 3000)
		}
	}

	cols := len(w.Columns)
	capCols := cols
	if capCols > 4 {
		capCols = 4
	}
	score -= float64(capCols) * 50

	if cols <= 2 && fillRatio < 0.90 {
		score += 2000
	}
	if fillRatio < 0.50 {
		score += 5000
	}

	return int(score)
}

// LessWall orders two walls by Score ascending, breaking ties first on
// ascending department priority, then on descending fill ratio (spec
// §4.9 "ties break on deptPri, then on descending fillRatio").
func LessWall(a, b *model.Wall, env model.TruckEnvelope, deptPriority map[string]int) bool {
	sa, sb := Score(a, env, deptPriority), Score(b, env, deptPriority)
	if sa != sb {
		return sa < sb
	}
	da, db := deptPriority[a.MajorityDept()], deptPriority[b.MajorityDept()]
	if da != db {
		return da < db
	}
	return a.FillRatio(env.Width) > b.FillRatio(env.Width)
}

// StageWalls groups consecutive ordered walls sharing the same
// reliability and majority department, and whose max height stays
// within heightTol of the run's first wall, into UX-facing stages
// (spec §4.9).
func StageWalls(ordered []*model.Wall, heightTol float64) []model.Stage {
	var stages []model.Stage
	for _, w := range ordered {
		if n := len(stages); n > 0 {
			cur := &stages[n-1]
			first := cur.Walls[0]
			if first.Reliability == w.Reliability && first.MajorityDept() == w.MajorityDept() && absFloat(first.MaxHeight-w.MaxHeight) <= heightTol {
				cur.Walls = append(cur.Walls, w)
				continue
			}
		}
		stages = append(stages, model.Stage{
			Index: len(stages),
			Label: fmt.Sprintf("%s / %s", w.Reliability, w.MajorityDept()),
			Walls: []*model.Wall{w},
		})
	}
	return stages
}
