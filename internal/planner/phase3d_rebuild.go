package planner

import (
	"sort"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// columnScore is the literal Phase 3D acceptance score for relocating a
// column into a candidate wall (spec §4.8, coefficients preserved
// bit-for-bit): fill contributes 60%, depth compatibility 25%, height
// uniformity 10%, department match 5%.
func columnScore(wall *model.Wall, col model.Column, truckWidth, truckHeight float64) float64 {
	newFill := (wall.WidthFill + col.Width) / truckWidth
	if newFill > 1 {
		newFill = 1
	}

	depthDelta := absFloat(wall.Depth - col.Depth)
	if depthDelta > 8 {
		depthDelta = 8
	}
	depthTerm := 1 - depthDelta/8

	heightTerm := 1.0
	if truckHeight > 0 {
		heightTerm = 1 - absFloat(wall.MaxHeight-col.StackedHeight)/truckHeight
	}

	sameDeptBonus := 0.0
	if col.Dept == wall.MajorityDept() {
		sameDeptBonus = 1.0
	}

	return 0.60*newFill + 0.25*depthTerm + 0.10*heightTerm + 0.05*sameDeptBonus
}

// columnFits reports whether col is eligible to join wall at all: width
// must still fit the truck, and the wall's flat-face depth spread (max
// depth - min depth, invariant #4 in spec §8) must stay within 8" after
// the addition. This is a hard gate, not part of columnScore's soft
// ranking.
func columnFits(wall *model.Wall, col model.Column, truckWidth float64) bool {
	if wall.WidthFill+col.Width > truckWidth+0.5 {
		return false
	}
	newMax := wall.Depth
	if col.Depth > newMax {
		newMax = col.Depth
	}
	newMin := wall.MinDepth
	if col.Depth < newMin {
		newMin = col.Depth
	}
	return newMax-newMin <= 8
}

// rebuildReliability tags a freshly built wall ORPHAN_SAME_DEPT when
// every column shares a single group or a single department, else
// ORPHAN_MIXED (spec §4.8).
func rebuildReliability(w *model.Wall) model.Reliability {
	sameGroup, sameDept := true, true
	firstGroup, firstDept := w.Columns[0].GroupTag, w.Columns[0].Dept
	for _, c := range w.Columns[1:] {
		if c.GroupTag != firstGroup {
			sameGroup = false
		}
		if c.Dept != firstDept {
			sameDept = false
		}
	}
	if sameGroup || sameDept {
		return model.OrphanSameDept
	}
	return model.OrphanMixed
}

// RebuildColumns is Phase 3D (spec §4.8). It only fires when at least
// two orphan-tier walls (reliability worse than KB_COMBO) sit below 0.80
// fill; full and KB-combo walls are never touched, and a lone weak
// orphan wall is left as-is. When the trigger condition holds, every
// column from those weak walls is flattened into a single pool, sorted
// by width descending, and reassembled into brand new walls: each wall
// opens on the widest remaining column and grows by repeatedly adding
// whichever remaining column scores highest under columnScore among
// those that still fit the truck width and keep the wall's depth
// spread within 8" (columnFits), until nothing more is eligible, then
// the next wall opens on the next-widest column.
func RebuildColumns(walls []*model.Wall, env model.TruckEnvelope, diag *diagnostics) []*model.Wall {
	var keep []*model.Wall
	var weak []*model.Wall
	for _, w := range walls {
		if w.Reliability <= model.KBCombo {
			keep = append(keep, w)
			continue
		}
		if w.FillRatio(env.Width) < 0.80 {
			weak = append(weak, w)
		} else {
			keep = append(keep, w)
		}
	}

	if len(weak) < 2 {
		return walls
	}

	var pool []model.Column
	for _, w := range weak {
		pool = append(pool, w.Columns...)
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Width > pool[j].Width })

	var rebuilt []*model.Wall
	for len(pool) > 0 {
		w := model.NewWall(model.OrphanMixed)
		w.AddColumn(pool[0])
		pool = pool[1:]

		for {
			best := -1
			bestScore := -1.0
			for i, col := range pool {
				if !columnFits(w, col, env.Width) {
					continue
				}
				if s := columnScore(w, col, env.Width, env.Height); s > bestScore {
					bestScore, best = s, i
				}
			}
			if best < 0 {
				break
			}
			w.AddColumn(pool[best])
			pool = append(pool[:best], pool[best+1:]...)
		}

		w.Reliability = rebuildReliability(w)
		rebuilt = append(rebuilt, w)
	}

	diag.logf("Phase3D", "rebuilt %d weak orphan walls into %d new walls", len(weak), len(rebuilt))
	return append(keep, rebuilt...)
}
