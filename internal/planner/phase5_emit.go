package planner

import (
	"fmt"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// emitWall converts a packed wall into its final WallSection and
// per-case Placements at the given y-offset. When enforceLength is set
// and the wall's far edge would exceed the truck's length, it refuses
// to place the wall entirely so the caller can defer it to spillover
// recovery. When enforceWidth is set, any single column whose stored
// xOff+width would exceed the truck width is held back as a
// column-level spillover while the rest of the wall is still placed
// (spec §4.10); spillover recovery itself calls with enforceWidth
// false so that a case wider than the truck is still placed -- as a
// BOUNDS violation for Validate to surface -- rather than dropped.
func emitWall(w *model.Wall, id, label string, stageIndex int, yStart float64, env model.TruckEnvelope, enforceLength, enforceWidth bool) (model.WallSection, []model.Placement, []model.Case, bool) {
	yEnd := yStart + w.Depth
	if enforceLength && env.Length > 0 && yEnd > env.Length+0.5 {
		return model.WallSection{}, nil, nil, false
	}

	var placements []model.Placement
	var spillovers []model.Case
	emittedWidth := 0.0

	for _, col := range w.Columns {
		if enforceWidth && col.XOff+col.Width > env.Width+0.5 {
			spillovers = append(spillovers, col.Cases...)
			continue
		}
		for i, c := range col.Cases {
			placements = append(placements, model.Placement{
				Name:       c.Name,
				CaseID:     c.ID,
				Group:      col.GroupTag,
				Dept:       col.Dept,
				X:          col.XOff,
				Y:          yStart,
				Z:          float64(i) * col.Height,
				Width:      col.Width,
				Depth:      col.Depth,
				Height:     c.EffectiveHeight(col.Height),
				Rotation:   col.Rotation,
				WallID:     id,
				StageIndex: stageIndex,
			})
		}
		emittedWidth += col.Width
	}

	sec := model.WallSection{
		ID:         id,
		Label:      label,
		Stage:      stageIndex,
		YStart:     yStart,
		YEnd:       yEnd,
		WallWidth:  emittedWidth,
		FillPct:    (emittedWidth / env.Width) * 100,
		Placements: placements,
		CaseCount:  len(placements),
		Depth:      w.Depth,
		DepthRange: w.DepthRange(),
	}
	return sec, placements, spillovers, true
}

// Emit is Phase 5: it walks the floor entries (walls interleaved with
// load-bar spacers) followed by the staged, ordered walls, assigning
// each wall a monotonic "wp_"+n id and stacking them along y starting
// at the cab. A wall whose far edge would exceed the truck length is
// pulled out whole as a spillover for Phase 5B; a column that alone
// would overflow the truck width is pulled out individually while the
// rest of its wall is placed normally (spec §4.10).
func Emit(floorEntries []emitEntry, stages []model.Stage, env model.TruckEnvelope, wallCounter *int, diag *diagnostics) (placements []model.Placement, sections []model.WallSection, spillovers []model.Case) {
	nextID := func() string {
		*wallCounter++
		return fmt.Sprintf("wp_%d", *wallCounter)
	}

	y := 0.0
	for _, e := range floorEntries {
		if e.spacer != nil {
			y += e.spacer.Depth
			continue
		}
		id := nextID()
		sec, pls, spill, ok := emitWall(e.wall, id, "Floor", 0, y, env, true, true)
		if !ok {
			spillovers = append(spillovers, wallCases(e.wall)...)
			diag.logf("Phase5", "floor wall %s spilled over truck length, deferred to recovery", id)
			continue
		}
		spillovers = append(spillovers, spill...)
		if sec.CaseCount == 0 {
			diag.logf("Phase5", "floor wall %s spilled over entirely on truck width, deferred to recovery", id)
			continue
		}
		sections = append(sections, sec)
		placements = append(placements, pls...)
		y = sec.YEnd
	}

	for _, stage := range stages {
		label := fmt.Sprintf("Stage %d", stage.Index+1)
		for _, w := range stage.Walls {
			id := nextID()
			sec, pls, spill, ok := emitWall(w, id, label, stage.Index+1, y, env, true, true)
			if !ok {
				spillovers = append(spillovers, wallCases(w)...)
				diag.logf("Phase5", "wall %s spilled over truck length, deferred to recovery", id)
				continue
			}
			spillovers = append(spillovers, spill...)
			if sec.CaseCount == 0 {
				diag.logf("Phase5", "wall %s spilled over entirely on truck width, deferred to recovery", id)
				continue
			}
			if len(spill) > 0 {
				diag.logf("Phase5", "wall %s: %d cases spilled over truck width", id, len(spill))
			}
			sections = append(sections, sec)
			placements = append(placements, pls...)
			y = sec.YEnd
		}
	}

	return placements, sections, spillovers
}
