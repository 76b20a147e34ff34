package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// RecoverSpillovers is Phase 5B: cases that Phase 5 could not place
// within the truck's length or width are bucketed by depth rounded to
// the nearest inch (ascending, for determinism), so two cases whose
// depths differ only by floating-point noise still land in the same
// bucket, and greedily repacked left-to-right into walls no wider than
// the truck (a single case wider than the truck gets a wall of its
// own) placed beyond the main load, each emitted with stage index -1
// and label "Spillover" (spec §4.10). It never refuses a wall on length
// or width, so every
// spillover case is guaranteed a placement; Validate is what surfaces
// the resulting BOUNDS violations.
func RecoverSpillovers(spillovers []model.Case, env model.TruckEnvelope, startY float64, wallCounter *int, diag *diagnostics) (sections []model.WallSection, placements []model.Placement) {
	if len(spillovers) == 0 {
		return nil, nil
	}

	buckets := make(map[float64][]model.Case)
	var depths []float64
	for _, c := range spillovers {
		key := math.Round(c.Depth)
		if _, ok := buckets[key]; !ok {
			depths = append(depths, key)
		}
		buckets[key] = append(buckets[key], c)
	}
	sort.Float64s(depths)

	y := startY
	for _, depth := range depths {
		cases := buckets[depth]
		for len(cases) > 0 {
			w := model.NewWall(model.OrphanMixed)
			x := 0.0
			consumed := 0
			for consumed < len(cases) {
				c := cases[consumed]
				if consumed > 0 && x+c.Width > env.Width+0.5 {
					break
				}
				col := model.NewColumn(c.Group, c.Dept, c.Width, c.Depth, c.EffectiveHeight(c.Height), c.Rotation, []model.Case{c})
				w.AddColumn(col)
				x += c.Width
				consumed++
			}
			cases = cases[consumed:]

			*wallCounter++
			id := fmt.Sprintf("wp_%d", *wallCounter)
			sec, pls, _, _ := emitWall(w, id, "Spillover", -1, y, env, false, false)
			sections = append(sections, sec)
			placements = append(placements, pls...)
			y = sec.YEnd
		}
	}

	diag.logf("Phase5B", "recovered %d spillover cases into %d spillover wall sections", len(spillovers), len(sections))
	return sections, placements
}
