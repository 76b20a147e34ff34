package planner

import "github.com/BudgetAppV2/truck-load-planner/internal/model"

// OrphanPool is a group's leftover cases after full-wall construction
// failed to consume them, carried forward into gap-fill and the FFD
// rescue phases.
type OrphanPool struct {
	GroupTag string
	Dept     string
	Width    float64
	Depth    float64
	Height   float64
	Rotation float64
	MaxStack int
	Cases    []model.Case
}

func newOrphanPool(g *model.InventoryGroup, cases []model.Case) *OrphanPool {
	if len(cases) == 0 {
		return nil
	}
	return &OrphanPool{
		GroupTag: g.Tag,
		Dept:     g.Dept,
		Width:    g.Width,
		Depth:    g.Depth,
		Height:   g.Height,
		Rotation: g.Rotation,
		MaxStack: g.MaxStack,
		Cases:    cases,
	}
}

// wallCases flattens a wall's columns back into a single ordered case
// list, used when dissolving a too-weak wall back into an orphan pool.
func wallCases(w *model.Wall) []model.Case {
	var out []model.Case
	for _, col := range w.Columns {
		out = append(out, col.Cases...)
	}
	return out
}
