package planner

import (
	"log/slog"
	"sort"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// Solve is the solver's single entrypoint: a pure, synchronous function
// wiring every phase in order, producing placements, wall sections,
// diagnostics, and violations for a fixed input. No goroutines, no
// channels, no I/O — identical input always yields identical output
// (spec §5).
func Solve(cases []model.Case, cfg model.Config, logger *slog.Logger) (model.Result, error) {
	diag := newDiagnostics(logger)

	if len(cases) == 0 {
		diag.logf("Solve", "empty input, nothing to pack")
		return model.Result{Diagnostics: diag.collect()}, nil
	}

	cfg = cfg.Normalized()
	env := cfg.Envelope
	if env.Width <= 0 || env.Height <= 0 {
		return model.Result{}, internalErrorf("invalid truck envelope: width=%.2f height=%.2f", env.Width, env.Height)
	}

	deptPriority := cfg.DeptPriority
	if len(deptPriority) == 0 {
		deptPriority = model.DeriveDeptPriority(cases)
	}

	groups := Split(cases, diag)
	ComputeGeometry(groups, env.Width, diag)

	floorEntries, nonFloor := EmitFloorWalls(groups, env.Width, cfg.LoadBarGap, diag)

	walls, pools := BuildFullWalls(nonFloor, env.Width, cfg.MinFill, diag)
	GapFill(walls, pools, cfg.GapThresh, cfg.DepthRelaxed, env.Width, diag)

	if recipeWalls := MatchRecipes(pools, cfg.KBPatterns, diag); len(recipeWalls) > 0 {
		walls = append(walls, recipeWalls...)
	}

	orphanWalls := OrphanFFD(pools, deptPriority, cfg.DepthStrict, cfg.DepthRelaxed, env.Width, diag)
	orphanWalls = MergeWeakWalls(orphanWalls, env.Width, cfg.DepthRelaxed, diag)
	walls = append(walls, orphanWalls...)

	walls = AbsorbWeakWalls(walls, cfg.AbsorbThresh, cfg.DepthRelaxed, env.Width, diag)
	walls = RebuildColumns(walls, env, diag)

	sort.SliceStable(walls, func(i, j int) bool {
		return LessWall(walls[i], walls[j], env, deptPriority)
	})
	stages := StageWalls(walls, cfg.StageHeightTol)

	wallCounter := 0
	placements, sections, spillovers := Emit(floorEntries, stages, env, &wallCounter, diag)

	if len(spillovers) > 0 {
		lastY := 0.0
		if n := len(sections); n > 0 {
			lastY = sections[n-1].YEnd
		}
		spillSections, spillPlacements := RecoverSpillovers(spillovers, env, lastY, &wallCounter, diag)
		sections = append(sections, spillSections...)
		placements = append(placements, spillPlacements...)
		diag.logf("Solve", "%d cases recovered via spillover repacking", len(spillovers))
	}

	violations := Validate(placements, sections, env)

	return model.Result{
		Placements:   placements,
		WallSections: sections,
		Diagnostics:  diag.collect(),
		Violations:   violations,
	}, nil
}
