package planner

import (
	"log/slog"
	"testing"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCase(name, group, dept string, w, d, h float64) model.Case {
	return model.Case{
		ID: name, Name: name, Group: group, Dept: dept,
		Width: w, Depth: d, Height: h,
		AllowRotation: true,
	}
}

func testLogger() *slog.Logger { return slog.Default() }

// S1: an empty load produces no placements, no sections, no violations,
// and at least one diagnostic explaining why.
func TestSolve_EmptyLoad(t *testing.T) {
	result, err := Solve(nil, model.DefaultConfig(), testLogger())
	require.NoError(t, err)
	assert.Empty(t, result.Placements)
	assert.Empty(t, result.WallSections)
	assert.Empty(t, result.Violations)
	assert.NotEmpty(t, result.Diagnostics)
}

// S2: six identical 30x30x40 cases fill-qualify (90/98 = 0.918) into two
// full walls of three columns each, stacked back to back.
func TestSolve_SixIdenticalCases_TwoFullWalls(t *testing.T) {
	var cases []model.Case
	for i := 0; i < 6; i++ {
		cases = append(cases, testCase("c", "A", "SON", 30, 30, 40))
	}
	cfg := model.DefaultConfig()
	cfg.Envelope.Length = 300

	result, err := Solve(cases, cfg, testLogger())
	require.NoError(t, err)
	require.Len(t, result.WallSections, 2)
	require.Empty(t, result.Violations)

	w1, w2 := result.WallSections[0], result.WallSections[1]
	assert.Equal(t, 3, w1.CaseCount)
	assert.Equal(t, 3, w2.CaseCount)
	assert.InDelta(t, 90.0, w1.WallWidth, 0.01)
	assert.InDelta(t, 91.83, w1.FillPct, 0.1)
	assert.Equal(t, 0.0, w1.YStart)
	assert.InDelta(t, 30.0, w1.YEnd, 0.01)
	assert.InDelta(t, 30.0, w2.YStart, 0.01)
	assert.InDelta(t, 60.0, w2.YEnd, 0.01)
	assert.Len(t, result.Placements, 6)
}

// S3: floor-panel cases emit first (two batches of perRow=2, separated
// by a load-bar spacer), and the trailing small cases that don't reach
// Phase 2's fill threshold still end up packed into a wall placed right
// after the floor.
func TestSolve_FloorFirstThenOrphanSmallCases(t *testing.T) {
	var cases []model.Case
	for i := 0; i < 4; i++ {
		c := testCase("floor", "Floor", "SON", 45, 100, 60)
		c.IsFloor = true
		cases = append(cases, c)
	}
	cases = append(cases, testCase("small", "Small", "SON", 30, 30, 40))
	cases = append(cases, testCase("small", "Small", "SON", 30, 30, 40))

	cfg := model.DefaultConfig()
	cfg.Envelope.Length = 300

	result, err := Solve(cases, cfg, testLogger())
	require.NoError(t, err)
	require.Len(t, result.WallSections, 3)

	floor1, floor2, small := result.WallSections[0], result.WallSections[1], result.WallSections[2]
	assert.Equal(t, 0.0, floor1.YStart)
	assert.InDelta(t, 100.0, floor1.YEnd, 0.01)
	assert.InDelta(t, 102.0, floor2.YStart, 0.01)
	assert.InDelta(t, 202.0, floor2.YEnd, 0.01)
	assert.InDelta(t, 202.0, small.YStart, 0.01)
	assert.InDelta(t, 232.0, small.YEnd, 0.01)
	assert.Equal(t, 2, small.CaseCount)
}

// S4: two weak orphan walls of the same department but mismatched depth
// (within the relaxed 8" tolerance) merge into a single wall during
// Phase 3B's merge pass. Rotation is disallowed so the depths stay 20
// and 24; with rotation allowed, Phase 3B's depth-compat oracle would
// turn group A to 20x30.
func TestSolve_SameDeptDepthMismatch_MergesIntoOneWall(t *testing.T) {
	cases := []model.Case{
		testCase("a1", "A", "SON", 30, 20, 36),
		testCase("a2", "A", "SON", 30, 20, 36),
		testCase("b1", "B", "SON", 30, 24, 36),
		testCase("b2", "B", "SON", 30, 24, 36),
	}
	for i := range cases {
		cases[i].AllowRotation = false
	}
	cfg := model.DefaultConfig()
	cfg.Envelope.Width = 150
	cfg.Envelope.Length = 300

	result, err := Solve(cases, cfg, testLogger())
	require.NoError(t, err)
	require.Len(t, result.WallSections, 1)

	sec := result.WallSections[0]
	assert.Equal(t, 4, sec.CaseCount)
	assert.InDelta(t, 120.0, sec.WallWidth, 0.01)
	assert.InDelta(t, 24.0, sec.Depth, 0.01)
	assert.InDelta(t, 4.0, sec.DepthRange, 0.01)
}

// S5: a 50x20 case that would only fill one column unrotated rotates
// 90deg to fill four columns instead, and is packed as a FULL_WALL.
func TestSolve_RotationRescue(t *testing.T) {
	var cases []model.Case
	for i := 0; i < 4; i++ {
		cases = append(cases, testCase("r", "R", "SON", 50, 20, 30))
	}
	cfg := model.DefaultConfig()
	cfg.Envelope.Width = 98
	cfg.Envelope.Length = 300

	result, err := Solve(cases, cfg, testLogger())
	require.NoError(t, err)
	require.Len(t, result.WallSections, 1)

	sec := result.WallSections[0]
	assert.Equal(t, 4, sec.CaseCount)
	assert.InDelta(t, 80.0, sec.WallWidth, 0.01)
	assert.InDelta(t, 50.0, sec.Depth, 0.01)
	for _, p := range sec.Placements {
		assert.InDelta(t, 20.0, p.Width, 0.01)
		assert.InDelta(t, 50.0, p.Depth, 0.01)
		assert.InDelta(t, 90.0, p.Rotation, 0.01)
	}
}

// S6: a single case wider than the entire truck cannot be absorbed by
// any phase, spills all the way to Phase 5B, and is still placed there
// (rather than silently dropped) -- surfacing as a BOUNDS violation for
// Validate to report.
func TestSolve_OversizedCase_SpillsOverAndViolatesBounds(t *testing.T) {
	cases := []model.Case{
		{ID: "big", Name: "big", Group: "Big", Dept: "SON", Width: 110, Depth: 40, Height: 30, AllowRotation: false},
	}
	cfg := model.DefaultConfig()
	cfg.Envelope.Width = 98
	cfg.Envelope.Length = 300

	result, err := Solve(cases, cfg, testLogger())
	require.NoError(t, err)
	require.Len(t, result.Placements, 1)
	require.Len(t, result.WallSections, 1)

	sec := result.WallSections[0]
	assert.Equal(t, "Spillover", sec.Label)
	assert.Equal(t, 1, sec.CaseCount)

	var hasBounds bool
	for _, v := range result.Violations {
		if v.Kind == "BOUNDS" {
			hasBounds = true
		}
	}
	assert.True(t, hasBounds, "expected a BOUNDS violation for the oversized case")
}
