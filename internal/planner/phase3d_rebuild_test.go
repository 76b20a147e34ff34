package planner

import (
	"testing"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleColumnWall(reliability model.Reliability, groupTag, dept string, width, depth float64) *model.Wall {
	w := model.NewWall(reliability)
	w.AddColumn(model.NewColumn(groupTag, dept, width, depth, 40, 0, []model.Case{
		{ID: groupTag, Name: groupTag, Group: groupTag, Dept: dept, Width: width, Depth: depth, Height: 40},
	}))
	return w
}

func TestRebuildColumns_BelowTwoWeakWalls_LeavesEverythingUntouched(t *testing.T) {
	env := model.TruckEnvelope{Width: 100, Height: 110}
	full := singleColumnWall(model.FullWall, "FULL", "SON", 95, 20)
	weak := singleColumnWall(model.OrphanSameDept, "A1", "SON", 40, 20)

	walls := RebuildColumns([]*model.Wall{full, weak}, env, newTestDiagnostics())

	require.Len(t, walls, 2)
	assert.Same(t, full, walls[0])
	assert.Same(t, weak, walls[1])
	assert.Equal(t, model.OrphanSameDept, walls[1].Reliability)
}

// Two weak orphan walls below 0.80 fill, compatible depth (diff 2" <= 8"),
// different departments: the trigger fires, they flatten into one new
// wall, and since the columns don't share a group or a department the
// rebuilt wall must tier as ORPHAN_MIXED.
func TestRebuildColumns_TwoWeakCompatibleWalls_MergeIntoOrphanMixed(t *testing.T) {
	env := model.TruckEnvelope{Width: 100, Height: 110}
	w1 := singleColumnWall(model.OrphanSameDept, "A1", "DeptA", 40, 20)
	w2 := singleColumnWall(model.OrphanMixed, "B1", "DeptB", 30, 22)

	walls := RebuildColumns([]*model.Wall{w1, w2}, env, newTestDiagnostics())

	require.Len(t, walls, 1)
	got := walls[0]
	assert.Equal(t, 2, got.CaseCount())
	assert.InDelta(t, 70.0, got.WidthFill, 0.01)
	assert.LessOrEqual(t, got.DepthRange(), 8.0)
	assert.Equal(t, model.OrphanMixed, got.Reliability)
}

// Two weak orphan walls whose depths differ by more than 8" can never
// legally share a wall (spec §3 flat-face invariant): the rebuild must
// keep them in separate walls even though the trigger condition fires,
// and every resulting wall must stay within the 8" depth spread.
func TestRebuildColumns_IncompatibleDepths_StaySeparateWalls(t *testing.T) {
	env := model.TruckEnvelope{Width: 100, Height: 110}
	w1 := singleColumnWall(model.OrphanSameDept, "A1", "DeptA", 40, 10)
	w2 := singleColumnWall(model.OrphanMixed, "B1", "DeptB", 35, 25)

	walls := RebuildColumns([]*model.Wall{w1, w2}, env, newTestDiagnostics())

	require.Len(t, walls, 2)
	total := 0
	for _, w := range walls {
		total += w.CaseCount()
		assert.LessOrEqual(t, w.DepthRange(), 8.0)
		assert.Equal(t, model.OrphanSameDept, w.Reliability)
	}
	assert.Equal(t, 2, total)
}

// A well-filled orphan wall (>= 0.80 fill) never counts toward the
// trigger and is never decomposed, even when another wall is weak.
func TestRebuildColumns_WellFilledOrphanWall_NotCountedOrTouched(t *testing.T) {
	env := model.TruckEnvelope{Width: 100, Height: 110}
	fullFill := singleColumnWall(model.OrphanSameDept, "A1", "DeptA", 85, 20)
	lone := singleColumnWall(model.OrphanMixed, "B1", "DeptB", 20, 20)

	walls := RebuildColumns([]*model.Wall{fullFill, lone}, env, newTestDiagnostics())

	require.Len(t, walls, 2)
	assert.Same(t, fullFill, walls[0])
	assert.Same(t, lone, walls[1])
}
