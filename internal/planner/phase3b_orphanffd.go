package planner

import (
	"sort"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// orphanItem is one column-worth of identical cases still waiting for a
// home after full-wall construction and gap-fill.
type orphanItem struct {
	groupTag string
	dept     string
	width    float64
	depth    float64
	height   float64
	rotation float64
	maxStack int
	cases    []model.Case
}

func rotated90(rotated bool) float64 {
	if rotated {
		return 90
	}
	return 0
}

// OrphanFFD is Phase 3B (spec §4.6): it re-applies the rotation oracle
// in depth-compatibility mode to every orphan pool, then runs two
// passes. Pass 1 partitions by department and, within each department,
// transitively chains pools into depth clusters at the strict
// tolerance, packing each cluster (widest item first) into walls tagged
// ORPHAN_SAME_DEPT. Pass 2 repeats across every remaining item,
// ignoring department, at the relaxed tolerance, tagging ORPHAN_MIXED.
// Whatever is still too wide for the truck after both passes is emitted
// as a standalone wall.
func OrphanFFD(pools []*OrphanPool, deptPriority map[string]int, depthStrict, depthRelaxed, truckWidth float64, diag *diagnostics) []*model.Wall {
	byDept := make(map[string][]*orphanItem)
	var deptOrder []string

	for _, pool := range pools {
		if pool == nil || len(pool.Cases) == 0 {
			continue
		}

		var otherDepths []float64
		for _, other := range pools {
			if other == nil || other == pool || len(other.Cases) == 0 {
				continue
			}
			for range other.Cases {
				otherDepths = append(otherDepths, other.Depth)
			}
		}

		allow := pool.Cases[0].AllowRotation
		w, d, rotated := ResolveRotationForDepthCompat(allow, pool.Width, pool.Depth, truckWidth, otherDepths, depthRelaxed)
		if rotated {
			diag.logf("Phase3B", "orphan group %q rotated 90deg for depth compatibility", pool.GroupTag)
		}

		item := &orphanItem{
			groupTag: pool.GroupTag,
			dept:     pool.Dept,
			width:    w,
			depth:    d,
			height:   pool.Height,
			rotation: rotated90(rotated),
			maxStack: pool.MaxStack,
			cases:    pool.Cases,
		}
		if _, ok := byDept[item.dept]; !ok {
			deptOrder = append(deptOrder, item.dept)
		}
		byDept[item.dept] = append(byDept[item.dept], item)
	}
	sort.SliceStable(deptOrder, func(i, j int) bool {
		return deptPriority[deptOrder[i]] < deptPriority[deptOrder[j]]
	})

	var allWalls []*model.Wall

	for _, dept := range deptOrder {
		for _, cluster := range clusterByDepth(byDept[dept], depthStrict) {
			allWalls = append(allWalls, buildWallsForCluster(cluster, truckWidth, model.OrphanSameDept)...)
		}
	}
	diag.logf("Phase3B", "strict pass built %d walls across %d departments", len(allWalls), len(deptOrder))

	var leftover []*orphanItem
	for _, dept := range deptOrder {
		for _, it := range byDept[dept] {
			if len(it.cases) > 0 {
				leftover = append(leftover, it)
			}
		}
	}
	strictCount := len(allWalls)
	if len(leftover) > 0 {
		for _, cluster := range clusterByDepth(leftover, depthRelaxed) {
			allWalls = append(allWalls, buildWallsForCluster(cluster, truckWidth, model.OrphanMixed)...)
		}
		diag.logf("Phase3B", "relaxed pass built %d more walls from %d remaining groups", len(allWalls)-strictCount, len(leftover))
	}

	for _, it := range leftover {
		if len(it.cases) == 0 {
			continue
		}
		w := model.NewWall(model.OrphanMixed)
		w.AddColumn(model.NewColumn(it.groupTag, it.dept, it.width, it.depth, it.height, it.rotation, it.cases))
		allWalls = append(allWalls, w)
		diag.logf("Phase3B", "orphan group %q: too wide for the truck, emitted standalone wall", it.groupTag)
	}

	return allWalls
}

// clusterByDepth sorts items by depth and chains each into the open
// cluster when it lies within tol of the cluster's most recently added
// member, i.e. transitive depth clustering.
func clusterByDepth(items []*orphanItem, tol float64) [][]*orphanItem {
	sorted := make([]*orphanItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].depth < sorted[j].depth })

	var clusters [][]*orphanItem
	for _, it := range sorted {
		if n := len(clusters); n > 0 {
			cluster := clusters[n-1]
			seed := cluster[len(cluster)-1].depth
			if absFloat(it.depth-seed) <= tol {
				clusters[n-1] = append(cluster, it)
				continue
			}
		}
		clusters = append(clusters, []*orphanItem{it})
	}
	return clusters
}

// buildWallsForCluster packs a depth-compatible cluster into as few
// walls as possible, widest item first, opening a new wall whenever a
// full sweep over the cluster leaves cases unplaced.
func buildWallsForCluster(cluster []*orphanItem, truckWidth float64, reliability model.Reliability) []*model.Wall {
	ordered := make([]*orphanItem, len(cluster))
	copy(ordered, cluster)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].width > ordered[j].width })

	var walls []*model.Wall
	for {
		any := false
		for _, it := range ordered {
			if len(it.cases) > 0 {
				any = true
				break
			}
		}
		if !any {
			break
		}

		w := model.NewWall(reliability)
		gap := truckWidth
		for _, it := range ordered {
			for gap >= it.width-0.5 && len(it.cases) > 0 {
				k := it.maxStack
				if k > len(it.cases) {
					k = len(it.cases)
				}
				batch := it.cases[:k]
				it.cases = it.cases[k:]
				w.AddColumn(model.NewColumn(it.groupTag, it.dept, it.width, it.depth, it.height, it.rotation, batch))
				gap -= it.width
			}
		}
		if len(w.Columns) == 0 {
			break
		}
		walls = append(walls, w)
	}
	return walls
}

// MergeWeakWalls runs two merge passes over the walls Phase 3B built:
// first intra-department, then cross-department, accreting walls below
// 80% fill into a depth-compatible (within depthRelaxed), still-weak
// target whenever the combined width still fits (spec §4.6).
func MergeWeakWalls(walls []*model.Wall, truckWidth, depthRelaxed float64, diag *diagnostics) []*model.Wall {
	before := len(walls)
	walls = mergeWeakPass(walls, depthRelaxed, truckWidth, true)
	walls = mergeWeakPass(walls, depthRelaxed, truckWidth, false)
	if len(walls) != before {
		diag.logf("Phase3B", "merged weak orphan walls: %d -> %d", before, len(walls))
	}
	return walls
}

func mergeWeakPass(walls []*model.Wall, depthTol, truckWidth float64, sameDeptOnly bool) []*model.Wall {
	merged := make([]*model.Wall, 0, len(walls))
	for _, w := range walls {
		if w.FillRatio(truckWidth) >= 0.80 {
			merged = append(merged, w)
			continue
		}
		absorbed := false
		for _, target := range merged {
			if target.FillRatio(truckWidth) >= 0.80 {
				continue
			}
			if sameDeptOnly && target.MajorityDept() != w.MajorityDept() {
				continue
			}
			if absFloat(target.Depth-w.Depth) > depthTol {
				continue
			}
			if target.WidthFill+w.WidthFill > truckWidth+0.5 {
				continue
			}
			for _, c := range w.Columns {
				target.AddColumn(c)
			}
			target.Reliability = target.Reliability.Demote(w.Reliability)
			absorbed = true
			break
		}
		if !absorbed {
			merged = append(merged, w)
		}
	}
	return merged
}
