package planner

import (
	"fmt"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

type dimKey struct {
	w, d, h   float64
	stackable bool
	maxStack  int
}

// Split is Phase 0: it buckets cases by group tag, and within a tag by
// exact (w,d,h,stacking policy), emitting one InventoryGroup per
// distinct bucket. Tags with more than one bucket get synthetic
// suffixed names ("<tag> (<w>x<d>x<h>)") so every downstream phase may
// assume dimensional uniformity within a group (spec §4.2).
//
// Invalid cases (dimension <= 0) are skipped with a diagnostic
// (InvalidCase, spec §7) rather than failing the solve.
func Split(cases []model.Case, diag *diagnostics) []model.InventoryGroup {
	var tagOrder []string
	buckets := make(map[string][]dimKey)       // tag -> insertion-ordered distinct dim keys seen
	members := make(map[string]map[dimKey][]model.Case)

	for _, c := range cases {
		if !c.Valid() {
			diag.logf("Phase0", "skipping invalid case %q (id=%s): non-positive dimension", c.Name, c.ID)
			continue
		}
		tag := c.Group
		if tag == "" {
			tag = c.Name
		}
		key := dimKey{w: c.Width, d: c.Depth, h: c.Height, stackable: c.Stackable, maxStack: c.MaxStack}

		if _, ok := members[tag]; !ok {
			members[tag] = make(map[dimKey][]model.Case)
			tagOrder = append(tagOrder, tag)
		}
		if _, ok := members[tag][key]; !ok {
			buckets[tag] = append(buckets[tag], key)
		}
		members[tag][key] = append(members[tag][key], c)
	}

	var groups []model.InventoryGroup
	for _, tag := range tagOrder {
		keys := buckets[tag]
		multi := len(keys) > 1
		for _, key := range keys {
			cs := members[tag][key]
			groupTag := tag
			if multi {
				groupTag = fmt.Sprintf("%s (%gx%gx%g)", tag, key.w, key.d, key.h)
			}
			maxStack := key.maxStack
			if maxStack <= 0 {
				maxStack = 1
			}
			if !key.stackable {
				maxStack = 1
			}
			groups = append(groups, model.InventoryGroup{
				Tag:      groupTag,
				BaseTag:  tag,
				Width:    key.w,
				Depth:    key.d,
				Height:   key.h,
				MaxStack: maxStack,
				Dept:     cs[0].Dept,
				IsFloor:  cs[0].IsFloor,
				Cases:    cs,
			})
		}
	}

	diag.logf("Phase0", "split %d cases into %d inventory groups", len(cases), len(groups))
	return groups
}
