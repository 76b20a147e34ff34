// Package model defines the domain types shared by the planner: the
// inventory of cases, the truck envelope, and the wall/placement output
// shapes the solver produces.
package model

import "github.com/google/uuid"

// Case is a single physical item to be loaded. It is ingested once and
// never mutated by the solver; it is only ever moved between the
// inventory group, column, and placement that own it.
type Case struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Width         float64 `json:"width"`
	Depth         float64 `json:"depth"`
	Height        float64 `json:"height"`
	Dept          string  `json:"dept"`
	Group         string  `json:"group"`
	Stackable     bool    `json:"stackable"`
	MaxStack      int     `json:"max_stack"`
	IsFloor       bool    `json:"is_floor"`
	AllowRotation bool    `json:"allow_rotation"`
	Rotation      float64 `json:"rotation"`
}

// NewCase builds a Case with a generated short ID and the solver's
// documented defaults (dept GENERAL, group == name, maxStack 1,
// rotation allowed), the same shape as the teacher's NewPart/NewStockSheet
// constructors.
func NewCase(name string, w, d, h float64) Case {
	return Case{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Width:         w,
		Depth:         d,
		Height:        h,
		Dept:          "GENERAL",
		Group:         name,
		Stackable:     false,
		MaxStack:      1,
		AllowRotation: true,
	}
}

// Valid reports whether a case has usable dimensions (Phase 0 ingestion
// skips cases that fail this check, per the InvalidCase error kind).
func (c Case) Valid() bool {
	return c.Width > 0 && c.Depth > 0 && c.Height > 0
}

// EffectiveHeight returns the case-declared height if positive, otherwise
// falls back to the group height supplied by the caller. Phase 5 emission
// uses this to pick per-case placement height (spec §4.10).
func (c Case) EffectiveHeight(groupHeight float64) float64 {
	if c.Height > 0 {
		return c.Height
	}
	return groupHeight
}

// TruckEnvelope is the cargo hold a load must fit inside. x in
// [0,Width], y in [0,Length] with y=0 at the cab, z in [0,Height].
type TruckEnvelope struct {
	Width  float64 `json:"truck_width"`
	Length float64 `json:"truck_length"`
	Height float64 `json:"truck_height"`
}

// KBPattern is the reserved hook for precomputed multi-group wall
// recipes. Its matching algorithm is not specified; Phase 3A treats
// any non-empty pattern set as a no-op (see planner.MatchRecipes).
type KBPattern struct {
	ID string `json:"id"`
}
