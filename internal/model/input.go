package model

import "github.com/google/uuid"

// CaseInput is the wire-level case record from spec §6, with the
// documented optional fields and defaults. Callers that already have a
// fully-resolved Case (e.g. tests) can skip this and construct Case
// directly; CaseInput exists for JSON ingestion at the solver boundary.
type CaseInput struct {
	Name          string   `json:"name"`
	CaseID        string   `json:"case_id,omitempty"`
	Width         float64  `json:"width"`
	Depth         float64  `json:"depth"`
	Height        float64  `json:"height"`
	Dept          *string  `json:"dept,omitempty"`
	Group         *string  `json:"group,omitempty"`
	Stackable     *bool    `json:"stackable,omitempty"`
	MaxStack      *int     `json:"max_stack,omitempty"`
	IsFloor       bool     `json:"is_floor,omitempty"`
	AllowRotation *bool    `json:"allow_rotation,omitempty"`
	Rotation      float64  `json:"rotation,omitempty"`
}

// Normalize applies the documented defaults (missing dept -> "GENERAL",
// missing group -> name, missing stackable -> false, missing maxStack
// -> 1, missing allowRotation -> true) and assigns a short generated ID
// when the caller did not supply one.
func (ci CaseInput) Normalize() Case {
	c := Case{
		ID:        ci.CaseID,
		Name:      ci.Name,
		Width:     ci.Width,
		Depth:     ci.Depth,
		Height:    ci.Height,
		IsFloor:   ci.IsFloor,
		Rotation:  ci.Rotation,
		MaxStack:  1,
		Dept:      "GENERAL",
		Group:     ci.Name,
	}
	if c.ID == "" {
		c.ID = uuid.New().String()[:8]
	}
	if ci.Dept != nil && *ci.Dept != "" {
		c.Dept = *ci.Dept
	}
	if ci.Group != nil && *ci.Group != "" {
		c.Group = *ci.Group
	}
	if ci.Stackable != nil {
		c.Stackable = *ci.Stackable
	}
	if ci.MaxStack != nil && *ci.MaxStack > 0 {
		c.MaxStack = *ci.MaxStack
	}
	if ci.AllowRotation != nil {
		c.AllowRotation = *ci.AllowRotation
	} else {
		c.AllowRotation = true
	}
	return c
}

// NormalizeCases normalizes a batch of wire-level case records.
func NormalizeCases(inputs []CaseInput) []Case {
	cases := make([]Case, len(inputs))
	for i, ci := range inputs {
		cases[i] = ci.Normalize()
	}
	return cases
}
