package planner

import (
	"fmt"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// Validate is purely observational (spec §4.11): it never mutates
// placements or retries packing, it only reports BOUNDS, OVERLAP, and
// FLAT_FACE anomalies for the caller to act on.
func Validate(placements []model.Placement, sections []model.WallSection, env model.TruckEnvelope) []model.Violation {
	var violations []model.Violation

	for _, p := range placements {
		if p.X < -0.5 {
			violations = append(violations, model.Violation{
				Kind: "BOUNDS", Severity: "ERROR",
				Message: fmt.Sprintf("case %s (wall %s) has negative x=%.2f", p.CaseID, p.WallID, p.X),
			})
		}
		if p.X+p.Width > env.Width+0.5 {
			violations = append(violations, model.Violation{
				Kind: "BOUNDS", Severity: "ERROR",
				Message: fmt.Sprintf("case %s (wall %s) exceeds truck width: x=%.2f width=%.2f truckWidth=%.2f", p.CaseID, p.WallID, p.X, p.Width, env.Width),
			})
		}
		if p.Y < -0.5 {
			violations = append(violations, model.Violation{
				Kind: "BOUNDS", Severity: "ERROR",
				Message: fmt.Sprintf("case %s (wall %s) has negative y=%.2f", p.CaseID, p.WallID, p.Y),
			})
		}
		if p.Z < -0.5 {
			violations = append(violations, model.Violation{
				Kind: "BOUNDS", Severity: "ERROR",
				Message: fmt.Sprintf("case %s (wall %s) has negative z=%.2f", p.CaseID, p.WallID, p.Z),
			})
		}
		if env.Height > 0 && p.Z+p.Height > env.Height+0.5 {
			violations = append(violations, model.Violation{
				Kind: "BOUNDS", Severity: "ERROR",
				Message: fmt.Sprintf("case %s (wall %s) exceeds truck height: z=%.2f height=%.2f truckHeight=%.2f", p.CaseID, p.WallID, p.Z, p.Height, env.Height),
			})
		}
	}

	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			if !intervalsOverlap(a.X, a.Width, b.X, b.Width, 0.5) {
				continue
			}
			if !intervalsOverlap(a.Y, a.Depth, b.Y, b.Depth, 0.5) {
				continue
			}
			if !intervalsOverlap(a.Z, a.Height, b.Z, b.Height, 0.5) {
				continue
			}
			violations = append(violations, model.Violation{
				Kind: "OVERLAP", Severity: "ERROR",
				Message: fmt.Sprintf("cases %s and %s overlap", a.CaseID, b.CaseID),
			})
		}
	}

	for _, sec := range sections {
		switch {
		case sec.DepthRange > 8.0:
			violations = append(violations, model.Violation{
				Kind: "FLAT_FACE", Severity: "CRITICAL",
				Message: fmt.Sprintf("wall %s has a %.2f-inch depth spread, loading face is not flat", sec.ID, sec.DepthRange),
			})
		case sec.DepthRange > 2.0:
			violations = append(violations, model.Violation{
				Kind: "FLAT_FACE", Severity: "INFO",
				Message: fmt.Sprintf("wall %s has a %.2f-inch depth spread, acceptable but not ideal", sec.ID, sec.DepthRange),
			})
		}
	}
	return violations
}

// intervalsOverlap reports whether [aStart, aStart+aLen) and
// [bStart, bStart+bLen) overlap by more than tol.
func intervalsOverlap(aStart, aLen, bStart, bLen, tol float64) bool {
	aEnd := aStart + aLen
	bEnd := bStart + bLen
	return aStart < bEnd-tol && bStart < aEnd-tol
}
