package planner

import "math"

// ResolveRotation is the Phase 1 rotation oracle (spec §4.1). Given a
// case's allowed-rotation flag, its base (w,d), and the truck width, it
// returns the chosen (w,d) and whether a 90-degree rotation was applied.
//
// Rotation is skipped when disallowed or when the case is effectively
// square (|w-d| < 0.5"). Otherwise the orientation with the strictly
// larger per-row fill wins; ties break on the larger per-row count.
func ResolveRotation(allowRotation bool, w, d, truckWidth float64) (rw, rd float64, rotated bool) {
	if !allowRotation || math.Abs(w-d) < 0.5 {
		return w, d, false
	}

	iprNormal := int(truckWidth / w)
	fillNormal := float64(iprNormal) * w

	iprRotated := int(truckWidth / d)
	fillRotated := float64(iprRotated) * d

	if fillRotated > fillNormal || (fillRotated == fillNormal && iprRotated > iprNormal) {
		return d, w, true
	}
	return w, d, false
}

// ResolveRotationForDepthCompat re-applies the rotation oracle with
// Phase 3B's rescue objective (spec §4.1): maximize the count of other
// remaining orphan cases whose depth lies within depthRelaxed of the
// candidate orientation's depth (weighted 100x), plus the per-row fit
// count. Ties prefer the unrotated orientation for determinism.
func ResolveRotationForDepthCompat(allowRotation bool, w, d, truckWidth float64, otherDepths []float64, depthRelaxed float64) (rw, rd float64, rotated bool) {
	if !allowRotation || math.Abs(w-d) < 0.5 {
		return w, d, false
	}

	scoreFor := func(width, depth float64) float64 {
		ipr := int(truckWidth / width)
		compat := 0
		for _, od := range otherDepths {
			if math.Abs(od-depth) <= depthRelaxed {
				compat++
			}
		}
		return 100.0*float64(compat) + float64(ipr)
	}

	normalScore := scoreFor(w, d)
	rotatedScore := scoreFor(d, w)

	if rotatedScore > normalScore {
		return d, w, true
	}
	return w, d, false
}
