package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRotation_SquareCaseNeverRotates(t *testing.T) {
	w, d, rotated := ResolveRotation(true, 30, 30.2, 98)
	assert.False(t, rotated)
	assert.Equal(t, 30.0, w)
	assert.Equal(t, 30.2, d)
}

func TestResolveRotation_DisallowedNeverRotates(t *testing.T) {
	w, d, rotated := ResolveRotation(false, 50, 20, 98)
	assert.False(t, rotated)
	assert.Equal(t, 50.0, w)
	assert.Equal(t, 20.0, d)
}

func TestResolveRotation_PrefersStrictlyLargerFill(t *testing.T) {
	// normal: ipr=1, fill=50. rotated: ipr=4, fill=80. Rotated wins.
	w, d, rotated := ResolveRotation(true, 50, 20, 98)
	assert.True(t, rotated)
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 50.0, d)
}

func TestResolveRotation_FillTie_LargerIprWins(t *testing.T) {
	// w=49,d=24.5 -> normal ipr=2 fill=98; rotated ipr=4 fill=98. Equal fill,
	// rotated ipr strictly greater so rotated wins per the documented
	// tie-break rule.
	w, d, rotated := ResolveRotation(true, 49, 24.5, 98)
	assert.True(t, rotated)
	assert.Equal(t, 24.5, w)
	assert.Equal(t, 49.0, d)
}

func TestResolveRotationForDepthCompat_PicksOrientationMatchingOtherDepths(t *testing.T) {
	// Unrotated depth is 20, rotated depth would be 50. Other orphans are
	// depth 50, so rotating maximizes depth-compatible count.
	w, d, rotated := ResolveRotationForDepthCompat(true, 50, 20, 98, []float64{50, 50, 51}, 8)
	assert.True(t, rotated)
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 50.0, d)
}

func TestResolveRotationForDepthCompat_NoCompatibility_KeepsBetterFit(t *testing.T) {
	w, d, rotated := ResolveRotationForDepthCompat(true, 50, 20, 98, nil, 8)
	assert.True(t, rotated) // rotated still wins on raw per-row fit (ipr=4 vs 1)
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 50.0, d)
}
