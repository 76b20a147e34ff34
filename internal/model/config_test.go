package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_MatchesDocumentedConstants(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.80, cfg.MinFill)
	assert.Equal(t, 0.95, cfg.GapThresh)
	assert.Equal(t, 2.0, cfg.DepthStrict)
	assert.Equal(t, 8.0, cfg.DepthRelaxed)
	assert.Equal(t, 2.0, cfg.LoadBarGap)
	assert.Equal(t, 15.0, cfg.StageHeightTol)
	assert.Equal(t, 0.50, cfg.AbsorbThresh)
}

func TestConfig_Normalized_FillsZeroValues(t *testing.T) {
	cfg := Config{}
	norm := cfg.Normalized()
	assert.Equal(t, DefaultConfig().MinFill, norm.MinFill)
	assert.Equal(t, 98.0, norm.Envelope.Width)
	assert.Equal(t, 110.0, norm.Envelope.Height)
}

func TestConfig_Normalized_PreservesExplicitValues(t *testing.T) {
	cfg := Config{MinFill: 0.5}
	cfg.Envelope.Width = 102
	norm := cfg.Normalized()
	assert.Equal(t, 0.5, norm.MinFill)
	assert.Equal(t, 102.0, norm.Envelope.Width)
}

func TestDeriveDeptPriority_SeedsKnownTagsThenAppendsUnseen(t *testing.T) {
	cases := []Case{
		{Dept: "CUSTOM"},
		{Dept: "LX"},
		{Dept: ""},
	}
	priority := DeriveDeptPriority(cases)
	assert.Equal(t, 1, priority["LX"])
	assert.Equal(t, 2, priority["SON"])
	assert.Equal(t, 8, priority["CUSTOM"])
	assert.Equal(t, 9, priority["GENERAL"])
}
