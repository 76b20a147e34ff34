package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryGroup_PerRow(t *testing.T) {
	g := InventoryGroup{Width: 30}
	assert.Equal(t, 3, g.PerRow(98))

	g.Width = 0
	assert.Equal(t, 0, g.PerRow(98))
}

func TestDeptForTag_ExactMatch(t *testing.T) {
	lookup := map[string]string{"Alpha": "SON"}
	dept, ok := DeptForTag("Alpha", lookup)
	assert.True(t, ok)
	assert.Equal(t, "SON", dept)
}

func TestDeptForTag_StripsDimSuffix(t *testing.T) {
	lookup := map[string]string{"Alpha": "SON"}
	dept, ok := DeptForTag("Alpha (31x29x36)", lookup)
	assert.True(t, ok)
	assert.Equal(t, "SON", dept)
}

func TestDeptForTag_Unresolvable(t *testing.T) {
	lookup := map[string]string{"Alpha": "SON"}
	_, ok := DeptForTag("Bravo (10x10x10)", lookup)
	assert.False(t, ok)
}

func TestDeptForTag_SuffixLikeButNotDims(t *testing.T) {
	lookup := map[string]string{"Alpha (Spare)": "SON"}
	dept, ok := DeptForTag("Alpha (Spare)", lookup)
	assert.True(t, ok)
	assert.Equal(t, "SON", dept)
}
