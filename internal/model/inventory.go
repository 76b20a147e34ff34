package model

import "strings"

// InventoryGroup is a set of cases sharing a group tag and identical
// dimensions and stacking policy. Produced by Phase 0 splitting; every
// downstream phase may assume dimensional uniformity within a group.
type InventoryGroup struct {
	Tag      string // possibly a synthetic "<tag> (<w>x<d>x<h>)" name
	BaseTag  string // the original, pre-split tag
	Width    float64
	Depth    float64
	Height   float64
	Rotation float64 // 0 or 90, set by the rotation oracle
	MaxStack int
	Dept     string
	IsFloor  bool
	Cases    []Case // owned, ordered
}

// PerRow returns floor(truckWidth / g.Width), the number of columns of
// this group that fit across the truck in one row.
func (g *InventoryGroup) PerRow(truckWidth float64) int {
	if g.Width <= 0 {
		return 0
	}
	n := int(truckWidth / g.Width)
	if n < 0 {
		n = 0
	}
	return n
}

// DeptForTag resolves a department for a group tag that may carry the
// Phase 0 dimension suffix. It tries the exact tag first, then strips a
// trailing " (<digits>x<digits>x<digits>)" and retries, per spec §9.
func DeptForTag(tag string, lookup map[string]string) (string, bool) {
	if d, ok := lookup[tag]; ok {
		return d, true
	}
	if stripped, ok := stripDimSuffix(tag); ok {
		if d, ok := lookup[stripped]; ok {
			return d, true
		}
	}
	return "", false
}

// stripDimSuffix removes a trailing " (<w>x<d>x<h>)" suffix, reporting
// whether one was found and removed.
func stripDimSuffix(tag string) (string, bool) {
	if len(tag) == 0 || tag[len(tag)-1] != ')' {
		return "", false
	}
	open := strings.LastIndex(tag, "(")
	if open <= 0 {
		return "", false
	}
	inner := tag[open+1 : len(tag)-1]
	if !looksLikeDims(inner) {
		return "", false
	}
	base := strings.TrimRight(tag[:open], " ")
	if base == "" {
		return "", false
	}
	return base, true
}

func looksLikeDims(s string) bool {
	parts := 1
	sawDigit := false
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
		case c == 'x' || c == 'X':
			parts++
		default:
			return false
		}
	}
	return sawDigit && parts == 3
}
