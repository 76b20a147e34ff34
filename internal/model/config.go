package model

// Config holds the truck envelope, department priorities, KB pattern
// hook, and the seven WP_* tuning constants exposed at the solver's
// external boundary (spec §6).
type Config struct {
	Envelope     TruckEnvelope     `json:"envelope"`
	DeptPriority map[string]int    `json:"dept_priority,omitempty"`
	KBPatterns   []KBPattern       `json:"kb_patterns,omitempty"`

	MinFill        float64 `json:"wp_min_fill"`
	GapThresh      float64 `json:"wp_gap_thresh"`
	DepthStrict    float64 `json:"wp_depth_strict"`
	DepthRelaxed   float64 `json:"wp_depth_relaxed"`
	LoadBarGap     float64 `json:"wp_loadbar_gap"`
	StageHeightTol float64 `json:"wp_stage_height_tol"`
	AbsorbThresh   float64 `json:"wp_absorb_thresh"`
}

// DefaultConfig returns the documented default tuning constants and a
// zero-length-truck envelope (the caller must supply truck length; width
// and height fall back to the spec's 98"/110" defaults when zero).
func DefaultConfig() Config {
	return Config{
		Envelope: TruckEnvelope{
			Width:  98,
			Length: 0,
			Height: 110,
		},
		MinFill:        0.80,
		GapThresh:      0.95,
		DepthStrict:    2.0,
		DepthRelaxed:   8.0,
		LoadBarGap:     2.0,
		StageHeightTol: 15.0,
		AbsorbThresh:   0.50,
	}
}

// Normalized returns a copy of the config with zero-valued truck width/
// height replaced by the spec defaults, mirroring the teacher's pattern
// of filling in missing settings (model.DefaultSettings merged with a
// caller-supplied struct).
func (c Config) Normalized() Config {
	if c.Envelope.Width <= 0 {
		c.Envelope.Width = 98
	}
	if c.Envelope.Height <= 0 {
		c.Envelope.Height = 110
	}
	if c.MinFill <= 0 {
		c.MinFill = 0.80
	}
	if c.GapThresh <= 0 {
		c.GapThresh = 0.95
	}
	if c.DepthStrict <= 0 {
		c.DepthStrict = 2.0
	}
	if c.DepthRelaxed <= 0 {
		c.DepthRelaxed = 8.0
	}
	if c.LoadBarGap <= 0 {
		c.LoadBarGap = 2.0
	}
	if c.StageHeightTol <= 0 {
		c.StageHeightTol = 15.0
	}
	if c.AbsorbThresh <= 0 {
		c.AbsorbThresh = 0.50
	}
	return c
}

// seedDeptPriority is the known-department ordering the auto-derivation
// seeds before appending unseen tags in first-appearance order.
var seedDeptPriority = []string{"LX", "SON", "CARP", "VDO", "PROPS", "COST", "ADM"}

// DeriveDeptPriority builds the department-priority map from a case list:
// known tags get the seeded ranks, unseen tags are appended in
// first-appearance order (spec §3 "Department Priority").
func DeriveDeptPriority(cases []Case) map[string]int {
	priority := make(map[string]int, len(seedDeptPriority))
	next := 1
	for _, d := range seedDeptPriority {
		priority[d] = next
		next++
	}
	for _, c := range cases {
		dept := c.Dept
		if dept == "" {
			dept = "GENERAL"
		}
		if _, ok := priority[dept]; !ok {
			priority[dept] = next
			next++
		}
	}
	return priority
}
