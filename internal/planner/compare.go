package planner

import (
	"fmt"
	"log/slog"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// ComparisonScenario names a tuning variant to run Solve under.
type ComparisonScenario struct {
	Name string
	Cfg  model.Config
}

// ComparisonResult holds one scenario's outcome and the summary
// statistics used to judge it against its siblings.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.Result
	WallsUsed     int
	UnplacedCount int
	ViolationCount int
	AvgFillPct    float64
}

// CompareScenarios runs Solve once per scenario over the same case
// list and returns the results in scenario order, mirroring the
// teacher's engine.CompareScenarios side-by-side comparison tool.
func CompareScenarios(cases []model.Case, scenarios []ComparisonScenario, logger *slog.Logger) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, err := Solve(cases, scenario.Cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		var fillSum float64
		for _, sec := range result.WallSections {
			fillSum += sec.FillPct
		}
		avgFill := 0.0
		if n := len(result.WallSections); n > 0 {
			avgFill = fillSum / float64(n)
		}

		placed := 0
		for _, sec := range result.WallSections {
			placed += sec.CaseCount
		}
		unplaced := len(cases) - placed

		results = append(results, ComparisonResult{
			Scenario:       scenario,
			Result:         result,
			WallsUsed:      len(result.WallSections),
			UnplacedCount:  unplaced,
			ViolationCount: len(result.Violations),
			AvgFillPct:     avgFill,
		})
	}
	return results, nil
}

// BuildDefaultScenarios generates what-if tuning variants around a base
// config: a looser minimum fill, a tighter gap threshold, and a more
// permissive absorb threshold, alongside the base config itself
// (mirrors engine.BuildDefaultScenarios).
func BuildDefaultScenarios(base model.Config) []ComparisonScenario {
	base = base.Normalized()
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Cfg: base},
	}

	looseFill := base
	looseFill.MinFill = base.MinFill * 0.9
	scenarios = append(scenarios, ComparisonScenario{
		Name: fmt.Sprintf("Min Fill %.0f%%", looseFill.MinFill*100),
		Cfg:  looseFill,
	})

	tightGap := base
	tightGap.GapThresh = 1.0
	scenarios = append(scenarios, ComparisonScenario{
		Name: "No Gap Fill Slack",
		Cfg:  tightGap,
	})

	looseAbsorb := base
	looseAbsorb.AbsorbThresh = base.AbsorbThresh * 1.4
	scenarios = append(scenarios, ComparisonScenario{
		Name: fmt.Sprintf("Absorb Threshold %.0f%%", looseAbsorb.AbsorbThresh*100),
		Cfg:  looseAbsorb,
	})

	return scenarios
}
