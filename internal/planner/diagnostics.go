package planner

import (
	"fmt"
	"log/slog"

	"github.com/BudgetAppV2/truck-load-planner/internal/model"
)

// diagnostics collects one textual line per phase transition / notable
// action (spec §6) and mirrors each line to a structured slog logger.
// Grounded on other_examples/loganlanou-logans3d-v4__packer.go, the
// only structured-logging idiom present in the retrieved corpus (no
// third-party logging library appears anywhere in it).
type diagnostics struct {
	logger *slog.Logger
	lines  []model.Diagnostic
}

func newDiagnostics(logger *slog.Logger) *diagnostics {
	if logger == nil {
		logger = slog.Default()
	}
	return &diagnostics{logger: logger}
}

func (d *diagnostics) logf(phase, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.lines = append(d.lines, model.Diagnostic{Phase: phase, Message: msg})
	d.logger.Debug(msg, "phase", phase)
}

func (d *diagnostics) collect() []model.Diagnostic {
	return d.lines
}
