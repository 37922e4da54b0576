package echo

import (
	"fmt"

	"echolint/internal/diag"
	"echolint/internal/token"
)

// Condition is one configured echo rule in compiled form: which field to
// watch, how to filter candidate echoes, the scoring coefficients and the
// reporting thresholds. An empty Filters list means "hunt for literal
// repeats of the center token's own field value".
type Condition struct {
	Field   token.Field
	Filters []Filter
	Coeffs  []float64
	Warning float64
	Error   float64
}

// resolveFilters normalizes the filter list for one center token. When no
// filters are configured, a single synthetic filter matching the center's
// own field value is produced, so the evaluator has exactly one contract
// regardless of configuration shape.
func resolveFilters(c Condition, center token.Token) []Filter {
	if len(c.Filters) > 0 {
		return c.Filters
	}
	return []Filter{{
		Field:    c.Field,
		Includes: []Pattern{Literal(center.Value(c.Field))},
	}}
}

// process runs one condition against one center token: gate the center
// through the resolved filters, filter the window, score the survivors and
// emit when a threshold is crossed.
func process(c Condition, center token.Token, window []token.Token, radius int, sink diag.Sink) {
	filters := resolveFilters(c, center)

	// Tokens the condition would never count as echoes do not raise
	// diagnostics themselves: a noun-only condition skips verbs outright.
	if !anyFilter(filters, center) {
		return
	}

	matched := Include(window, filters)
	if len(matched) == 0 {
		return
	}

	score := 0.0
	for _, m := range matched {
		d := m.Index - center.Index
		if d < 0 {
			d = -d
		}
		score += Polynomial(c.Coeffs, float64(radius-d))
	}
	if score < c.Warning {
		return
	}

	msg := fmt.Sprintf("%q: %s %q echoed by %d nearby token(s) within %d positions (score %.2f)",
		center.Text, c.Field, center.Value(c.Field), len(matched), radius, score)
	if score >= c.Error {
		sink.ReportError(msg, center.Loc)
		return
	}
	sink.ReportWarning(msg, center.Loc)
}
