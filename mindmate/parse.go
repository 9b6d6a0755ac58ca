package mindmate

import "strings"

// ExtractSteps pulls discrete thinking steps out of free-form model text.
//
// Primary rule: lines whose trimmed form starts with the step marker, with
// the marker and surrounding whitespace stripped, in input order. Lines that
// become empty after stripping are dropped.
//
// Fallback rule: models do not always honor the marker convention, so when
// the primary rule yields nothing every non-blank trimmed line becomes a
// step. The result is empty only when the model produced no usable text.
func ExtractSteps(raw string) []string {
	var steps []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, stepMarker) {
			continue
		}
		step := strings.TrimSpace(strings.TrimPrefix(trimmed, stepMarker))
		if step != "" {
			steps = append(steps, step)
		}
	}
	if len(steps) > 0 {
		return steps
	}

	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			steps = append(steps, trimmed)
		}
	}
	return steps
}
