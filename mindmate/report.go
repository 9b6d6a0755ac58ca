package mindmate

import (
	"fmt"
	"io"
	"strings"
)

// FormatReport serializes a result into the flat text report format:
//
//	Problem:
//	<problem>
//
//	Thinking Steps:
//	- <one step per line>
//
//	Final Answer:
//	<answer>
func FormatReport(res ReasoningResult) string {
	var b strings.Builder
	b.WriteString("Problem:\n")
	b.WriteString(res.Problem)
	b.WriteString("\n\nThinking Steps:\n")
	for i, step := range res.Steps {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(step)
	}
	b.WriteString("\n\nFinal Answer:\n")
	b.WriteString(res.Answer)
	return b.String()
}

// WriteReport writes the formatted report to w.
func WriteReport(w io.Writer, res ReasoningResult) error {
	if _, err := io.WriteString(w, FormatReport(res)); err != nil {
		return fmt.Errorf("mindmate: write report: %w", err)
	}
	return nil
}
