package mindmate

import (
	"fmt"
	"strings"
)

// stepMarker is the fixed prefix the model is instructed to put in front of
// each discrete reasoning step. The parser keys on the same marker.
const stepMarker = "Step:"

// BuildThinkingPrompt renders the step-elicitation prompt for a problem.
// It instructs the model to emit only marker-prefixed steps and to withhold
// the final answer. Pure: identical input yields an identical prompt.
func BuildThinkingPrompt(problem string) string {
	var b strings.Builder
	b.WriteString("I need to solve this problem: ")
	b.WriteString(problem)
	b.WriteString("\n\n")
	b.WriteString("Please help me think through this step-by-step.\n")
	b.WriteString(fmt.Sprintf("Only provide individual steps, each starting with %q.\n", stepMarker+" "))
	b.WriteString("Don't provide a final answer yet.\n")
	return b.String()
}

// BuildAnswerPrompt renders the answer-elicitation prompt. When steps are
// present they are embedded as a bulleted block and the model is asked to
// synthesize a final answer without repeating them; with no steps the prompt
// asks directly for a concise solution. Pure.
func BuildAnswerPrompt(problem string, steps []string) string {
	var b strings.Builder
	b.WriteString("Problem: ")
	b.WriteString(problem)
	b.WriteString("\n\n")

	if len(steps) == 0 {
		b.WriteString("What is the final answer? Provide a clear and concise solution.\n")
		return b.String()
	}

	b.WriteString("Thinking steps:\n")
	for _, step := range steps {
		b.WriteString("- ")
		b.WriteString(step)
		b.WriteString("\n")
	}
	b.WriteString("\nNow, based on the above, provide a clear final answer without repeating all steps.\n")
	return b.String()
}
