package mindmate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildThinkingPrompt(t *testing.T) {
	p := BuildThinkingPrompt("2+2?")

	assert.Contains(t, p, "2+2?")
	assert.Contains(t, p, `"Step: "`)
	assert.Contains(t, p, "Don't provide a final answer yet")
}

func TestBuildThinkingPrompt_Pure(t *testing.T) {
	a := BuildThinkingPrompt("what is the airspeed of an unladen swallow")
	b := BuildThinkingPrompt("what is the airspeed of an unladen swallow")
	require.Equal(t, a, b, "identical inputs must produce byte-identical prompts")
}

func TestBuildAnswerPrompt_WithSteps(t *testing.T) {
	steps := []string{"add 2 and 2", "result is 4"}
	p := BuildAnswerPrompt("2+2?", steps)

	assert.Contains(t, p, "Problem: 2+2?")
	assert.Contains(t, p, "Thinking steps:")
	assert.Contains(t, p, "- add 2 and 2\n")
	assert.Contains(t, p, "- result is 4\n")
	assert.Contains(t, p, "without repeating all steps")
}

func TestBuildAnswerPrompt_WithoutSteps(t *testing.T) {
	p := BuildAnswerPrompt("2+2?", nil)

	assert.Contains(t, p, "Problem: 2+2?")
	assert.Contains(t, p, "clear and concise solution")
	assert.NotContains(t, p, "Thinking steps:", "step block must be absent when no steps were produced")
}

func TestBuildAnswerPrompt_Pure(t *testing.T) {
	steps := []string{"one", "two"}
	a := BuildAnswerPrompt("p", steps)
	b := BuildAnswerPrompt("p", steps)
	require.Equal(t, a, b)
	assert.False(t, strings.Contains(BuildAnswerPrompt("p", nil), "- "), "no bullets without steps")
}
