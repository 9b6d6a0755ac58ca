package mindmate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReport(t *testing.T) {
	res := ReasoningResult{
		Problem: "2+2?",
		Steps:   []string{"add 2 and 2", "result is 4"},
		Answer:  "4",
	}

	want := "Problem:\n2+2?\n\nThinking Steps:\n- add 2 and 2\n- result is 4\n\nFinal Answer:\n4"
	assert.Equal(t, want, FormatReport(res))
}

func TestFormatReport_NoSteps(t *testing.T) {
	res := ReasoningResult{Problem: "p", Answer: "a"}

	got := FormatReport(res)
	assert.True(t, strings.HasPrefix(got, "Problem:\np\n\nThinking Steps:\n"))
	assert.True(t, strings.HasSuffix(got, "\n\nFinal Answer:\na"))
}

func TestWriteReport(t *testing.T) {
	var b strings.Builder
	res := ReasoningResult{Problem: "p", Steps: []string{"s"}, Answer: "a"}

	require.NoError(t, WriteReport(&b, res))
	assert.Equal(t, FormatReport(res), b.String())
}
