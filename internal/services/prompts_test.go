package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickStructuralDNA(t *testing.T) {
	// Low creativity always settles on the standard structure
	for i := 0; i < 20; i++ {
		assert.Equal(t, "Standard Professional Flow", pickStructuralDNA(0.3))
	}

	// High creativity picks from the randomized options
	got := pickStructuralDNA(0.9)
	assert.Contains(t, structuralDNAOptions, got)
}

func TestFormatGenerationPrompt(t *testing.T) {
	prompt := formatGenerationPrompt(
		"AI agents", "- some news fact", "my custom angle",
		"Practical Educator", []string{"News Breakdown", "Case Study"},
		300, "High", []string{"Storytelling Arc"}, 0.8, "Standard Professional Flow",
	)

	assert.Contains(t, prompt, "AI agents")
	assert.Contains(t, prompt, "- some news fact")
	assert.Contains(t, prompt, "my custom angle")
	assert.Contains(t, prompt, "News Breakdown, Case Study")
	assert.Contains(t, prompt, "300")
	assert.Contains(t, prompt, "Storytelling Arc")
}

func TestFormatGenerationPrompt_Defaults(t *testing.T) {
	prompt := formatGenerationPrompt(
		"topic", "", "", "Insider", nil, 100, "Low", nil, 0.5, "Standard Professional Flow",
	)

	assert.Contains(t, prompt, "No specific news data available")
	assert.Contains(t, prompt, "General")
	assert.Contains(t, prompt, "None")
}

func TestFormatVerifyPrompt_JSONContract(t *testing.T) {
	prompt := formatVerifyPrompt("Topic: AI", "the generated post")

	assert.Contains(t, prompt, "the generated post")
	assert.Contains(t, prompt, `"is_accurate"`)
	assert.Contains(t, prompt, `"issues"`)
	assert.Contains(t, prompt, `"suggestion"`)
}

func TestCreativityDescription(t *testing.T) {
	low := creativityDescription(0.2)
	high := creativityDescription(0.9)
	assert.NotEqual(t, low, high)
	assert.False(t, strings.EqualFold(low, ""))
}
