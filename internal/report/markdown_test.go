package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("Evergreen Capital", sampleMatches())
	require.NoError(t, err)

	assert.Contains(t, out, "# Project Matches for Evergreen Capital")
	assert.Contains(t, out, "Solar Farm")
	assert.Contains(t, out, "15000.00")
	assert.Contains(t, out, "Piloted")
}

func TestRenderMarkdown_NoMatches(t *testing.T) {
	out, err := RenderMarkdown("Evergreen Capital", nil)
	require.NoError(t, err)

	assert.Contains(t, out, "No matches found.")
}
