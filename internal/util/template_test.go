package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate_Interpolates(t *testing.T) {
	out, err := RenderTemplate("Context:\n{{.Context}}\nEnd", map[string]any{"Context": "AI101: Intro"})
	require.NoError(t, err)
	assert.Equal(t, "Context:\nAI101: Intro\nEnd", out)
}

func TestRenderTemplate_FastPathWithoutMarkers(t *testing.T) {
	out, err := RenderTemplate("plain text", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text", out)
}

func TestRenderTemplate_InvalidTemplate(t *testing.T) {
	_, err := RenderTemplate("{{.Context", nil)
	assert.Error(t, err)
}
