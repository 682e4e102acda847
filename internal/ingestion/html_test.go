package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<p>Senior engineer</p>"))
	assert.True(t, LooksLikeHTML("<DIV class=\"x\">text</DIV>"))
	assert.False(t, LooksLikeHTML("latency < 10ms and throughput > 1k"))
	assert.False(t, LooksLikeHTML("# Markdown heading"))
}

func TestHTMLToText_BlockElementsOnOwnLines(t *testing.T) {
	text, err := HTMLToText("<ul><li>Go</li><li>Python</li></ul><style>.a{}</style>")
	require.NoError(t, err)

	assert.NotContains(t, text, ".a{}")
	assert.Contains(t, text, "Go")
	assert.Contains(t, text, "Python")
	assert.NotContains(t, text, "GoPython")
}
