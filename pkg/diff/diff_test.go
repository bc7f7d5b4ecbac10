package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinesIdenticalContent(t *testing.T) {
	t.Parallel()

	require.Empty(t, Lines("a\nb\n", "a\nb\n", "golden", "rendered"))
}

func TestLinesSingleChange(t *testing.T) {
	t.Parallel()

	result := Lines("div#main\ntable#data\np\n", "div#main\ntable#other\np\n", "golden.json", "rendered")

	require.True(t, strings.HasPrefix(result, "--- golden.json\n+++ rendered\n"))
	require.Contains(t, result, " div#main\n")
	require.Contains(t, result, "-table#data\n")
	require.Contains(t, result, "+table#other\n")
	require.Contains(t, result, " p\n")
}

func TestLinesMissingTrailingNewline(t *testing.T) {
	t.Parallel()

	result := Lines("a\nb", "a\nc", "x", "y")
	require.Contains(t, result, "-b\n")
	require.Contains(t, result, "+c\n")
}

func TestLinesTruncatesHugeDiffs(t *testing.T) {
	t.Parallel()

	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		expected.WriteString("old\n")
		actual.WriteString("new\n")
	}

	result := Lines(expected.String(), actual.String(), "x", "y")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	require.Len(t, strings.Split(strings.TrimSuffix(result, "\n"), "\n"), maxDiffLines+1)
}
