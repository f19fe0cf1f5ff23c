package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIconsCommandListsSortedClasses(t *testing.T) {
	isolateXDG(t)

	out, _, err := executeCommand(newRootCmd(), "icons")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	require.True(t, strings.HasPrefix(lines[0], "icon-calendar"))
	require.Contains(t, out, "icon-search")
	require.Contains(t, out, "⌕")
}

func TestIconsCommandIncludesFormIcons(t *testing.T) {
	path := writeForm(t, sampleFormYAML)

	out, _, err := executeCommand(newRootCmd(), "icons", "--form", path)
	require.NoError(t, err)
	require.Contains(t, out, "icon-rocket")
	require.Contains(t, out, "^")
}
