package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/tui"
)

func TestDemoCommandFallsBackToStaticFrame(t *testing.T) {
	isolateXDG(t)

	out, _, err := executeCommand(newRootCmd(), "demo")
	require.NoError(t, err)
	for _, field := range sampleForm().FieldNames() {
		require.Contains(t, out, field)
	}
	require.Contains(t, out, "https://")
}

func TestDemoCommandUsesXDGForm(t *testing.T) {
	home := isolateXDG(t)

	path := filepath.Join(home, config.FormFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(sampleFormYAML), 0o644))

	out, _, err := executeCommand(newRootCmd(), "demo")
	require.NoError(t, err)
	require.Contains(t, out, "Checkout")
	require.Contains(t, out, "coupon")
	require.NotContains(t, out, "password")
}

func TestRunDemoInteractiveUsesProgramRunner(t *testing.T) {
	isolateXDG(t)

	original := demoProgramRunner
	t.Cleanup(func() { demoProgramRunner = original })

	var started tui.Model
	demoProgramRunner = func(model tui.Model) (tui.Model, error) {
		started = model
		return model, nil
	}

	root := &rootFlags{theme: "dark"}
	demo := newDemoCmd(root)
	require.NoError(t, runDemo(demo, root, demoOptions{}))

	require.Equal(t, len(sampleForm().Fields), started.Len())
	require.Equal(t, "dark", started.Theme().Name)
	require.True(t, started.Field(0).Focused())
}

func TestBuildFormModelRejectsEmptyForm(t *testing.T) {
	_, err := buildFormModel(&rootFlags{}, &config.Form{}, true)
	require.ErrorIs(t, err, errNoFields)
}
