package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const sampleFormYAML = `title: Checkout
theme:
  base: dark
  icons:
    icon-rocket: "^"
fields:
  - name: coupon
    placeholder: CODE
    icon: icon-star
  - name: website
    addon_before: "https://"
    addon_after: ".com"
`

func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	cmd.SetArgs(args)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeForm(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// isolateXDG points the XDG lookup at an empty directory for the test.
func isolateXDG(t *testing.T) string {
	t.Helper()

	t.Cleanup(xdg.Reload)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "none"))
	xdg.Reload()
	return home
}
