package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

func validateFormPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("form file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve form path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("form file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("form path %s is a directory", abs)
	}

	return nil
}

// loadForm parses the form at path. With no path it falls back to the XDG
// form file and returns nil when there is none.
func loadForm(path string) (*config.Form, error) {
	if path == "" {
		found, err := config.DefaultFormPath()
		if err != nil {
			return nil, nil
		}
		path = found
	}

	if err := validateFormPath(path); err != nil {
		return nil, err
	}
	return config.ParseForm(path)
}

// resolveTheme picks the theme: an explicit built-in name wins over the form.
func resolveTheme(name string, form *config.Form) (components.Theme, error) {
	if name != "" {
		theme, ok := components.ThemeByName(name)
		if !ok {
			return components.Theme{}, fmt.Errorf("unknown theme %q", name)
		}
		return theme, nil
	}
	if form != nil {
		return config.BuildTheme(form.Theme)
	}
	return components.DefaultTheme(), nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

var errNoFields = errors.New("form has no fields")
