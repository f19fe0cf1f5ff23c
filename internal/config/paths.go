package config

import (
	"github.com/adrg/xdg"
)

// FormFile is the form path relative to the XDG config directories.
const FormFile = "fieldkit/form.yaml"

// DefaultFormPath finds a form in the XDG config directories.
func DefaultFormPath() (string, error) {
	return xdg.SearchConfigFile(FormFile)
}
