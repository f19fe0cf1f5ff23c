package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	fieldkiterrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseForm loads a form file from disk, validates it, and returns the resulting model.
func ParseForm(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fieldkiterrors.NewParseError(path, 0, err)
	}
	return DecodeForm(path, data)
}

// DecodeForm decodes and validates a form document. Unknown keys are rejected.
func DecodeForm(source string, data []byte) (*Form, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var form Form
	if err := decoder.Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fieldkiterrors.NewParseError(source, 0, errors.New("document is empty"))
		}
		return nil, fieldkiterrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateForm(&form); err != nil {
		return nil, err
	}

	return &form, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
