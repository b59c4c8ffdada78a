// Package config loads form definitions from YAML.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/restricted_input/pkg/model"
)

// DirName and FileName locate the form definition inside a project.
const (
	DirName  = ".rinput"
	FileName = "form.yaml"
)

// Path returns the form definition path for dir.
func Path(dir string) string {
	return filepath.Join(dir, DirName, FileName)
}

// Load reads the form definition from <dir>/.rinput/form.yaml.
// An empty dir means the current working directory.
func Load(dir string) (model.Form, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return model.Form{}, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}
	return LoadFile(Path(dir))
}

// LoadFile reads a form definition from a specific YAML file.
func LoadFile(path string) (model.Form, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return model.Form{}, fmt.Errorf("no form config found at %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("failed to read form config: %w", err)
	}
	return Parse(data)
}

// Parse decodes, normalizes and validates a form definition.
// Suspicious key names and preset values the field's own keys could not
// produce are logged but do not fail the load.
func Parse(data []byte) (model.Form, error) {
	var form model.Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return model.Form{}, fmt.Errorf("failed to parse form config: %w", err)
	}

	for i := range form.Fields {
		form.Fields[i].AllowedKeys = ExpandKeys(form.Fields[i].AllowedKeys)
	}
	if err := form.Validate(); err != nil {
		return model.Form{}, fmt.Errorf("invalid form config: %w", err)
	}

	for _, f := range form.Fields {
		for _, w := range CheckKeys(f.AllowedKeys) {
			log.Printf("Warning: field %s: %s", f.Name, w)
		}
		if w := CheckValue(f); w != "" {
			log.Printf("Warning: field %s: %s", f.Name, w)
		}
	}
	return form, nil
}

// Default returns the built-in demo form.
func Default() model.Form {
	return model.Form{
		Title: "Restricted input",
		Fields: []model.Field{
			{
				Name:        "pin",
				Label:       "PIN",
				Placeholder: "digits only",
				AllowedKeys: ExpandKeys([]string{"0-9"}),
				Caret:       "right",
				CharLimit:   6,
			},
			{
				Name:        "code",
				Label:       "Hex code",
				Placeholder: "0-9, a-f",
				AllowedKeys: ExpandKeys([]string{"0-9", "a-f", "A-F"}),
				Caret:       "left",
				CharLimit:   8,
			},
			{
				Name:        "amount",
				Label:       "Amount",
				Placeholder: "0.00",
				AllowedKeys: ExpandKeys([]string{"0-9", ".", "shift+tab"}),
				Caret:       "right",
			},
		},
	}
}
