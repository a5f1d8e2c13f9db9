// Package viewfile reads and writes gantt view definitions as TOML files,
// the format the gv CLI uses to keep view configurations alongside a vault.
package viewfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// Definition is the on-disk shape of a view.
type Definition struct {
	Name        string           `toml:"name"`
	Description string           `toml:"description,omitempty"`
	Config      model.ViewConfig `toml:"config"`
}

// Load reads a view definition from path and validates its configuration.
func Load(path string) (*Definition, error) {
	var def Definition
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return nil, fmt.Errorf("read view file %s: %w", path, err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("view file %s: name is required", path)
	}
	if err := model.ValidateViewConfig(&def.Config); err != nil {
		return nil, fmt.Errorf("view file %s: %w", path, err)
	}
	return &def, nil
}

// Save writes a view definition to path, replacing any existing file.
func Save(path string, def *Definition) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("write view file %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(def); err != nil {
		return fmt.Errorf("encode view file %s: %w", path, err)
	}
	return nil
}
