package config

import (
	"fmt"
	"os"

	"github.com/playmatatu/poolsim/internal/physics"
	"gopkg.in/yaml.v3"
)

// LoadPhysics reads table constants from a YAML file. Keys missing from the
// file keep their default values. An empty path returns the defaults.
func LoadPhysics(path string) (physics.Params, error) {
	p := physics.DefaultParams()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read physics config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse physics config %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
