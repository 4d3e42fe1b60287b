package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format. Rows use the
// same symbols as the text format.
type YAMLLevel struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// YAMLExtensions returns extensions of the YAML format.
func YAMLExtensions() []string {
	return []string{".yaml", ".yml"}
}

// ParseYAML parses a YAML level pack.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	pack := Pack{Name: yp.Name}
	for _, l := range yp.Levels {
		pack.Levels = append(pack.Levels, Level{Name: l.Name, Rows: l.Rows})
	}
	return pack, nil
}
