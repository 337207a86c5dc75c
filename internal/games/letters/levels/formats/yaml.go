package formats

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML level file. Unknown keys are rejected so typos
// such as "platfroms" do not silently produce an empty level.
func ParseYAML(data []byte) (Level, error) {
	var lvl Level
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&lvl); err != nil {
		return Level{}, fmt.Errorf("yaml decode: %w", err)
	}
	return lvl, nil
}
