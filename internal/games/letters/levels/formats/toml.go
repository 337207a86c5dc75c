package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a TOML level file. Platforms and pickups are arrays of
// tables ([[platforms]], [[pickups]]); the conveyor is a [moving] table.
func ParseTOML(data []byte) (Level, error) {
	var lvl Level
	md, err := toml.Decode(string(data), &lvl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Level{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	return lvl, nil
}
