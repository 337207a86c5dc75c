// Package formats provides pluggable level file format parsers.
package formats

// Level is a parsed level file before validation. Field tags cover every
// supported format so one structure serves them all.
type Level struct {
	ID        string     `yaml:"id" toml:"id"`
	Name      string     `yaml:"name" toml:"name"`
	Target    string     `yaml:"target" toml:"target"`
	Start     Point      `yaml:"start" toml:"start"`
	Platforms []Platform `yaml:"platforms" toml:"platforms"`
	Moving    *Platform  `yaml:"moving,omitempty" toml:"moving,omitempty"`
	Pickups   []Pickup   `yaml:"pickups" toml:"pickups"`
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Platform is an axis-aligned platform in world units.
type Platform struct {
	X     int    `yaml:"x" toml:"x"`
	Y     int    `yaml:"y" toml:"y"`
	W     int    `yaml:"w" toml:"w"`
	H     int    `yaml:"h" toml:"h"`
	Color string `yaml:"color,omitempty" toml:"color,omitempty"`
}

// Pickup is a letter placed in the world.
type Pickup struct {
	Letter string  `yaml:"letter" toml:"letter"`
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}
