// Package config provides YAML-based game configuration loading and
// difficulty presets for the workshop games.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/letter-workshop/internal/core"
)

// LettersConfig contains the tunables for the letter collecting platformer.
// Layout (platforms, pickups, target name) lives in level files.
type LettersConfig struct {
	World          LettersWorld   `yaml:"world"`
	Physics        LettersPhysics `yaml:"physics"`
	Scoring        LettersScoring `yaml:"scoring"`
	MovingPlatform LettersMover   `yaml:"moving_platform"`
	Player         LettersPlayer  `yaml:"player"`
}

// LettersWorld defines the world (window) size in world units.
type LettersWorld struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	FallLimit float64 `yaml:"fall_limit"` // 0 = unbounded
}

// LettersPhysics defines per-tick physics constants.
type LettersPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // negative = up
	MoveSpeed    float64 `yaml:"move_speed"`
}

// LettersScoring defines pickup resolution.
type LettersScoring struct {
	PickupRadius float64 `yaml:"pickup_radius"`
	Gain         int     `yaml:"gain"`
	Penalty      int     `yaml:"penalty"` // applied as a signed delta
}

// LettersMover defines the scripted conveyor platform.
type LettersMover struct {
	Speed float64 `yaml:"speed"`
}

// LettersPlayer holds the fallback player box used when no glyph is available.
type LettersPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Validate checks the config for values the simulation cannot run with.
func (c LettersConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.FallLimit < 0 {
		errs = append(errs, fmt.Errorf("fall_limit must not be negative, got %v", c.World.FallLimit))
	}
	if c.Scoring.PickupRadius <= 0 {
		errs = append(errs, fmt.Errorf("pickup_radius must be positive, got %v", c.Scoring.PickupRadius))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	return errors.Join(errs...)
}

// ViewerConfig contains configuration for the 3D letter scene.
type ViewerConfig struct {
	Name    string         `yaml:"name"` // shown in the HUD
	Camera  ViewerCamera   `yaml:"camera"`
	Letters []ViewerLetter `yaml:"letters"`
	Tree    ViewerModel    `yaml:"tree"`
}

// ViewerCamera defines the starting camera and its movement speed.
type ViewerCamera struct {
	Eye       Vec3    `yaml:"eye"`
	Target    Vec3    `yaml:"target"`
	FOV       float64 `yaml:"fov"`
	Near      float64 `yaml:"near"`
	Far       float64 `yaml:"far"`
	MoveSpeed float64 `yaml:"move_speed"`
}

// ViewerLetter places one letter model in the scene.
type ViewerLetter struct {
	Letter   string `yaml:"letter"`
	Position Vec3   `yaml:"position"`
}

// ViewerModel places a named model in the scene.
type ViewerModel struct {
	Model    string `yaml:"model"`
	Position Vec3   `yaml:"position"`
}

// Vec3 is the YAML form of a 3D position.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts to the core vector type.
func (v Vec3) Vec() core.Vec3 {
	return core.V3(v.X, v.Y, v.Z)
}

// Validate checks the viewer config.
func (c ViewerConfig) Validate() error {
	var errs []error
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov must be in (0, 180), got %v", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Eye == c.Camera.Target {
		errs = append(errs, errors.New("camera eye and target must differ"))
	}
	seen := make(map[string]bool, len(c.Letters))
	for i, l := range c.Letters {
		if len([]rune(l.Letter)) != 1 {
			errs = append(errs, fmt.Errorf("letters[%d]: %q is not a single letter", i, l.Letter))
			continue
		}
		if seen[l.Letter] {
			errs = append(errs, fmt.Errorf("letters[%d]: duplicate letter %q", i, l.Letter))
		}
		seen[l.Letter] = true
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI string to a preset.
// Unknown or empty strings return "" (use config as-is).
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyLettersPreset adjusts pickup reach and conveyor speed for a preset.
// Normal and empty presets keep the loaded values.
func ApplyLettersPreset(cfg *LettersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.PickupRadius = 40
		cfg.MovingPlatform.Speed = 1
	case DifficultyHard:
		cfg.Scoring.PickupRadius = 20
		cfg.MovingPlatform.Speed = 3
	}
}
