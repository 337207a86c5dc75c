package config

import (
	_ "embed"
)

//go:embed defaults/letters.yaml
var defaultLettersYAML []byte

//go:embed defaults/viewer.yaml
var defaultViewerYAML []byte

// DefaultLettersConfig returns the hardcoded Letter Collector configuration.
// Mirrors defaults/letters.yaml and is used if the embedded file cannot be parsed.
func DefaultLettersConfig() LettersConfig {
	return LettersConfig{
		World: LettersWorld{
			Width:     1280,
			Height:    720,
			FallLimit: 1440,
		},
		Physics: LettersPhysics{
			Gravity:      0.5,
			JumpStrength: -10,
			MoveSpeed:    5,
		},
		Scoring: LettersScoring{
			PickupRadius: 30,
			Gain:         10,
			Penalty:      -5,
		},
		MovingPlatform: LettersMover{
			Speed: 2,
		},
		Player: LettersPlayer{
			Width:  16,
			Height: 32,
		},
	}
}

// DefaultViewerConfig returns the hardcoded 3D scene configuration.
func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		Name: "YOURNAME",
		Camera: ViewerCamera{
			Eye:       Vec3{Z: 10},
			FOV:       45,
			Near:      0.1,
			Far:       100,
			MoveSpeed: 0.1,
		},
		Letters: []ViewerLetter{
			{Letter: "Y", Position: Vec3{}},
			{Letter: "O", Position: Vec3{X: 5}},
			{Letter: "U", Position: Vec3{X: -5}},
			{Letter: "R", Position: Vec3{Z: 5}},
			{Letter: "N", Position: Vec3{Z: -5}},
			{Letter: "A", Position: Vec3{X: 5, Z: -5}},
			{Letter: "M", Position: Vec3{X: -5, Z: -5}},
			{Letter: "E", Position: Vec3{Z: -10}},
		},
		Tree: ViewerModel{
			Model:    "tree1/tree1",
			Position: Vec3{X: 10},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "letters":
		return defaultLettersYAML
	case "viewer":
		return defaultViewerYAML
	default:
		return nil
	}
}
