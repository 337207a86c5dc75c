// Package sim implements the fixed-step simulation of the letter collector:
// a single player box under gravity, axis-aligned platforms (one of them a
// scripted conveyor), and letter pickups that grow the player's name.
//
// The package is pure: no terminal, clock or randomness. The same state and
// input sequence always yields the same result.
package sim

import (
	"slices"

	"github.com/vovakirdan/letter-workshop/internal/config"
	"github.com/vovakirdan/letter-workshop/internal/core"
	"github.com/vovakirdan/letter-workshop/internal/games/letters/levels"
)

// Player is the controllable box. Its size follows the rendered name glyph.
type Player struct {
	Pos       core.Vec2 // top-left corner
	Vel       core.Vec2 // only Y is integrated; X moves by direct offset
	W, H      float64
	Grounded  bool
	Collected []rune // seed letter followed by target letters in pickup order
	Score     int
}

// Platform is a solid rectangle. Only the top edge is checked.
type Platform struct {
	Rect  core.Rect
	Color core.Color
}

// Params holds the per-tick constants.
type Params struct {
	Gravity      float64
	JumpStrength float64 // negative = up
	MoveSpeed    float64
	PickupRadius float64
	Gain         int
	Penalty      int // signed delta, normally negative
	MoverSpeed   float64
	ScreenHeight int // conveyor wrap-around row
}

// DefaultParams returns the workshop constants.
func DefaultParams() Params {
	return Params{
		Gravity:      0.5,
		JumpStrength: -10,
		MoveSpeed:    5,
		PickupRadius: 30,
		Gain:         10,
		Penalty:      -5,
		MoverSpeed:   2,
		ScreenHeight: 720,
	}
}

// ParamsFromConfig maps the loaded game config onto simulation params.
func ParamsFromConfig(cfg config.LettersConfig) Params {
	return Params{
		Gravity:      cfg.Physics.Gravity,
		JumpStrength: cfg.Physics.JumpStrength,
		MoveSpeed:    cfg.Physics.MoveSpeed,
		PickupRadius: cfg.Scoring.PickupRadius,
		Gain:         cfg.Scoring.Gain,
		Penalty:      cfg.Scoring.Penalty,
		MoverSpeed:   cfg.MovingPlatform.Speed,
		ScreenHeight: cfg.World.Height,
	}
}

// State is everything Step reads and writes.
type State struct {
	Player    Player
	Platforms []Platform // when HasMover is set the last entry is the conveyor
	Pickups   *PickupSet
	Target    []rune // membership only
	HasMover  bool
	Params    Params
	Tick      uint64
}

// NewState builds a fresh state from a level. The player starts with the
// first target letter already collected and a size of w x h; callers that
// render glyphs resize it afterwards.
func NewState(lvl levels.Level, p Params, w, h float64) *State {
	s := &State{
		Player: Player{
			Pos: lvl.Start,
			W:   w,
			H:   h,
		},
		Pickups: NewPickupSet(),
		Target:  []rune(lvl.Target),
		Params:  p,
	}
	if len(s.Target) > 0 {
		s.Player.Collected = []rune{s.Target[0]}
	}

	for _, lp := range lvl.Platforms {
		s.Platforms = append(s.Platforms, Platform{Rect: lp.Rect, Color: lp.Color})
	}
	if lvl.Moving != nil {
		s.Platforms = append(s.Platforms, Platform{Rect: lvl.Moving.Rect, Color: lvl.Moving.Color})
		s.HasMover = true
	}

	for _, lp := range lvl.Pickups {
		s.Pickups.Add(Pickup{Letter: lp.Letter, Pos: lp.Pos})
	}
	return s
}

// Name is the player's current name.
func (s *State) Name() string {
	return string(s.Player.Collected)
}

// IsTarget reports whether r belongs to the target name.
func (s *State) IsTarget(r rune) bool {
	return slices.Contains(s.Target, r)
}

// Remaining returns the number of pickups left.
func (s *State) Remaining() int {
	return s.Pickups.Len()
}

// TargetRemaining returns the number of target-letter pickups left.
func (s *State) TargetRemaining() int {
	n := 0
	for _, r := range s.Pickups.order {
		if s.IsTarget(r) {
			n++
		}
	}
	return n
}

// Mover returns the conveyor platform, if any.
func (s *State) Mover() (Platform, bool) {
	if !s.HasMover || len(s.Platforms) == 0 {
		return Platform{}, false
	}
	return s.Platforms[len(s.Platforms)-1], true
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Player.Collected = slices.Clone(s.Player.Collected)
	c.Platforms = slices.Clone(s.Platforms)
	c.Target = slices.Clone(s.Target)
	c.Pickups = s.Pickups.Clone()
	return &c
}
