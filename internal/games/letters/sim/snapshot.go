package sim

import "github.com/vovakirdan/letter-workshop/internal/core"

// Snapshot is a read-only copy of the state for rendering and tests.
type Snapshot struct {
	Tick      uint64
	PlayerPos core.Vec2
	PlayerW   float64
	PlayerH   float64
	Name      string
	Grounded  bool
	Score     int
	Platforms []Platform
	Pickups   []Pickup // insertion order
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	platforms := make([]Platform, len(s.Platforms))
	copy(platforms, s.Platforms)

	return Snapshot{
		Tick:      s.Tick,
		PlayerPos: s.Player.Pos,
		PlayerW:   s.Player.W,
		PlayerH:   s.Player.H,
		Name:      s.Name(),
		Grounded:  s.Player.Grounded,
		Score:     s.Player.Score,
		Platforms: platforms,
		Pickups:   s.Pickups.All(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(int64(snap.PlayerPos.X*1000)) //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.PlayerPos.Y*1000)) //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.Score))            //#nosec G115 -- hash computation
	for _, r := range snap.Name {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, p := range snap.Platforms {
		h = h*31 + uint64(int64(p.Rect.Y)) //#nosec G115 -- hash computation
	}
	for _, p := range snap.Pickups {
		h = h*31 + uint64(p.Letter) //#nosec G115 -- hash computation
	}
	return h
}
