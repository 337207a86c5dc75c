package sim

// Input is the held controls for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Events reports what happened during a Step.
type Events struct {
	Collected   []rune // target letters picked up, in order
	Penalized   []rune // non-target letters picked up, in order
	NameChanged bool
	Jumped      bool
	Landed      bool // airborne at the start of the tick, grounded at the end
}

// Step advances the simulation by one fixed tick.
//
// Phases run in a fixed order: horizontal offset, jump,
// gravity, integration, platform snap, pickups, then the conveyor. The
// conveyor moves after collision, so a rider is carried up one tick late.
// Position is never clamped.
func Step(s *State, in Input) Events {
	var ev Events
	p := &s.Player
	wasGrounded := p.Grounded

	if in.Left {
		p.Pos.X -= s.Params.MoveSpeed
	}
	if in.Right {
		p.Pos.X += s.Params.MoveSpeed
	}

	if p.Grounded && in.Jump {
		p.Vel.Y = s.Params.JumpStrength
		p.Grounded = false
		ev.Jumped = true
	}

	p.Vel.Y += s.Params.Gravity
	p.Pos = p.Pos.Add(p.Vel)

	resolvePlatforms(s)
	ev.Landed = !wasGrounded && p.Grounded

	collectPickups(s, &ev)
	moveConveyor(s)

	s.Tick++
	return ev
}

// resolvePlatforms snaps the player onto any platform whose top band holds
// the player's bottom edge. Platforms are checked in order and the last
// match wins.
func resolvePlatforms(s *State) {
	p := &s.Player
	p.Grounded = false

	for _, pl := range s.Platforms {
		top := float64(pl.Rect.Y)
		bottom := float64(pl.Rect.Bottom())
		left := float64(pl.Rect.X)
		right := float64(pl.Rect.Right())

		feet := p.Pos.Y + p.H
		if feet >= top && feet <= bottom && p.Pos.X+p.W > left && p.Pos.X < right {
			p.Pos.Y = top - p.H
			p.Vel.Y = 0
			p.Grounded = true
		}
	}
}

// collectPickups resolves every pickup within reach of the player's top-left
// corner. Several can be taken in one tick.
func collectPickups(s *State, ev *Events) {
	p := &s.Player

	for _, letter := range s.Pickups.Letters() {
		pk, _ := s.Pickups.Get(letter)
		if p.Pos.Dist(pk.Pos) >= s.Params.PickupRadius {
			continue
		}

		if s.IsTarget(letter) {
			p.Score += s.Params.Gain
			p.Collected = append(p.Collected, letter)
			ev.Collected = append(ev.Collected, letter)
			ev.NameChanged = true
		} else {
			p.Score += s.Params.Penalty
			ev.Penalized = append(ev.Penalized, letter)
		}
		s.Pickups.Remove(letter)
	}
}

// moveConveyor lifts the last platform and wraps it to the bottom of the
// screen once it has fully left the top.
func moveConveyor(s *State) {
	if !s.HasMover || len(s.Platforms) == 0 {
		return
	}
	r := &s.Platforms[len(s.Platforms)-1].Rect
	r.Y -= int(s.Params.MoverSpeed)
	if r.Y < -r.H {
		r.Y = s.Params.ScreenHeight
	}
}
