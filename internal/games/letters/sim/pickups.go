package sim

import (
	"github.com/vovakirdan/letter-workshop/internal/assets"
	"github.com/vovakirdan/letter-workshop/internal/core"
)

// Pickup is a letter waiting to be collected.
type Pickup struct {
	Letter rune
	Pos    core.Vec2
	Visual assets.Result // Missing visuals are not drawn but still collide
}

// PickupSet is an ordered mapping from letter to pickup. Iteration follows
// insertion order; each letter appears at most once.
type PickupSet struct {
	order []rune
	items map[rune]Pickup
}

// NewPickupSet creates an empty set.
func NewPickupSet() *PickupSet {
	return &PickupSet{items: make(map[rune]Pickup)}
}

// Add inserts or replaces a pickup. Replacing keeps the original position in
// the order.
func (ps *PickupSet) Add(p Pickup) {
	if ps.items == nil {
		ps.items = make(map[rune]Pickup)
	}
	if _, ok := ps.items[p.Letter]; !ok {
		ps.order = append(ps.order, p.Letter)
	}
	ps.items[p.Letter] = p
}

// Get returns the pickup for a letter.
func (ps *PickupSet) Get(letter rune) (Pickup, bool) {
	p, ok := ps.items[letter]
	return p, ok
}

// Has reports whether the letter is still present.
func (ps *PickupSet) Has(letter rune) bool {
	_, ok := ps.items[letter]
	return ok
}

// Remove deletes a pickup. Removing an absent letter is a no-op.
func (ps *PickupSet) Remove(letter rune) {
	if _, ok := ps.items[letter]; !ok {
		return
	}
	delete(ps.items, letter)
	for i, r := range ps.order {
		if r == letter {
			ps.order = append(ps.order[:i], ps.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of pickups left.
func (ps *PickupSet) Len() int {
	return len(ps.order)
}

// Letters returns a copy of the letters in insertion order.
func (ps *PickupSet) Letters() []rune {
	out := make([]rune, len(ps.order))
	copy(out, ps.order)
	return out
}

// All returns the pickups in insertion order.
func (ps *PickupSet) All() []Pickup {
	out := make([]Pickup, 0, len(ps.order))
	for _, r := range ps.order {
		out = append(out, ps.items[r])
	}
	return out
}

// Clone returns an independent copy.
func (ps *PickupSet) Clone() *PickupSet {
	c := NewPickupSet()
	for _, r := range ps.order {
		c.Add(ps.items[r])
	}
	return c
}
