package engine

import (
	"fmt"
	"sort"
)

// CollisionState tells whether two sprites started or stopped touching.
type CollisionState int

const (
	CollisionBegin CollisionState = iota
	CollisionEnd
)

// String returns a human-readable name for the state.
func (s CollisionState) String() string {
	if s == CollisionBegin {
		return "begin"
	}
	return "end"
}

// CollisionPair is an unordered pair of sprite names, stored sorted.
type CollisionPair [2]string

// NewCollisionPair builds the pair for two names in either order.
func NewCollisionPair(a, b string) CollisionPair {
	if b < a {
		a, b = b, a
	}
	return CollisionPair{a, b}
}

// Contains reports whether one of the participants has the given name.
func (p CollisionPair) Contains(name string) bool {
	return p[0] == name || p[1] == name
}

// String implements fmt.Stringer.
func (p CollisionPair) String() string {
	return fmt.Sprintf("(%s, %s)", p[0], p[1])
}

// CollisionEvent is one begin/end notification, consumed once per frame.
type CollisionEvent struct {
	State CollisionState
	Pair  CollisionPair
}

// CollisionDetector turns sprite overlaps into begin/end events.
// Only sprites with Collision enabled take part.
type CollisionDetector struct {
	touching map[CollisionPair]struct{}
}

// NewCollisionDetector creates a detector with no known contacts.
func NewCollisionDetector() *CollisionDetector {
	return &CollisionDetector{touching: make(map[CollisionPair]struct{})}
}

// Reset forgets every known contact.
func (d *CollisionDetector) Reset() {
	d.touching = make(map[CollisionPair]struct{})
}

// Detect compares the current sprite bounds against the previous frame and
// queues an event on the engine for every contact that began or ended.
// Begin events follow sprite creation order, end events are sorted by pair.
func (d *CollisionDetector) Detect(e *Engine) {
	var colliders []*Sprite
	for _, s := range e.Sprites() {
		if s.Collision {
			colliders = append(colliders, s)
		}
	}

	current := make(map[CollisionPair]struct{})
	for i := 0; i < len(colliders); i++ {
		a := colliders[i].Bounds()
		for j := i + 1; j < len(colliders); j++ {
			if !a.Intersects(colliders[j].Bounds()) {
				continue
			}
			pair := NewCollisionPair(colliders[i].Name, colliders[j].Name)
			current[pair] = struct{}{}
			if _, known := d.touching[pair]; !known {
				e.PushCollision(CollisionEvent{State: CollisionBegin, Pair: pair})
			}
		}
	}

	var ended []CollisionPair
	for pair := range d.touching {
		if _, still := current[pair]; !still {
			ended = append(ended, pair)
		}
	}
	sort.Slice(ended, func(i, j int) bool {
		if ended[i][0] != ended[j][0] {
			return ended[i][0] < ended[j][0]
		}
		return ended[i][1] < ended[j][1]
	})
	for _, pair := range ended {
		e.PushCollision(CollisionEvent{State: CollisionEnd, Pair: pair})
	}

	d.touching = current
}
