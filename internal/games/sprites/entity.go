// Package sprites implements the sprite and collision demo: move a square
// around a walled arena, collect every coin to unlock the goal, and avoid
// the patrolling hazards.
package sprites

import "github.com/vovakirdan/course-arcade/internal/core"

// Kind tags what an Entity is and therefore how a collision with it is
// answered.
type Kind int

const (
	KindWall   Kind = iota // Solid, blocks movement
	KindHazard             // Damages on contact, patrols
	KindCoin               // Collected on contact
	KindGoal               // Wins the round once unlocked
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindHazard:
		return "hazard"
	case KindCoin:
		return "coin"
	case KindGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Entity is any non-player object in the arena.
type Entity struct {
	Kind   Kind
	Box    core.Box // Hitbox in world units
	Visual float64  // Drawn square size; zero draws the hitbox
	Active bool     // Coins go inactive once collected

	// Hazard patrol. The hitbox center ping-pongs within Home ± Range on
	// each axis; a zero range keeps that axis still.
	Home   core.Vec2
	RangeX float64
	RangeY float64
	Vel    core.Vec2
}

// VisualBox returns the box the entity is drawn in.
func (e Entity) VisualBox() core.Box {
	if e.Visual <= 0 {
		return e.Box
	}
	return e.Box.Centered(e.Visual, e.Visual)
}

// Player is the controllable square.
type Player struct {
	Box    core.Box
	Visual float64
	Speed  float64
	Health int
	Vel    core.Vec2 // Velocity applied during the last update

	Knockback  core.Vec2 // Impulse added to the input velocity while KnockTimer runs
	KnockTimer core.Timer
	Invincible core.Timer
}

// VisualBox returns the box the player is drawn in.
func (p Player) VisualBox() core.Box {
	if p.Visual <= 0 {
		return p.Box
	}
	return p.Box.Centered(p.Visual, p.Visual)
}

// State is everything that changes during a round. It is built by NewState
// and advanced only by Update.
type State struct {
	Status    core.Status
	Paused    bool
	Player    Player
	Entities  []Entity
	Collected int
	Total     int
	Shake     core.Timer
}

// GoalUnlocked reports whether every coin has been collected.
func (s *State) GoalUnlocked() bool {
	return s.Collected == s.Total
}
