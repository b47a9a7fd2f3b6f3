package sprites

import (
	"math"

	"github.com/vovakirdan/course-arcade/internal/core"
)

// movePlayer applies input and any knockback, then moves one axis at a
// time so a wall hit on one axis never cancels motion on the other.
func movePlayer(s *State, dir core.Vec2, dt float64) {
	p := &s.Player

	vel := dir.Normalize().Scale(p.Speed)
	if p.KnockTimer.Active() {
		vel = vel.Add(p.Knockback)
	}
	p.Vel = vel

	steps := subSteps(vel.Scale(dt), stride(s))
	sub := dt / float64(steps)
	for range steps {
		p.Box.X += vel.X * sub
		clampToWalls(s, true, vel.X)
		p.Box.Y += vel.Y * sub
		clampToWalls(s, false, vel.Y)
	}
}

// stride is the longest sub-step that cannot carry the player over the
// thinnest wall or a wall over the player.
func stride(s *State) float64 {
	d := min(s.Player.Box.W, s.Player.Box.H)
	for _, e := range s.Entities {
		if e.Kind == KindWall {
			d = min(d, e.Box.W, e.Box.H)
		}
	}
	return d
}

// subSteps splits a move so no piece is longer than stride on either axis.
func subSteps(move core.Vec2, stride float64) int {
	far := max(math.Abs(move.X), math.Abs(move.Y))
	if stride <= 0 || far <= stride {
		return 1
	}
	return int(math.Ceil(far / stride))
}

// clampToWalls pushes the player out of every wall it overlaps, back to
// the side it came from on the axis just moved.
func clampToWalls(s *State, xAxis bool, amount float64) {
	if amount == 0 {
		return
	}
	p := &s.Player
	for _, e := range s.Entities {
		if e.Kind != KindWall || !p.Box.Intersects(e.Box) {
			continue
		}
		switch {
		case xAxis && amount > 0:
			p.Box.X = e.Box.X - p.Box.W
		case xAxis:
			p.Box.X = e.Box.Right()
		case amount > 0:
			p.Box.Y = e.Box.Y - p.Box.H
		default:
			p.Box.Y = e.Box.Bottom()
		}
	}
}

// moveHazards advances every hazard along its patrol.
func moveHazards(s *State, dt float64) {
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Kind != KindHazard {
			continue
		}

		c := e.Box.Center()
		c.X, e.Vel.X = patrol(c.X, e.Vel.X, e.Home.X, e.RangeX, dt)
		c.Y, e.Vel.Y = patrol(c.Y, e.Vel.Y, e.Home.Y, e.RangeY, dt)
		e.Box = core.BoxAt(c, e.Box.W, e.Box.H)
	}
}

// patrol moves one axis and bounces it off home ± rng, pointing the
// velocity back inward.
func patrol(pos, vel, home, rng, dt float64) (float64, float64) {
	if rng <= 0 {
		return pos, vel
	}
	pos += vel * dt
	if pos < home-rng {
		return home - rng, math.Abs(vel)
	}
	if pos > home+rng {
		return home + rng, -math.Abs(vel)
	}
	return pos, vel
}
