package sprites

import "github.com/vovakirdan/course-arcade/internal/core"

// Tuning that is not part of the level file.
type Tuning struct {
	Invincibility  float64
	KnockbackSpeed float64
	KnockbackTime  float64
	ShakeDuration  float64
}

// Resolve answers every overlap between the player and the entities, one
// response per kind. Walls are handled during movement. Resolution stops
// as soon as the round ends.
func Resolve(s *State, tune Tuning) []core.Event {
	var events []core.Event

	for i := range s.Entities {
		if s.Status != core.StatusPlaying {
			break
		}

		e := &s.Entities[i]
		if !e.Active || !s.Player.Box.Intersects(e.Box) {
			continue
		}

		switch e.Kind {
		case KindWall:
			// Solid; resolved while moving

		case KindHazard:
			events = append(events, damage(s, e.Box, tune)...)

		case KindCoin:
			e.Active = false
			if s.Collected < s.Total {
				s.Collected++
			}
			events = append(events, core.Event{Kind: core.EventCoin, Value: s.Collected})
			if s.GoalUnlocked() {
				events = append(events, core.Event{Kind: core.EventGoalUnlocked})
			}

		case KindGoal:
			if s.GoalUnlocked() {
				s.Status = core.StatusWon
				events = append(events, core.Event{Kind: core.EventVictory})
			}
		}
	}

	return events
}

// damage applies one hazard hit unless the player is still invincible.
func damage(s *State, source core.Box, tune Tuning) []core.Event {
	p := &s.Player
	if p.Invincible.Active() {
		return nil
	}

	if p.Health > 0 {
		p.Health--
	}
	p.Invincible.Start(tune.Invincibility)

	push := p.Box.Center().Sub(source.Center())
	if push.IsZero() {
		push = core.V(1, 0)
	}
	p.Knockback = push.Normalize().Scale(tune.KnockbackSpeed)
	p.KnockTimer.Start(tune.KnockbackTime)
	s.Shake.Start(tune.ShakeDuration)

	events := []core.Event{{Kind: core.EventHurt, Value: p.Health}}
	if p.Health == 0 {
		s.Status = core.StatusLost
		events = append(events, core.Event{Kind: core.EventDefeat})
	}
	return events
}

// Update advances a playing round by dt seconds: timers, movement,
// then collision responses. Finished or paused rounds only run the
// camera shake down.
func Update(s *State, in core.InputFrame, dt float64, tune Tuning) []core.Event {
	s.Shake.Tick(dt)
	if s.Status != core.StatusPlaying || s.Paused {
		return nil
	}

	s.Player.Invincible.Tick(dt)
	s.Player.KnockTimer.Tick(dt)

	movePlayer(s, in.Direction(), dt)
	moveHazards(s, dt)

	return Resolve(s, tune)
}
