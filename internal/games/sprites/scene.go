package sprites

import (
	"fmt"

	"github.com/vovakirdan/course-arcade/internal/core"
)

// Palette for the arena.
const (
	colorPlayer     = core.ColorCyan
	colorCoin       = core.ColorYellow
	colorHazard     = core.ColorRed
	colorWall       = core.ColorGray
	colorGoal       = core.ColorGreen
	colorGoalLocked = core.ColorBlue
	colorDebug      = core.ColorBrightMagenta
)

// Scene draws the arena, entities and HUD for the current frame.
func (g *Game) Scene() core.Scene {
	s := &g.state
	sc := core.NewScene(g.cfg.Screen.Width, g.cfg.Screen.Height)
	sc.Offset = g.shakeOffset()

	for _, e := range s.Entities {
		switch e.Kind {
		case KindWall:
			sc.Add(core.FillRect(e.Box, colorWall))
		case KindCoin:
			if e.Active {
				sc.Add(core.Circle(e.VisualBox(), colorCoin))
			}
		case KindHazard:
			sc.Add(core.Triangle(e.VisualBox(), colorHazard))
		case KindGoal:
			c := colorGoalLocked
			if s.GoalUnlocked() {
				c = colorGoal
			}
			sc.Add(core.FillRect(e.VisualBox(), c))
		}
	}

	// Blink while invincible
	p := s.Player
	if !p.Invincible.Active() || int(p.Invincible.Remaining()*16)%2 == 0 {
		sc.Add(core.FillRect(p.VisualBox(), colorPlayer))
	}

	if g.debug {
		for _, e := range s.Entities {
			if e.Kind != KindWall && e.Active {
				sc.Add(core.StrokeRect(e.Box, colorDebug))
			}
		}
		sc.Add(core.StrokeRect(p.Box, colorDebug))
	}

	hud := fmt.Sprintf("Coins Collected: %d/%d    HP: %d", s.Collected, s.Total, p.Health)
	if p.Invincible.Active() {
		hud += "  [i-frames]"
	}
	sc.HUD = append(sc.HUD, hud)
	if g.debug {
		sc.HUD = append(sc.HUD, "DEBUG: hitboxes (collisions use these)")
	}

	switch {
	case s.Status == core.StatusLost:
		sc.Banner = []string{"Game over", "Press Space to restart"}
	case s.Status == core.StatusWon:
		sc.Banner = []string{"You Win!", fmt.Sprintf("Score: %d", g.score()), "Press Space to play again"}
	case s.Paused:
		sc.Banner = []string{"PAUSED"}
	}

	return sc
}

// shakeOffset jitters the camera while the shake timer runs, fading with
// the time left.
func (g *Game) shakeOffset() core.Vec2 {
	if !g.state.Shake.Active() || g.rng == nil {
		return core.Vec2{}
	}
	strength := g.cfg.Shake.Strength * g.state.Shake.Fraction()
	return core.V(
		(g.rng.Float64()*2-1)*strength,
		(g.rng.Float64()*2-1)*strength,
	)
}
