package sprites

import (
	"github.com/vovakirdan/course-arcade/internal/config"
	"github.com/vovakirdan/course-arcade/internal/core"
)

// NewState builds a fresh round from the level config. It has no side
// effects, so two calls with the same config yield equal states.
func NewState(cfg config.SpritesConfig) State {
	pf := core.NewBox(cfg.Playfield.X, cfg.Playfield.Y, cfg.Playfield.W, cfg.Playfield.H)
	origin := core.V(pf.X, pf.Y)
	at := func(p config.Point) core.Vec2 {
		return origin.Add(core.V(p.X, p.Y))
	}

	var ents []Entity

	// Border walls, inside the playfield edge
	if t := cfg.BorderThickness; t > 0 {
		ents = append(ents,
			wall(core.NewBox(pf.X, pf.Y, pf.W, t)),
			wall(core.NewBox(pf.X, pf.Bottom()-t, pf.W, t)),
			wall(core.NewBox(pf.X, pf.Y, t, pf.H)),
			wall(core.NewBox(pf.Right()-t, pf.Y, t, pf.H)),
		)
	}

	for _, w := range cfg.Walls {
		ents = append(ents, wall(core.NewBox(origin.X+w.X, origin.Y+w.Y, w.W, w.H)))
	}

	for _, p := range cfg.Coins.Positions {
		ents = append(ents, Entity{
			Kind:   KindCoin,
			Box:    core.BoxAt(at(p), cfg.Coins.Hitbox, cfg.Coins.Hitbox),
			Visual: cfg.Coins.VisualSize,
			Active: true,
		})
	}

	for _, h := range cfg.Hazards {
		home := at(h.Center)
		ents = append(ents, Entity{
			Kind:   KindHazard,
			Box:    core.BoxAt(home, h.Size, h.Size),
			Active: true,
			Home:   home,
			RangeX: h.RangeX,
			RangeY: h.RangeY,
			Vel:    core.V(h.SpeedX, h.SpeedY),
		})
	}

	ents = append(ents, Entity{
		Kind:   KindGoal,
		Box:    core.BoxAt(at(cfg.Goal.Position), cfg.Goal.Hitbox, cfg.Goal.Hitbox),
		Visual: cfg.Goal.VisualSize,
		Active: true,
	})

	p := cfg.Player
	return State{
		Status: core.StatusPlaying,
		Player: Player{
			Box:    core.BoxAt(at(p.Spawn), p.Hitbox, p.Hitbox),
			Visual: p.VisualSize,
			Speed:  p.Speed,
			Health: p.Health,
		},
		Entities: ents,
		Total:    len(cfg.Coins.Positions),
	}
}

func wall(b core.Box) Entity {
	return Entity{Kind: KindWall, Box: b, Active: true}
}
