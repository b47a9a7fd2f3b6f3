package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/course-arcade/internal/core"
)

// binding ties an action to the physical keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionDebug, []ebiten.Key{ebiten.KeyF1, ebiten.KeyH}},
	{core.ActionMute, []ebiten.Key{ebiten.KeyM}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// keyState answers whether a key is in some state this frame.
type keyState func(ebiten.Key) bool

// buildFrame turns key state into an InputFrame. Any bound key held marks
// the action as holding; any bound key that went down this frame marks it
// as pressed.
func buildFrame(down, pressed keyState) core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if down(k) {
				f.Hold(b.action)
			}
			if pressed(k) {
				f.Set(b.action)
			}
		}
	}
	return f
}

// readFrame samples the real keyboard.
func readFrame() core.InputFrame {
	return buildFrame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}
