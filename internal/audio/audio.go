// Package audio plays short synthesized sound effects for game events.
// Every sound is generated at runtime; there are no audio files.
package audio

import "github.com/vovakirdan/course-arcade/internal/core"

// Player turns game events into sound.
type Player interface {
	Play(kind core.EventKind)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// Nop is a silent Player, used over SSH and when no audio device exists.
type Nop struct {
	muted bool
}

func (n *Nop) Play(core.EventKind) {}
func (n *Nop) SetMuted(muted bool) { n.muted = muted }
func (n *Nop) Muted() bool { return n.muted }
func (n *Nop) Close() {}

// Open returns a speaker-backed Player, or a Nop together with the reason
// the device could not be opened.
func Open(muted bool) (Player, error) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		return &Nop{muted: muted}, err
	}
	sm.SetMuted(muted)
	return sm, nil
}
