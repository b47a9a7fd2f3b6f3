package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/course-arcade/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// note is one segment of a sound effect.
type note struct {
	freq    float64
	endFreq float64 // Zero means a steady pitch
	dur     time.Duration
	wave    Wave
}

// effectNotes maps each audible event to its note sequence.
var effectNotes = map[core.EventKind][]note{
	core.EventCoin: {
		{freq: 988, dur: 60 * time.Millisecond, wave: WaveSquare},
		{freq: 1319, dur: 120 * time.Millisecond, wave: WaveSquare},
	},
	core.EventHurt: {
		{freq: 180, endFreq: 90, dur: 180 * time.Millisecond, wave: WaveSaw},
	},
	core.EventGoalUnlocked: {
		{freq: 523, dur: 80 * time.Millisecond},
		{freq: 659, dur: 80 * time.Millisecond},
		{freq: 784, dur: 160 * time.Millisecond},
	},
	core.EventVictory: {
		{freq: 523, dur: 120 * time.Millisecond, wave: WaveSquare},
		{freq: 659, dur: 120 * time.Millisecond, wave: WaveSquare},
		{freq: 784, dur: 120 * time.Millisecond, wave: WaveSquare},
		{freq: 1047, dur: 300 * time.Millisecond, wave: WaveSquare},
	},
	core.EventDefeat: {
		{freq: 392, dur: 150 * time.Millisecond, wave: WaveSaw},
		{freq: 330, dur: 150 * time.Millisecond, wave: WaveSaw},
		{freq: 262, endFreq: 200, dur: 350 * time.Millisecond, wave: WaveSaw},
	},
	core.EventBounce: {
		{freq: 660, dur: 40 * time.Millisecond, wave: WaveSquare},
	},
	core.EventScore: {
		{freq: 880, dur: 70 * time.Millisecond},
	},
	core.EventMiss: {
		{freq: 330, endFreq: 110, dur: 250 * time.Millisecond, wave: WaveSaw},
	},
}

// effectVolume keeps effects well below clipping when several overlap.
const effectVolume = 0.25

// newEffect builds the streamer for an event, or nil for silent events.
func newEffect(kind core.EventKind) beep.Streamer {
	notes, ok := effectNotes[kind]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		end := n.endFreq
		if end == 0 {
			end = n.freq
		}
		parts = append(parts, NewToneGenerator(sampleRate, n.freq, end, n.dur, n.wave, effectVolume))
	}
	return beep.Seq(parts...)
}

// SoundManager plays effects through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Play starts the effect for kind on top of whatever is already playing.
func (sm *SoundManager) Play(kind core.EventKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := newEffect(kind)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or restores output. Effects started while muted are dropped.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		sm.volume.Silent = muted
		return
	}

	speaker.Lock()
	sm.volume.Silent = muted
	if muted {
		sm.mixer.Clear()
	}
	speaker.Unlock()
}

// Muted reports whether output is silenced.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the speaker open for the process lifetime
	sm.initialized = false
}
