package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/course-arcade/internal/core"
)

func drain(s beep.Streamer) (count int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		count += n
		if !ok {
			return count, peak
		}
	}
}

func TestToneGeneratorLength(t *testing.T) {
	d := 60 * time.Millisecond
	g := NewToneGenerator(sampleRate, 440, 440, d, WaveSine, 0.5)

	count, peak := drain(g)
	if count != sampleRate.N(d) {
		t.Errorf("streamed %d samples, expected %d", count, sampleRate.N(d))
	}
	if peak <= 0 || peak > 0.5 {
		t.Errorf("peak %v should be in (0, 0.5]", peak)
	}
	if g.Err() != nil {
		t.Errorf("unexpected error %v", g.Err())
	}

	// A drained generator stays drained
	if n, ok := g.Stream(make([][2]float64, 16)); n != 0 || ok {
		t.Errorf("drained Stream() = %d, %v; expected 0, false", n, ok)
	}
}

func TestOscillateRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw} {
		for i := 0; i < 100; i++ {
			v := oscillate(w, float64(i)/100)
			if v < -1 || v > 1 {
				t.Fatalf("wave %d at phase %v = %v out of range", w, float64(i)/100, v)
			}
		}
	}
}

func TestEffectsForEvents(t *testing.T) {
	audible := []core.EventKind{
		core.EventCoin, core.EventHurt, core.EventGoalUnlocked, core.EventVictory,
		core.EventDefeat, core.EventBounce, core.EventScore, core.EventMiss,
	}
	for _, kind := range audible {
		s := newEffect(kind)
		if s == nil {
			t.Errorf("%s should have a sound", kind)
			continue
		}
		if count, _ := drain(s); count == 0 {
			t.Errorf("%s sound is empty", kind)
		}
	}

	if newEffect(core.EventNone) != nil || newEffect(core.EventRunOver) != nil {
		t.Error("none and run-over events should be silent")
	}
}

// Speaker initialization is skipped: test machines often have no audio device.
func TestSoundManagerWithoutInitialize(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(core.EventCoin)
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("SetMuted(true) should mute")
	}
	sm.SetMuted(false)
	sm.Close()
}

func TestNop(t *testing.T) {
	var p Player = &Nop{}
	p.Play(core.EventVictory)
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("Nop should remember mute state")
	}
	p.Close()
}
