package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// attack is the fade-in applied to every tone to avoid clicks.
const attack = 5 * time.Millisecond

// ToneGenerator streams a single enveloped tone whose pitch slides
// linearly from freq to endFreq over its duration.
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	endFreq float64
	wave    Wave
	amp     float64
	pos     int
	total   int
	attackN int
	phase   float64
}

// NewToneGenerator creates a tone generator.
func NewToneGenerator(sr beep.SampleRate, freq, endFreq float64, d time.Duration, wave Wave, amp float64) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		endFreq: endFreq,
		wave:    wave,
		amp:     amp,
		total:   sr.N(d),
		attackN: max(sr.N(attack), 1),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.total {
			break
		}

		progress := float64(g.pos) / float64(g.total)
		freq := g.freq + (g.endFreq-g.freq)*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Linear attack, then linear decay to silence
		envelope := math.Min(float64(g.pos)/float64(g.attackN), 1.0) * (1 - progress)
		sample := g.amp * envelope * oscillate(g.wave, g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// oscillate returns the waveform value in [-1, 1] at phase in [0, 1).
func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
