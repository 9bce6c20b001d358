package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/console-caster/vmath"
)

// ShotGenerator is a noise burst over a falling tone
type ShotGenerator struct {
	sr  beep.SampleRate
	pos int
	rng *vmath.FastRand
}

// NewShotGenerator creates a shot sound generator
func NewShotGenerator(sr beep.SampleRate) *ShotGenerator {
	return &ShotGenerator{
		sr:  sr,
		rng: vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (g *ShotGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, fast decay
		envelope := math.Exp(-t * 40)

		freq := 600 * math.Exp(-t*20)
		tone := 0.3 * math.Sin(2*math.Pi*freq*t)
		noise := 0.35 * (g.rng.Float64()*2 - 1)

		sample := envelope * (tone + noise)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ShotGenerator) Err() error {
	return nil
}

// tone is a sine at freq for d, attenuated by gain (base-2 exponent)
func tone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{Streamer: beep.Take(sr.N(d), sine), Base: 2, Volume: gain}
}

// NewHitStreamer is a short two-note chirp
func NewHitStreamer(sr beep.SampleRate) beep.Streamer {
	return seq(
		tone(sr, 880, 50*time.Millisecond, -2),
		tone(sr, 1320, 70*time.Millisecond, -2),
	)
}

// NewClearedStreamer is a rising major arpeggio
func NewClearedStreamer(sr beep.SampleRate) beep.Streamer {
	return seq(
		tone(sr, 523.25, 120*time.Millisecond, -2),
		tone(sr, 659.25, 120*time.Millisecond, -2),
		tone(sr, 783.99, 120*time.Millisecond, -2),
		tone(sr, 1046.5, 240*time.Millisecond, -2),
	)
}

// seq drops nil parts, yielding nil when nothing is left
func seq(parts ...beep.Streamer) beep.Streamer {
	out := parts[:0]
	for _, p := range parts {
		if p != nil {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return beep.Seq(out...)
}
