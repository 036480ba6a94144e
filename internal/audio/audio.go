// Package audio synthesizes the game's sound effects at startup and plays
// them on demand. Effects are short square-wave and noise blips; nothing is
// loaded from disk.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect names one synthesized sound.
type Effect int

const (
	EffectHit Effect = iota
	EffectMiss
	EffectCrit
	EffectDeath
	EffectStep
	effectCount
)

// Player owns the speaker and the pre-rendered effect buffers.
type Player struct {
	enabled bool
	buffers [effectCount][]float64
}

// NewPlayer synthesizes every effect and opens the speaker. A host without
// an audio device is not an error; the player just stays silent.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{}
	p.buffers[EffectHit] = squareWave(220, 90*time.Millisecond, 0.35)
	p.buffers[EffectMiss] = squareWave(160, 60*time.Millisecond, 0.2)
	p.buffers[EffectCrit] = appendBuf(
		squareWave(220, 70*time.Millisecond, 0.4),
		squareWave(330, 110*time.Millisecond, 0.4),
	)
	p.buffers[EffectDeath] = noiseBurst(260*time.Millisecond, 0.3)
	p.buffers[EffectStep] = squareWave(90, 25*time.Millisecond, 0.12)

	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return p, fmt.Errorf("speaker init failed: %w", err)
	}
	p.enabled = true
	return p, nil
}

// Play starts an effect. Silent when the speaker is unavailable.
func (p *Player) Play(e Effect) {
	if !p.enabled || e < 0 || e >= effectCount {
		return
	}
	speaker.Play(&bufferStreamer{buf: p.buffers[e]})
}

// bufferStreamer streams a pre-rendered mono buffer to both channels.
type bufferStreamer struct {
	buf []float64
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }

// squareWave renders a square tone with a linear fade-out so blips do not
// click.
func squareWave(freq float64, d time.Duration, gain float64) []float64 {
	n := sampleRate.N(d)
	buf := make([]float64, n)
	period := float64(sampleRate) / freq
	for i := range buf {
		v := gain
		if math.Mod(float64(i), period) > period/2 {
			v = -gain
		}
		fade := 1 - float64(i)/float64(n)
		buf[i] = v * fade
	}
	return buf
}

// noiseBurst renders fading white noise.
func noiseBurst(d time.Duration, gain float64) []float64 {
	rng := rand.New(rand.NewSource(1))
	n := sampleRate.N(d)
	buf := make([]float64, n)
	for i := range buf {
		fade := 1 - float64(i)/float64(n)
		buf[i] = (rng.Float64()*2 - 1) * gain * fade
	}
	return buf
}

func appendBuf(a, b []float64) []float64 {
	return append(a, b...)
}
