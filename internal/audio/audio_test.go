package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareWaveShape(t *testing.T) {
	buf := squareWave(220, 100*time.Millisecond, 0.35)
	require.Len(t, buf, sampleRate.N(100*time.Millisecond))

	assert.InDelta(t, 0.35, buf[0], 1e-9, "starts at full gain")
	assert.InDelta(t, 0, buf[len(buf)-1], 0.001, "fades out to avoid clicks")
	for i, v := range buf {
		assert.LessOrEqual(t, math.Abs(v), 0.35, "sample %d exceeds gain", i)
	}
}

func TestNoiseBurstFadesAndStaysBounded(t *testing.T) {
	buf := noiseBurst(50*time.Millisecond, 0.3)
	require.NotEmpty(t, buf)

	assert.InDelta(t, 0, buf[len(buf)-1], 0.001)
	for i, v := range buf {
		assert.LessOrEqual(t, math.Abs(v), 0.3, "sample %d exceeds gain", i)
	}
}

func TestNewPlayerDisabledSkipsSpeaker(t *testing.T) {
	p, err := NewPlayer(false)
	require.NoError(t, err)

	for e := Effect(0); e < effectCount; e++ {
		assert.NotEmpty(t, p.buffers[e], "effect %d has no buffer", e)
	}
	// Must be a no-op, not a crash, with the speaker closed.
	p.Play(EffectHit)
	p.Play(Effect(99))
}

func TestBufferStreamerDrains(t *testing.T) {
	s := &bufferStreamer{buf: []float64{0.1, 0.2, 0.3}}
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, [2]float64{0.1, 0.1}, out[0])
	assert.Equal(t, [2]float64{0.2, 0.2}, out[1])

	n, ok = s.Stream(out)
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, [2]float64{0.3, 0.3}, out[0])

	n, ok = s.Stream(out)
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.NoError(t, s.Err())
}
