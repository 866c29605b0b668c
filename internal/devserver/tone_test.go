package devserver

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSineTone(t *testing.T) {
	samples := sineTone(440, time.Second)
	require.Len(t, samples, toneSampleRate)

	// Ramped ends, so no click.
	assert.Equal(t, int16(0), samples[0])
	assert.Equal(t, int16(0), samples[len(samples)-1])

	// The signal stays within the amplitude and actually swings.
	const amplitude = 0.4 * math.MaxInt16
	var peak int16
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	assert.LessOrEqual(t, float64(peak), amplitude)
	assert.Greater(t, float64(peak), amplitude/2)
}

func TestWavBytes(t *testing.T) {
	samples := sineTone(toneFrequency, time.Second)
	wav := wavBytes(samples)
	require.Len(t, wav, 44+2*len(samples))

	// Canonical RIFF/WAVE header markers.
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, "data", string(wav[36:40]))

	dataLen := uint32(2 * len(samples))
	assert.Equal(t, uint32(36)+dataLen, binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]), "PCM format tag")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]), "mono")
	assert.Equal(t, uint32(toneSampleRate), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, dataLen, binary.LittleEndian.Uint32(wav[40:44]))
}

func TestWavBytesEmpty(t *testing.T) {
	wav := wavBytes(nil)
	require.Len(t, wav, 44)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestSampleWAV(t *testing.T) {
	wav := sampleWAV()
	wantSamples := int(toneDuration.Seconds() * toneSampleRate)
	assert.Len(t, wav, 44+2*wantSamples)
	assert.Equal(t, "RIFF", string(wav[0:4]))
}
