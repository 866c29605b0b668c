package devserver

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// The demo page lists /media/sample.wav as its last source. When the media
// directory doesn't provide that file, the server answers with a tone
// generated here, so the demo plays without shipping any audio binaries.
const (
	toneSampleRate = 22050 // Hz, mono.
	toneBitDepth   = 16
	toneFrequency  = 440.0 // Hz, the tuning A.
	toneDuration   = 3 * time.Second
)

// sineTone synthesizes a mono sine wave as 16-bit PCM samples. A short
// linear ramp at both ends keeps playback from clicking on start and stop.
func sineTone(freqHz float64, duration time.Duration) []int16 {
	numSamples := int(duration.Seconds() * toneSampleRate)
	samples := make([]int16, numSamples)
	const amplitude = 0.4 * math.MaxInt16
	ramp := toneSampleRate / 100 // 10ms.
	for ii := 0; ii < numSamples; ii++ {
		v := amplitude * math.Sin(2*math.Pi*freqHz*float64(ii)/toneSampleRate)
		if ii < ramp {
			v *= float64(ii) / float64(ramp)
		}
		if tail := numSamples - 1 - ii; tail < ramp {
			v *= float64(tail) / float64(ramp)
		}
		samples[ii] = int16(v)
	}
	return samples
}

// wavBytes wraps PCM samples in the canonical 44-byte RIFF/WAVE header.
func wavBytes(samples []int16) []byte {
	dataLen := uint32(len(samples) * toneBitDepth / 8)
	var buf bytes.Buffer
	buf.Grow(44 + int(dataLen))
	le := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	le(uint32(36) + dataLen)
	buf.WriteString("WAVE")

	const byteRate = toneSampleRate * toneBitDepth / 8
	buf.WriteString("fmt ")
	le(uint32(16))               // Format chunk size.
	le(uint16(1))                // PCM, uncompressed.
	le(uint16(1))                // Mono.
	le(uint32(toneSampleRate))   // Sample rate.
	le(uint32(byteRate))         // Byte rate.
	le(uint16(toneBitDepth / 8)) // Block align.
	le(uint16(toneBitDepth))     // Bits per sample.

	buf.WriteString("data")
	le(dataLen)
	le(samples)
	return buf.Bytes()
}

// sampleWAV builds the complete fallback WAV file.
func sampleWAV() []byte {
	return wavBytes(sineTone(toneFrequency, toneDuration))
}
