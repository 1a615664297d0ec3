package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgklab/evoso/internal/codec"
	"github.com/sgklab/evoso/internal/optimization"
)

func TestWaveSaveAndRead(t *testing.T) {
	pcm := codec.PCM16{}
	w := NewWave(1, pcm.Width(), 44100, pcm)
	sol := optimization.Unevaluated([]float64{0.25, -0.5, 0.75, 0})
	path := filepath.Join(t.TempDir(), "sol.wav")

	require.NoError(t, w.SaveSolution(sol, path))

	format, data, err := ReadWave(path)
	require.NoError(t, err)
	assert.Equal(t, 1, format.Channels)
	assert.Equal(t, 2, format.SampleWidth)
	assert.Equal(t, 44100, format.SampleRate)
	assert.Equal(t, 4, format.NumFrames)
	assert.Equal(t, pcm.FloatsToBytes(sol.Variables), data)

	frames, raw, err := ReadFrames(path)
	require.NoError(t, err)
	assert.Equal(t, 4, frames)
	assert.Equal(t, data, raw)
}

func TestWaveSaveOverwrites(t *testing.T) {
	pcm := codec.PCM16{}
	w := NewWave(1, pcm.Width(), 8000, pcm)
	path := filepath.Join(t.TempDir(), "sol.wav")

	require.NoError(t, w.SaveSolution(optimization.Unevaluated([]float64{0.1, 0.2, 0.3}), path))
	require.NoError(t, w.SaveSolution(optimization.Unevaluated([]float64{0.9}), path))

	format, data, err := ReadWave(path)
	require.NoError(t, err)
	assert.Equal(t, 1, format.NumFrames)
	assert.Equal(t, pcm.FloatsToBytes([]float64{0.9}), data)
}

func TestWaveFourByteSamples(t *testing.T) {
	pcm := codec.PCM32{}
	w := NewWave(2, pcm.Width(), 48000, pcm)
	sol := optimization.Unevaluated([]float64{0.5, -0.5, 0.25, -0.25})
	path := filepath.Join(t.TempDir(), "sol.wav")

	require.NoError(t, w.SaveSolution(sol, path))

	format, data, err := ReadWave(path)
	require.NoError(t, err)
	assert.Equal(t, 2, format.Channels)
	assert.Equal(t, 4, format.SampleWidth)
	// 4 samples over 2 channels = 2 frames.
	assert.Equal(t, 2, format.NumFrames)
	assert.Equal(t, pcm.FloatsToBytes(sol.Variables), data)
}

func TestReadWaveMissingFile(t *testing.T) {
	_, _, err := ReadWave(filepath.Join(t.TempDir(), "absent.wav"))
	assert.Error(t, err)
}

func TestReadWaveMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "empty", content: nil},
		{name: "garbage", content: []byte("this is not a wave file at all")},
		{name: "riff only", content: []byte("RIFF\x00\x00\x00\x00WAVE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.wav")
			require.NoError(t, os.WriteFile(path, tt.content, 0o644))

			_, _, err := ReadWave(path)
			assert.Error(t, err)
		})
	}
}

// The codec owns all sample conversion; a save/read/decode cycle must agree
// with the codec's own round trip, quantization asymmetry included.
func TestWaveRoundTripThroughCodec(t *testing.T) {
	pcm := codec.PCM16{}
	w := NewWave(1, pcm.Width(), 44100, pcm)
	in := []float64{1.0, -1.0, 0.123, -0.456}
	path := filepath.Join(t.TempDir(), "rt.wav")

	require.NoError(t, w.SaveSolution(optimization.Unevaluated(in), path))
	_, data, err := ReadWave(path)
	require.NoError(t, err)

	assert.Equal(t, pcm.BytesToFloats(pcm.FloatsToBytes(in)), pcm.BytesToFloats(data))
}
