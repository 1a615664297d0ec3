// Package audio implements the WAV collaborators of the sound search: a
// minimal PCM container reader/writer and candidate playback. All sample
// conversion goes through the fixed-point codec; the container layer only
// moves raw byte buffers.
package audio

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/sgklab/evoso/internal/codec"
	"github.com/sgklab/evoso/internal/errors"
	"github.com/sgklab/evoso/internal/optimization"
)

// Format describes the PCM layout of a WAV file's data chunk.
type Format struct {
	Channels    int
	SampleWidth int // bytes per sample
	SampleRate  int
	NumFrames   int
}

// ReadWave reads a PCM WAV file and returns its format plus the raw data
// chunk bytes. Missing files and malformed containers are reported as
// structured errors and left for the caller to handle.
func ReadWave(path string) (Format, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return Format{}, nil, errors.Wrap(err, "opening wave file").
			WithComponent("audio").
			WithOperation("ReadWave")
	}
	defer f.Close()

	var riff [12]byte
	if _, err := io.ReadFull(f, riff[:]); err != nil {
		return Format{}, nil, malformed(path, "short RIFF header")
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return Format{}, nil, malformed(path, "not a RIFF/WAVE file")
	}

	var (
		format     Format
		data       []byte
		haveFormat bool
	)
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(f, hdr[:]); err == io.EOF {
			break
		} else if err != nil {
			return Format{}, nil, malformed(path, "truncated chunk header")
		}
		id := string(hdr[0:4])
		size := int(binary.LittleEndian.Uint32(hdr[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return Format{}, nil, malformed(path, "short fmt chunk")
			}
			buf := make([]byte, size)
			if _, err := io.ReadFull(f, buf); err != nil {
				return Format{}, nil, malformed(path, "truncated fmt chunk")
			}
			format.Channels = int(binary.LittleEndian.Uint16(buf[2:4]))
			format.SampleRate = int(binary.LittleEndian.Uint32(buf[4:8]))
			format.SampleWidth = int(binary.LittleEndian.Uint16(buf[14:16])) / 8
			haveFormat = true
		case "data":
			data = make([]byte, size)
			if _, err := io.ReadFull(f, data); err != nil {
				return Format{}, nil, malformed(path, "truncated data chunk")
			}
		default:
			// Chunks are word-aligned; skip the pad byte on odd sizes.
			if size%2 == 1 {
				size++
			}
			if _, err := f.Seek(int64(size), io.SeekCurrent); err != nil {
				return Format{}, nil, malformed(path, "unseekable chunk")
			}
		}
		if haveFormat && data != nil {
			break
		}
	}

	if !haveFormat {
		return Format{}, nil, malformed(path, "missing fmt chunk")
	}
	if data == nil {
		return Format{}, nil, malformed(path, "missing data chunk")
	}

	blockAlign := format.Channels * format.SampleWidth
	if blockAlign > 0 {
		format.NumFrames = len(data) / blockAlign
	}
	return format, data, nil
}

// ReadFrames exposes ReadWave under the sound problem's source-reader
// contract: frame count plus raw PCM bytes.
func ReadFrames(path string) (int, []byte, error) {
	format, data, err := ReadWave(path)
	if err != nil {
		return 0, nil, err
	}
	return format.NumFrames, data, nil
}

func malformed(path, reason string) error {
	return errors.Errorf("malformed wave file %s: %s", path, reason).
		WithComponent("audio").
		WithOperation("ReadWave")
}

// Wave persists solutions as playable PCM WAV files.
type Wave struct {
	channels    int
	sampleWidth int
	frameRate   int
	enc         codec.Codec
}

var _ optimization.SolutionWriter = (*Wave)(nil)

// NewWave creates a WAV writer. sampleWidth is bytes per sample and should
// match the codec's width.
func NewWave(channels, sampleWidth, frameRate int, enc codec.Codec) *Wave {
	return &Wave{
		channels:    channels,
		sampleWidth: sampleWidth,
		frameRate:   frameRate,
		enc:         enc,
	}
}

// SaveSolution serializes the solution's vector through the codec and
// writes it as a WAV file at path, overwriting any existing file.
func (w *Wave) SaveSolution(sol optimization.Solution, path string) error {
	data := w.enc.FloatsToBytes(sol.Variables)

	blockAlign := w.channels * w.sampleWidth
	byteRate := w.frameRate * blockAlign

	var hdr [44]byte
	copy(hdr[0:4], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(36+len(data)))
	copy(hdr[8:12], "WAVE")
	copy(hdr[12:16], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:20], 16)
	binary.LittleEndian.PutUint16(hdr[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(hdr[22:24], uint16(w.channels))
	binary.LittleEndian.PutUint32(hdr[24:28], uint32(w.frameRate))
	binary.LittleEndian.PutUint32(hdr[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(hdr[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(hdr[34:36], uint16(w.sampleWidth*8))
	copy(hdr[36:40], "data")
	binary.LittleEndian.PutUint32(hdr[40:44], uint32(len(data)))

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating wave file").
			WithComponent("audio").
			WithOperation("SaveSolution")
	}
	defer f.Close()

	if _, err := f.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "writing wave header").
			WithComponent("audio").
			WithOperation("SaveSolution")
	}
	if _, err := f.Write(data); err != nil {
		return errors.Wrap(err, "writing wave data").
			WithComponent("audio").
			WithOperation("SaveSolution")
	}
	return nil
}
