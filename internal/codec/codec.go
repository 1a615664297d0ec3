// Package codec converts between normalized float sample vectors and
// fixed-point PCM byte buffers.
//
// Encoding scales by 2^(8w-1)-1 while decoding divides by 2^(8w-1), where w
// is the byte width. The two constants differ by exactly one: the transform
// is deliberately not round-trip exact near full scale, and downstream
// behavior depends on keeping it that way.
package codec

import (
	"encoding/binary"

	"github.com/sgklab/evoso/internal/errors"
)

// Converter names accepted by New.
const (
	TwoBytes  = "TwoBytes"
	FourBytes = "FourBytes"
)

// Codec converts between normalized floats and fixed-width signed PCM.
type Codec interface {
	// FloatsToBytes encodes normalized samples into little-endian
	// fixed-point PCM.
	FloatsToBytes(data []float64) []byte

	// BytesToFloats decodes little-endian fixed-point PCM into
	// normalized samples in (-1, 1].
	BytesToFloats(frames []byte) []float64

	// Width returns the sample width in bytes.
	Width() int
}

// New returns the codec registered under name. Valid names are "TwoBytes"
// and "FourBytes"; anything else is an invalid-argument error naming the
// offending value.
func New(name string) (Codec, error) {
	switch name {
	case TwoBytes:
		return PCM16{}, nil
	case FourBytes:
		return PCM32{}, nil
	default:
		return nil, errors.Errorf("unknown converter name [%s]", name).
			WithComponent("codec").
			WithOperation("New")
	}
}

// PCM16 is the 2-byte (16-bit) sample codec.
type PCM16 struct{}

// Width returns 2.
func (PCM16) Width() int { return 2 }

// FloatsToBytes encodes samples as int16 scaled by 2^15-1, truncating
// toward zero.
func (PCM16) FloatsToBytes(data []float64) []byte {
	buf := make([]byte, 2*len(data))
	for i, f := range data {
		v := int16(f * 32767)
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}
	return buf
}

// BytesToFloats decodes int16 samples, dividing by 2^15.
func (PCM16) BytesToFloats(frames []byte) []float64 {
	n := len(frames) / 2
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		v := int16(binary.LittleEndian.Uint16(frames[2*i:]))
		data[i] = float64(v) / 32768
	}
	return data
}

// PCM32 is the 4-byte (32-bit) sample codec.
type PCM32 struct{}

// Width returns 4.
func (PCM32) Width() int { return 4 }

// FloatsToBytes encodes samples as int32 scaled by 2^31-1, truncating
// toward zero.
func (PCM32) FloatsToBytes(data []float64) []byte {
	buf := make([]byte, 4*len(data))
	for i, f := range data {
		v := int32(f * 2147483647)
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	return buf
}

// BytesToFloats decodes int32 samples, dividing by 2^31.
func (PCM32) BytesToFloats(frames []byte) []float64 {
	n := len(frames) / 4
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		v := int32(binary.LittleEndian.Uint32(frames[4*i:]))
		data[i] = float64(v) / 2147483648
	}
	return data
}
