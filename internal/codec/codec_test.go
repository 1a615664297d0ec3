package codec

import (
	"math"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		converter string
		width     int
		wantErr   bool
	}{
		{
			name:      "two bytes",
			converter: "TwoBytes",
			width:     2,
		},
		{
			name:      "four bytes",
			converter: "FourBytes",
			width:     4,
		},
		{
			name:      "unknown name",
			converter: "ThreeBytes",
			wantErr:   true,
		},
		{
			name:      "empty name",
			converter: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.converter)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "["+tt.converter+"]") {
					t.Errorf("error %q does not name the offending value %q", err, tt.converter)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Width() != tt.width {
				t.Errorf("expected width %d, got %d", tt.width, c.Width())
			}
		})
	}
}

func TestRoundTripBound(t *testing.T) {
	inputs := []float64{-1, -0.5, -0.001, 0, 0.001, 0.25, 0.5, 0.99, 1}

	tests := []struct {
		name  string
		codec Codec
		// quantization bound 1/(2^(8w-1)-1)
		tol float64
	}{
		{name: "PCM16", codec: PCM16{}, tol: 1.0 / 32767},
		{name: "PCM32", codec: PCM32{}, tol: 1.0 / 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.codec.BytesToFloats(tt.codec.FloatsToBytes(inputs))
			if len(out) != len(inputs) {
				t.Fatalf("expected %d samples, got %d", len(inputs), len(out))
			}
			for i, x := range inputs {
				if math.Abs(out[i]-x) > tt.tol {
					t.Errorf("sample %v: round trip %v exceeds bound %v", x, out[i], tt.tol)
				}
			}
		})
	}
}

// The encode scale is 2^(8w-1)-1 while the decode divisor is 2^(8w-1); the
// off-by-one is intentional and full scale must come back one LSB short.
func TestScaleAsymmetry(t *testing.T) {
	out := PCM16{}.BytesToFloats(PCM16{}.FloatsToBytes([]float64{1.0}))
	if got, want := out[0], 32767.0/32768.0; got != want {
		t.Errorf("expected full scale to decode to %v, got %v", want, got)
	}

	out = PCM32{}.BytesToFloats(PCM32{}.FloatsToBytes([]float64{1.0}))
	if got, want := out[0], 2147483647.0/2147483648.0; got != want {
		t.Errorf("expected full scale to decode to %v, got %v", want, got)
	}
}

func TestFullScaleDoesNotOverflow(t *testing.T) {
	// Encoding exactly 1.0 must stay inside the signed range for both
	// widths rather than wrapping negative.
	b := PCM16{}.FloatsToBytes([]float64{1.0})
	if got := (PCM16{}).BytesToFloats(b)[0]; got <= 0 {
		t.Errorf("PCM16 full scale wrapped to %v", got)
	}

	b = PCM32{}.FloatsToBytes([]float64{1.0})
	if got := (PCM32{}).BytesToFloats(b)[0]; got <= 0 {
		t.Errorf("PCM32 full scale wrapped to %v", got)
	}
}

func TestNegativeFullScale(t *testing.T) {
	out := PCM16{}.BytesToFloats(PCM16{}.FloatsToBytes([]float64{-1.0}))
	if got, want := out[0], -32767.0/32768.0; got != want {
		t.Errorf("expected -1 to decode to %v, got %v", want, got)
	}
}

func TestBufferSizes(t *testing.T) {
	data := []float64{0.1, 0.2, 0.3}

	if got := len(PCM16{}.FloatsToBytes(data)); got != 6 {
		t.Errorf("PCM16: expected 6 bytes, got %d", got)
	}
	if got := len(PCM32{}.FloatsToBytes(data)); got != 12 {
		t.Errorf("PCM32: expected 12 bytes, got %d", got)
	}
}
