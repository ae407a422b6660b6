package fluxfov

import (
	"math"
	"testing"
)

func TestFloat16KnownValues(t *testing.T) {
	cases := []struct {
		in   float32
		bits uint16
	}{
		{0, 0x0000},
		{1, 0x3c00},
		{0.5, 0x3800},
		{-1, 0xbc00},
		{float32(math.Inf(1)), 0x7c00},
	}
	for _, c := range cases {
		if got := float16Bits(c.in); got != c.bits {
			t.Errorf("float16Bits(%v) = %#04x, want %#04x", c.in, got, c.bits)
		}
		if back := float16Val(c.bits); back != c.in {
			t.Errorf("float16Val(%#04x) = %v, want %v", c.bits, back, c.in)
		}
	}
}

func TestFloat16RoundTripPrecision(t *testing.T) {
	// Worst-case relative quantization for normal binary16 values is 2^-11.
	for _, v := range []float32{0.001, 0.124, 0.25, 0.3331, 0.5003, 0.75, 0.9997} {
		back := float16Val(float16Bits(v))
		if diff := math.Abs(float64(back - v)); diff > float64(v)/2048+1e-7 {
			t.Errorf("round trip of %v drifted by %v", v, diff)
		}
	}
}

func TestFloat16NaN(t *testing.T) {
	bits := float16Bits(float32(math.NaN()))
	if bits&0x7c00 != 0x7c00 || bits&0x03ff == 0 {
		t.Fatalf("NaN encoded as %#04x", bits)
	}
	if back := float16Val(bits); !math.IsNaN(float64(back)) {
		t.Errorf("NaN decoded as %v", back)
	}
}
