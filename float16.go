package fluxfov

import (
	"fmt"
	"math"
)

// The flux LUT grows quadratically with the radius, and the weights carry at
// most three meaningful decimals, so IEEE 754-2008 binary16 is plenty for
// shipping a pre-computed field between processes without redoing the ray
// march.

// Packed returns the flux LUT encoded as binary16 values in LUT order.
func (f *FluxField) Packed() []uint16 {
	packed := make([]uint16, len(f.lut))
	for i, w := range f.lut {
		packed[i] = float16Bits(w)
	}
	return packed
}

// Unpack reconstructs a flux field of the given radius from a packed LUT
// produced by Packed. The packed weights are quantized to half precision,
// which keeps them within 2^-11 of the originals.
func Unpack(radius int, packed []uint16) (*FluxField, error) {
	if radius < 1 {
		return nil, fmt.Errorf("fluxfov: unpacking radius %d field", radius)
	}
	if want := lutSize(radius); len(packed) != want {
		return nil, fmt.Errorf("fluxfov: packed LUT has %d entries, want %d for radius %d",
			len(packed), want, radius)
	}
	lut := make([]float32, len(packed))
	for i, h := range packed {
		lut[i] = float16Val(h)
	}
	return &FluxField{radius: radius, lut: lut}, nil
}

// float16Bits converts f to its binary16 representation, rounding to
// nearest.
func float16Bits(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int(b>>23) & 0xff
	mant := b & 0x7fffff

	if exp == 0xff {
		if mant == 0 {
			return sign | 0x7c00
		}
		m := uint16(mant >> 13)
		if m == 0 {
			// Keep NaN from collapsing into an infinity.
			m = 1
		}
		return sign | 0x7c00 | m
	}
	if exp == 0 && mant == 0 {
		return sign
	}

	e := exp - 127 + 15
	switch {
	case e >= 0x1f:
		return sign | 0x7c00
	case e <= 0:
		if e < -10 {
			return sign
		}
		mant |= 0x800000
		mant >>= uint(1 - e)
		mant += 0x1000
		return sign | uint16(mant>>13)
	}

	mant += 0x1000
	if mant&0x800000 != 0 {
		// Rounding carried into the exponent.
		mant = 0
		e++
		if e >= 0x1f {
			return sign | 0x7c00
		}
	}
	return sign | uint16(e)<<10 | uint16(mant>>13)
}

// float16Val expands a binary16 value back into a float32.
func float16Val(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := int(h>>10) & 0x1f
	mant := uint32(h & 0x3ff)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		e := -14
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3ff
		return math.Float32frombits(sign | uint32(e+127)<<23 | mant<<13)
	case 0x1f:
		b := sign | 0x7f800000 | mant<<13
		if mant != 0 {
			b |= 1
		}
		return math.Float32frombits(b)
	default:
		return math.Float32frombits(sign | uint32(exp-15+127)<<23 | mant<<13)
	}
}
