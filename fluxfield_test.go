package fluxfov

import (
	"math"
	"testing"
)

func TestLUTDeterministic(t *testing.T) {
	a := New(6)
	b := New(6)
	if len(a.lut) != len(b.lut) {
		t.Fatalf("LUT sizes differ: %d vs %d", len(a.lut), len(b.lut))
	}
	for i := range a.lut {
		if a.lut[i] != b.lut[i] {
			t.Errorf("LUT entry %d differs: %v vs %v", i, a.lut[i], b.lut[i])
		}
	}
}

func TestLUTSizeAndRange(t *testing.T) {
	for radius := 1; radius <= 8; radius++ {
		field := New(radius)
		if want := (radius - 1) * radius / 2; len(field.lut) != want {
			t.Errorf("radius %d: LUT has %d entries, want %d", radius, len(field.lut), want)
		}
		for i, w := range field.lut {
			if !(w >= 0 && w <= 1) {
				t.Errorf("radius %d: LUT entry %d = %v out of [0, 1]", radius, i, w)
			}
		}
	}
}

func TestNewZeroRadiusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero radius")
		}
	}()
	New(0)
}

// A single flux field backs any field of vision with an equal or smaller
// radius.
func TestSharedFluxField(t *testing.T) {
	field := New(5)
	for _, radius := range []int{3, 5} {
		fov := coordinateField(field, radius)
		if got := fov.At(-radius, radius); got.x != -radius || got.y != radius {
			t.Errorf("radius %d: corner cell = (%d, %d)", radius, got.x, got.y)
		}
	}
}

func TestPackedRoundTrip(t *testing.T) {
	field := New(5)
	packed := field.Packed()
	back, err := Unpack(5, packed)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if back.Radius() != 5 {
		t.Errorf("unpacked radius = %d, want 5", back.Radius())
	}
	for i := range field.lut {
		diff := math.Abs(float64(field.lut[i] - back.lut[i]))
		if diff > 1.0/2048 {
			t.Errorf("entry %d drifted by %v: %v vs %v", i, diff, field.lut[i], back.lut[i])
		}
		if !(back.lut[i] >= 0 && back.lut[i] <= 1) {
			t.Errorf("unpacked entry %d = %v out of [0, 1]", i, back.lut[i])
		}
	}
}

func TestUnpackRejectsBadInput(t *testing.T) {
	field := New(4)
	packed := field.Packed()
	if _, err := Unpack(4, packed[:len(packed)-1]); err == nil {
		t.Error("expected error for truncated LUT")
	}
	if _, err := Unpack(3, packed); err == nil {
		t.Error("expected error for mismatched radius")
	}
	if _, err := Unpack(0, nil); err == nil {
		t.Error("expected error for zero radius")
	}
}
