package core

import "testing"

func TestSimpleRNGDeterminism(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	if r.State() == 0 {
		t.Error("zero seed should be replaced with a non-zero state")
	}
}

func TestSimpleRNGBounds(t *testing.T) {
	r := NewSimpleRNG(7)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected all 5 values over 2000 draws, saw %v", seen)
	}

	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn of a non-positive bound should be 0")
	}
}

func TestRange(t *testing.T) {
	r := NewSimpleRNG(99)
	for i := 0; i < 1000; i++ {
		v := Range(r, -75, -30)
		if v < -75 || v >= -30 {
			t.Fatalf("Range(-75, -30) = %d out of range", v)
		}
	}

	if v := Range(r, 5, 5); v != 5 {
		t.Errorf("empty range should return lo, got %d", v)
	}
}
