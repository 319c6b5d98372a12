package util

import "testing"

func TestNewZeroSeedIsUsable(t *testing.T) {
	a, b := New(0), New(0)
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("zero seed not deterministic")
		}
	}
}

func TestJitterBounds(t *testing.T) {
	rng := New(1)
	for i := 0; i < 1000; i++ {
		v := Jitter(rng, 0.8, 1.2)
		if v < 0.8 || v >= 1.2 {
			t.Fatalf("jitter %f outside [0.8, 1.2)", v)
		}
	}
	if v := Jitter(rng, 1.0, 1.0); v != 1.0 {
		t.Fatalf("degenerate range = %f, want 1.0", v)
	}
}

func TestPick(t *testing.T) {
	rng := New(2)
	if Pick(rng, 0) != 0 || Pick(rng, 1) != 0 {
		t.Fatal("small n should always pick 0")
	}
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		idx := Pick(rng, 3)
		if idx < 0 || idx > 2 {
			t.Fatalf("pick %d out of range", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 3 {
		t.Fatalf("picks not spread across indices: %v", seen)
	}
}
