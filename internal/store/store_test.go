package store

import (
	"path/filepath"
	"testing"

	"arena_ai/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult(id, winner string, seed int64) sim.Result {
	res := sim.Result{
		ID: id, Seed: seed, Field: "Water", Winner: winner,
		Turns: 42, Duration: 160.3,
	}
	res.Sides[0] = sim.SideResult{Name: "Ash", Caught: 3, FuelEnd: 0, HPEnd: 120, Alive: 2}
	res.Sides[1] = sim.SideResult{Name: "Team Rocket", Caught: 2, FuelEnd: 15, HPEnd: 0, Alive: 0}
	return res
}

func TestSaveAndCount(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save(testResult("m1", "Ash", 1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(testResult("m2", "Team Rocket", 2)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}

func TestSaveRejectsDuplicateID(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save(testResult("m1", "Ash", 1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(testResult("m1", "Ash", 1)); err == nil {
		t.Fatal("duplicate id accepted")
	}
}

func TestSummary(t *testing.T) {
	s := openTestStore(t)
	for i, winner := range []string{"Ash", "Ash", "Team Rocket", "Draw"} {
		res := testResult("m"+string(rune('a'+i)), winner, int64(i))
		if err := s.Save(res); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	sum, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := map[string]int{"Ash": 2, "Team Rocket": 1, "Draw": 1}
	for winner, n := range want {
		if sum[winner] != n {
			t.Fatalf("summary[%s] = %d, want %d (full: %v)", winner, sum[winner], n, sum)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(testResult("m1", "Ash", 1)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	n, err := s2.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count after reopen = %d, want 1", n)
	}
}
