package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "dash.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)

	attempts := []Attempt{
		{LevelID: "first-steps", Outcome: "dead", Percent: 12.5, Jumps: 3, Ticks: 120},
		{LevelID: "first-steps", Outcome: "dead", Percent: 48.0, Jumps: 9, Ticks: 400},
		{LevelID: "first-steps", Outcome: "win", Percent: 100, Jumps: 21, Ticks: 900},
		{LevelID: "orb-garden", Outcome: "dead", Percent: 5.0, Jumps: 1, Ticks: 50},
	}
	for _, a := range attempts {
		if _, err := s.SaveAttempt(a); err != nil {
			t.Fatalf("SaveAttempt: %v", err)
		}
	}

	best, err := s.BestAttempts("first-steps", 2)
	if err != nil {
		t.Fatalf("BestAttempts: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("got %d attempts, expected 2", len(best))
	}
	if best[0].Percent != 100 || best[1].Percent != 48.0 {
		t.Errorf("best order: %f, %f", best[0].Percent, best[1].Percent)
	}

	pct, err := s.BestPercent("first-steps")
	if err != nil {
		t.Fatalf("BestPercent: %v", err)
	}
	if pct != 100 {
		t.Errorf("best percent = %f, expected 100", pct)
	}

	pct, err = s.BestPercent("never-played")
	if err != nil {
		t.Fatalf("BestPercent on empty level: %v", err)
	}
	if pct != 0 {
		t.Errorf("best percent for unplayed level = %f, expected 0", pct)
	}
}

func TestRecentAttemptsSpanLevels(t *testing.T) {
	s := openTestStore(t)

	for _, lvl := range []string{"a", "b", "c"} {
		if _, err := s.SaveAttempt(Attempt{LevelID: lvl, Outcome: "dead", Percent: 10}); err != nil {
			t.Fatalf("SaveAttempt: %v", err)
		}
	}

	recent, err := s.RecentAttempts(10)
	if err != nil {
		t.Fatalf("RecentAttempts: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d attempts, expected 3", len(recent))
	}
	if recent[0].LevelID != "c" {
		t.Errorf("most recent = %q, expected c", recent[0].LevelID)
	}
}

func TestStatsAggregation(t *testing.T) {
	s := openTestStore(t)

	seed := []Attempt{
		{LevelID: "lvl", Outcome: "dead", Percent: 30, Jumps: 5},
		{LevelID: "lvl", Outcome: "win", Percent: 100, Jumps: 12},
		{LevelID: "lvl", Outcome: "dead", Percent: 70, Jumps: 8},
	}
	for _, a := range seed {
		if _, err := s.SaveAttempt(a); err != nil {
			t.Fatalf("SaveAttempt: %v", err)
		}
	}

	stats, err := s.Stats("lvl")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Attempts != 3 || stats.Wins != 1 {
		t.Errorf("attempts/wins = %d/%d, expected 3/1", stats.Attempts, stats.Wins)
	}
	if stats.BestPercent != 100 {
		t.Errorf("best percent = %f, expected 100", stats.BestPercent)
	}
	if stats.TotalJumps != 25 {
		t.Errorf("total jumps = %d, expected 25", stats.TotalJumps)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}

	all, err := s.AllStats()
	if err != nil {
		t.Fatalf("AllStats: %v", err)
	}
	if len(all) != 1 || all["lvl"] == nil {
		t.Errorf("all stats = %v", all)
	}
}

func TestStatsForUnplayedLevel(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Stats("ghost")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Attempts != 0 || stats.BestPercent != 0 {
		t.Errorf("unplayed stats = %+v", stats)
	}
}

func TestClearAttempts(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.SaveAttempt(Attempt{LevelID: "lvl", Outcome: "dead", Percent: 50}); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}
	if err := s.ClearAttempts("lvl"); err != nil {
		t.Fatalf("ClearAttempts: %v", err)
	}

	pct, err := s.BestPercent("lvl")
	if err != nil {
		t.Fatalf("BestPercent: %v", err)
	}
	if pct != 0 {
		t.Errorf("best percent after clear = %f, expected 0", pct)
	}
}
