package gen

import (
	"testing"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/level"
)

func testDiff() *config.DifficultyManager {
	return config.NewDifficultyManager(config.DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  config.ProgressionConfig{Type: "distance", MaxAt: 600},
		Scaling:      config.ScalingConfig{HazardBias: 0.25, SpacingReduction: 2},
	})
}

func TestGeneratorIsDeterministic(t *testing.T) {
	emit := func() []level.Object {
		g := New(42, testDiff())
		var all []level.Object
		for i := 0; i < 50; i++ {
			objs, _ := g.NextSegment()
			all = append(all, objs...)
		}
		return all
	}

	a, b := emit(), emit()
	if len(a) != len(b) {
		t.Fatalf("object counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("object %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGeneratedSegmentsAreValidPlacements(t *testing.T) {
	g := New(7, testDiff())
	lvl := StartLevel()

	for i := 0; i < 100; i++ {
		objs, consumed := g.NextSegment()
		if consumed <= 0 {
			t.Fatal("segment consumed no tiles")
		}
		lvl.Objects = append(lvl.Objects, objs...)
		lvl.Length = g.NextCol()
	}

	if err := level.Validate(lvl); err != nil {
		t.Errorf("generated level invalid: %v", err)
	}
}

func TestSegmentsAdvanceMonotonically(t *testing.T) {
	g := New(1, testDiff())
	prev := g.NextCol()
	for i := 0; i < 50; i++ {
		objs, _ := g.NextSegment()
		for _, o := range objs {
			if o.X < prev {
				t.Fatalf("object at column %d behind segment start %d", o.X, prev)
			}
		}
		if g.NextCol() <= prev {
			t.Fatalf("cursor did not advance: %d -> %d", prev, g.NextCol())
		}
		prev = g.NextCol()
	}
}

func TestDifficultyTightensSpacing(t *testing.T) {
	g := New(3, testDiff())

	// Run the cursor far past the difficulty ramp.
	for i := 0; i < 200; i++ {
		g.NextSegment()
	}

	if g.diff.SpacingReduction() != 2 {
		t.Errorf("spacing reduction at max difficulty = %d, expected 2", g.diff.SpacingReduction())
	}
	if g.diff.HazardBias() != 0.25 {
		t.Errorf("hazard bias at max difficulty = %f, expected 0.25", g.diff.HazardBias())
	}
}
