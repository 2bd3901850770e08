// Package gen produces level segments for endless runs. Generation is
// driven by a seeded RNG and a difficulty manager, so a run is reproducible
// from its seed and input sequence alone.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/level"
)

// placement is one entity of a segment template, relative to the
// segment's first column.
type placement struct {
	kind level.EntityKind
	col  int
	row  int
}

// segment is a reusable obstacle pattern. Width includes the pattern's own
// footprint but not the gap that follows it; hazard marks patterns that the
// difficulty curve makes more frequent.
type segment struct {
	name   string
	width  int
	hazard bool
	parts  []placement
}

var segments = []segment{
	{
		name:  "runway",
		width: 4,
	},
	{
		name:  "lone-spike",
		width: 1, hazard: true,
		parts: []placement{{level.KindSpike, 0, 1}},
	},
	{
		name:  "double-spike",
		width: 2, hazard: true,
		parts: []placement{
			{level.KindSpike, 0, 1},
			{level.KindSpike, 1, 1},
		},
	},
	{
		name:  "step-up",
		width: 4,
		parts: []placement{
			{level.KindBlock, 0, 1},
			{level.KindBlock, 1, 1},
			{level.KindBlock, 2, 2},
			{level.KindBlock, 3, 2},
		},
	},
	{
		name:  "spiked-block",
		width: 3, hazard: true,
		parts: []placement{
			{level.KindSpike, 0, 1},
			{level.KindBlock, 1, 1},
			{level.KindSpike, 2, 1},
		},
	},
	{
		name:  "orb-gap",
		width: 5, hazard: true,
		parts: []placement{
			{level.KindSpike, 1, 1},
			{level.KindSpike, 2, 1},
			{level.KindSpike, 3, 1},
			{level.KindOrbJump, 2, 3},
		},
	},
	{
		name:  "half-spike-run",
		width: 3, hazard: true,
		parts: []placement{
			{level.KindHalfSpike, 0, 1},
			{level.KindHalfSpike, 2, 1},
		},
	},
	{
		name:  "speed-burst",
		width: 6,
		parts: []placement{
			{level.KindPortalSpeedFast, 0, 2},
			{level.KindSpike, 3, 1},
			{level.KindPortalSpeedNorm, 5, 2},
		},
	},
}

// baseGap is the breathing room between segments in tiles.
const baseGap = 6

// Generator emits segments for an endless run.
type Generator struct {
	rng     *rand.Rand
	diff    *config.DifficultyManager
	nextCol int
	serial  int
}

// New creates a generator. The same seed and difficulty settings always
// produce the same sequence of segments.
func New(seed int64, diff *config.DifficultyManager) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		diff: diff,
		// Leave the spawn area clear.
		nextCol: 12,
	}
}

// NextCol returns the column the next segment will start at.
func (g *Generator) NextCol() int { return g.nextCol }

// NextSegment emits one segment and advances the cursor. Returns the placed
// objects and the total tiles consumed including the trailing gap.
func (g *Generator) NextSegment() ([]level.Object, int) {
	seg := g.pick()

	objs := make([]level.Object, 0, len(seg.parts))
	for _, p := range seg.parts {
		g.serial++
		objs = append(objs, level.Object{
			ID:   fmt.Sprintf("gen-%d", g.serial),
			Type: p.kind,
			X:    g.nextCol + p.col,
			Y:    p.row,
		})
	}

	gap := baseGap - g.diff.SpacingReduction()
	if gap < 2 {
		gap = 2
	}
	consumed := seg.width + gap
	g.nextCol += consumed
	g.diff.Update(g.nextCol)
	return objs, consumed
}

// pick selects a segment, biasing toward hazards as difficulty rises.
func (g *Generator) pick() segment {
	seg := segments[g.rng.Intn(len(segments))]
	if !seg.hazard && g.rng.Float64() < g.diff.HazardBias() {
		// Reroll once among hazard patterns.
		hazards := make([]segment, 0, len(segments))
		for _, s := range segments {
			if s.hazard {
				hazards = append(hazards, s)
			}
		}
		seg = hazards[g.rng.Intn(len(hazards))]
	}
	return seg
}

// StartLevel builds the initial endless level: an empty runway long enough
// to cover the first screens; segments are appended as the player advances.
func StartLevel() *level.Level {
	lvl := level.New("endless", 40)
	lvl.GameMode = level.ModeClassic
	return lvl
}
