package tui

import (
	"testing"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/level"
)

func testProjector(free bool) projector {
	return projector{w: 80, h: 24, free: free}
}

func TestClassicProjectionAnchorsFloor(t *testing.T) {
	pr := testProjector(false)

	if got := pr.floorRow(); got != 22 {
		t.Fatalf("floorRow = %d, want 22", got)
	}

	// A tile resting on the floor (row 1) occupies the two rows directly
	// above the floor line.
	x, y, w, h := pr.boxRect(level.TileBox(0, 1, 48))
	if x != 0 || w != 4 {
		t.Errorf("tile columns = (%d, %d), want (0, 4)", x, w)
	}
	if y != 20 || h != 2 {
		t.Errorf("tile rows = (%d, %d), want (20, 2)", y, h)
	}

	// The row above stacks on top without overlap.
	_, y2, _, h2 := pr.boxRect(level.TileBox(0, 2, 48))
	if y2+h2 != y {
		t.Errorf("row 2 tile ends at %d, want %d", y2+h2, y)
	}
}

func TestProjectionScrollsWithCamera(t *testing.T) {
	pr := testProjector(false)
	pr.camX = 240 // 5 tiles

	if got := pr.col(240); got != 0 {
		t.Errorf("col at camera = %d, want 0", got)
	}
	if got := pr.col(240 + 48); got != 4 {
		t.Errorf("col one tile right = %d, want 4", got)
	}
}

func TestFreeProjectionCentersCamera(t *testing.T) {
	pr := testProjector(true)
	pr.camY = -200

	if got := pr.row(-200); got != 12 {
		t.Errorf("row at camera focus = %d, want 12", got)
	}
	if up := pr.row(-200 - 24); up != 11 {
		t.Errorf("row one cell up = %d, want 11", up)
	}
}

func TestBoxRectCoversHitboxExactly(t *testing.T) {
	pr := testProjector(false)

	// The player hitbox is smaller than a tile; its rect must stay within
	// the tile's footprint.
	hb := core.NewBox(6, -42, 36, 36)
	x, y, w, h := pr.boxRect(hb)
	tx, ty, tw, th := pr.boxRect(core.NewBox(0, -48, 48, 48))

	if x < tx || x+w > tx+tw {
		t.Errorf("hitbox columns (%d,%d) escape tile (%d,%d)", x, w, tx, tw)
	}
	if y < ty || y+h > ty+th {
		t.Errorf("hitbox rows (%d,%d) escape tile (%d,%d)", y, h, ty, th)
	}
}
