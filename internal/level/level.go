package level

import "fmt"

// GameMode selects the vertical containment rules for a level.
type GameMode string

const (
	// ModeClassic has a floor at y=0 and a fixed ceiling under inverted gravity.
	ModeClassic GameMode = "classic"
	// ModeFree has no floor or ceiling; a generous out-of-bounds band kills.
	ModeFree GameMode = "free"
)

// Valid reports whether m is a recognized game mode.
func (m GameMode) Valid() bool {
	return m == ModeClassic || m == ModeFree
}

// Object is a single placed entity. Immutable during a run; the editor may
// change rotation between runs.
type Object struct {
	ID       string     // Unique within the level
	Type     EntityKind // Member of the closed kind set
	X        int        // Grid column, >= 0
	Y        int        // Grid row, >= 1 (row 1 rests on the floor)
	Rotation int        // Degrees, one of 0/90/180/270; cosmetic only
}

// Level is the static data a run reads: an ordered set of placed objects,
// the finish line, and the containment mode. Object order is irrelevant to
// the simulation except as the tie-break for same-tick trigger overlaps.
type Level struct {
	Name         string
	Objects      []Object
	Length       int // Finish line in tiles; the player wins past Length*tile
	GameMode     GameMode
	ShowHitboxes bool // Diagnostic rendering only
}

// New creates an empty classic-mode level with the given length.
func New(name string, length int) *Level {
	return &Level{
		Name:     name,
		Length:   length,
		GameMode: ModeClassic,
	}
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	clone := *l
	clone.Objects = make([]Object, len(l.Objects))
	copy(clone.Objects, l.Objects)
	return &clone
}

// FinishX returns the world x-coordinate of the finish line.
func (l *Level) FinishX(tile float64) float64 {
	return float64(l.Length) * tile
}

// ObjectAt returns the index of the first object occupying grid cell
// (col, row), or -1 if the cell is empty.
func (l *Level) ObjectAt(col, row int) int {
	for i, o := range l.Objects {
		if o.X == col && o.Y == row {
			return i
		}
	}
	return -1
}

// Place appends an object of the given kind at (col, row), assigning a
// fresh ID. An existing object on the cell is replaced.
func (l *Level) Place(k EntityKind, col, row int) Object {
	if i := l.ObjectAt(col, row); i >= 0 {
		l.Objects = append(l.Objects[:i], l.Objects[i+1:]...)
	}
	obj := Object{
		ID:   l.nextID(),
		Type: k,
		X:    col,
		Y:    row,
	}
	l.Objects = append(l.Objects, obj)
	return obj
}

// Remove deletes the object at (col, row) if present.
// Returns true if something was removed.
func (l *Level) Remove(col, row int) bool {
	i := l.ObjectAt(col, row)
	if i < 0 {
		return false
	}
	l.Objects = append(l.Objects[:i], l.Objects[i+1:]...)
	return true
}

// Rotate advances the rotation of the object at (col, row) by 90 degrees.
// Returns false if the cell is empty.
func (l *Level) Rotate(col, row int) bool {
	i := l.ObjectAt(col, row)
	if i < 0 {
		return false
	}
	l.Objects[i].Rotation = (l.Objects[i].Rotation + 90) % 360
	return true
}

// nextID generates an object ID unused by any current object.
func (l *Level) nextID() string {
	used := make(map[string]bool, len(l.Objects))
	for _, o := range l.Objects {
		used[o.ID] = true
	}
	for n := len(l.Objects) + 1; ; n++ {
		id := fmt.Sprintf("obj-%d", n)
		if !used[id] {
			return id
		}
	}
}
