package sim

// Latch models the jump button between ticks. The platform calls Press and
// Release as terminal events arrive; the simulation reads the latched state
// once per tick. Pressed is an edge: it is true only for the first tick
// after a Press that followed a Release.
type Latch struct {
	held    bool
	pressed bool
}

// Press latches the button down. Repeated presses without an intervening
// Release do not produce new edges.
func (l *Latch) Press() {
	if !l.held {
		l.pressed = true
	}
	l.held = true
}

// Release latches the button up.
func (l *Latch) Release() {
	l.held = false
}

// Held reports whether the button is currently down.
func (l *Latch) Held() bool { return l.held }

// Pressed reports whether a press edge is pending for this tick.
func (l *Latch) Pressed() bool { return l.pressed }

// ConsumePressed clears a pending press edge. Used when a trigger
// spends the edge so later triggers in the same tick do not.
func (l *Latch) ConsumePressed() { l.pressed = false }

// EndTick clears the press edge at the end of a tick.
func (l *Latch) EndTick() { l.pressed = false }

// Reset returns the latch to the released state.
func (l *Latch) Reset() {
	l.held = false
	l.pressed = false
}
