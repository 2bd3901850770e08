package sim

import "github.com/vovakirdan/tui-dash/internal/core"

// Sample is one recorded point of a test run.
type Sample struct {
	Tick int
	Pos  core.Vec2
}

// Recorder captures the player's path at a fixed simulated-time interval.
// The editor overlays the trail after a test run.
type Recorder struct {
	interval int // Ticks between samples
	tick     int
	points   []Sample
}

// NewRecorder creates a recorder sampling every sampleInterval seconds of
// simulated time at the given tick rate.
func NewRecorder(sampleInterval float64, tickRate int) *Recorder {
	interval := int(sampleInterval*float64(tickRate) + 0.5)
	if interval < 1 {
		interval = 1
	}
	return &Recorder{interval: interval}
}

// Observe is called once per tick with the player position. The first tick
// and every interval-th tick after it are sampled.
func (r *Recorder) Observe(pos core.Vec2) {
	if r.tick%r.interval == 0 {
		r.points = append(r.points, Sample{Tick: r.tick, Pos: pos})
	}
	r.tick++
}

// Trail returns a copy of the recorded samples.
func (r *Recorder) Trail() []Sample {
	out := make([]Sample, len(r.points))
	copy(out, r.points)
	return out
}

// Reset discards all samples.
func (r *Recorder) Reset() {
	r.tick = 0
	r.points = r.points[:0]
}
