// Package audio synthesizes run sound effects. Everything is generated from
// oscillators at startup-free cost; there are no sound assets to ship. The
// package is self-contained: the platform maps game events to Play calls.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and mixes short effect streamers into it.
// All methods are safe to call before Init or after Close; they no-op.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewManager creates a manager with the given master volume in [0, 1].
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Safe to call more than once.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences the mixer and releases the audio handle so a fresh run
// (or another process) can claim it.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.mixer.Clear()
	speaker.Close()
	m.initialized = false
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Add(newVolume(s, m.volume))
}

// PlayJump is a short upward blip for a ground jump.
func (m *Manager) PlayJump() {
	osc := NewSweep(320, 520, 60*time.Millisecond, sampleRate)
	m.play(NewEnvelope(osc, 60*time.Millisecond, 5*time.Millisecond, 25*time.Millisecond, sampleRate))
}

// PlayOrb is a brighter two-tone chime for an orb activation.
func (m *Manager) PlayOrb() {
	n1 := NewOscillator(660, 50*time.Millisecond, WaveSquare, sampleRate)
	n2 := NewOscillator(990, 70*time.Millisecond, WaveSquare, sampleRate)
	seq := beep.Seq(
		NewEnvelope(n1, 50*time.Millisecond, 3*time.Millisecond, 20*time.Millisecond, sampleRate),
		NewEnvelope(n2, 70*time.Millisecond, 3*time.Millisecond, 35*time.Millisecond, sampleRate),
	)
	m.play(seq)
}

// PlayGravityFlip is a downward warble for a gravity inversion.
func (m *Manager) PlayGravityFlip() {
	osc := NewSweep(500, 200, 120*time.Millisecond, sampleRate)
	m.play(NewEnvelope(osc, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, sampleRate))
}

// PlaySpeedChange is a quick zip for entering a speed portal.
func (m *Manager) PlaySpeedChange() {
	noise := NewOscillator(0, 80*time.Millisecond, WaveNoise, sampleRate)
	m.play(NewEnvelope(noise, 80*time.Millisecond, 5*time.Millisecond, 50*time.Millisecond, sampleRate))
}

// PlayDeath is a harsh saw buzz for a failed run.
func (m *Manager) PlayDeath() {
	osc := NewOscillator(110, 250*time.Millisecond, WaveSaw, sampleRate)
	m.play(NewEnvelope(osc, 250*time.Millisecond, 2*time.Millisecond, 180*time.Millisecond, sampleRate))
}

// PlayWin is a rising three-note fanfare for a completed level.
func (m *Manager) PlayWin() {
	notes := []float64{523.25, 659.25, 783.99}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, 110*time.Millisecond, WaveSquare, sampleRate)
		parts = append(parts, NewEnvelope(osc, 110*time.Millisecond, 4*time.Millisecond, 40*time.Millisecond, sampleRate))
	}
	m.play(beep.Seq(parts...))
}
