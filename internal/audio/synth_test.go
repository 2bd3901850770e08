package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSine, sampleRate)
	if got, want := drain(osc), sampleRate.N(dur); got != want {
		t.Errorf("oscillator produced %d samples, expected %d", got, want)
	}
}

func TestSweepDuration(t *testing.T) {
	dur := 80 * time.Millisecond
	s := NewSweep(200, 400, dur, sampleRate)
	if got, want := drain(s), sampleRate.N(dur); got != want {
		t.Errorf("sweep produced %d samples, expected %d", got, want)
	}
}

func TestEnvelopeAttackStartsQuiet(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSquare, sampleRate)
	env := NewEnvelope(osc, dur, 20*time.Millisecond, 20*time.Millisecond, sampleRate)

	buf := make([][2]float64, 16)
	n, ok := env.Stream(buf)
	if !ok || n == 0 {
		t.Fatal("envelope produced no samples")
	}
	// A square wave is at full amplitude immediately; the attack ramp
	// must suppress the first samples.
	if v := buf[0][0]; v != 0 {
		t.Errorf("first sample = %f, expected silenced by attack", v)
	}
	if v := buf[n-1][0]; v == 1.0 || v == -1.0 {
		t.Errorf("sample %d = %f, expected still inside the attack ramp", n-1, v)
	}
}

func TestManagerIsSafeBeforeInit(t *testing.T) {
	m := NewManager(0.8)
	// None of these may panic or block without an initialized speaker.
	m.PlayJump()
	m.PlayOrb()
	m.PlayGravityFlip()
	m.PlaySpeedChange()
	m.PlayDeath()
	m.PlayWin()
	m.Close()
	m.Close()
	m.PlayJump()
}
