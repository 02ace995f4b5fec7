// Package audio plays short procedural cues for combat events. Playback
// failures are never fatal: the game runs silent if the device is missing.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"go-incantato/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and synthesizes one tone per cue. It listens on
// the event bus so the simulation never knows audio exists.
type Manager struct {
	mu          sync.Mutex
	log         *zap.Logger
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewManager(log *zap.Logger) *Manager {
	return &Manager{log: log, mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure leaves the manager muted.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.log.Warn("audio unavailable, running silent", zap.Error(err))
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// SetMuted toggles all cues.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// OnEvent implements event.Listener, mapping combat events to cues.
func (m *Manager) OnEvent(e event.Event) {
	switch e.Type {
	case event.SkillUsed:
		m.play(660, 90*time.Millisecond)
	case event.HostileKilled:
		m.play(220, 120*time.Millisecond)
	case event.WaveStarted:
		m.play(440, 200*time.Millisecond)
	case event.PlayerDied:
		m.play(110, 600*time.Millisecond)
	}
}

func (m *Manager) play(freq float64, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.muted {
		return
	}
	m.mixer.Add(newTone(freq, d))
}

// tone is a sine oscillator with a linear fade-out to avoid clicks.
type tone struct {
	freq     float64
	phase    float64
	total    int
	position int
}

func newTone(freq float64, d time.Duration) beep.Streamer {
	return &tone{freq: freq, total: sampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, false
		}
		fade := 1 - float64(t.position)/float64(t.total)
		v := math.Sin(2*math.Pi*t.phase) * 0.25 * fade
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(sampleRate)
		if t.phase >= 1 {
			t.phase--
		}
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
