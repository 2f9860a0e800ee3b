package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/rayraychen2011/tui-breaker/internal/core"
)

// Manager owns the speaker and fans game events out to their cues.
// When disabled, or when no audio device is available, every call is a
// no-op so the game runs identically without sound.
type Manager struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	ready   bool
}

// NewManager creates a manager. Call Init before playing anything.
func NewManager(enabled bool, volume float64) *Manager {
	return &Manager{
		mixer:   &beep.Mixer{},
		volume:  clampVolume(volume),
		enabled: enabled,
	}
}

// Init opens the audio device and starts the mixer. Safe to call again.
// A failure (a headless host, no device) leaves the manager silent; the
// caller can log the error and keep going.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.ready {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(80*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.ready = true
	return nil
}

// HandleEvents plays the cue for each event from one simulation tick.
func (m *Manager) HandleEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || !m.ready {
		return
	}

	for _, e := range events {
		cue := CueFor(e, m.volume)
		if cue == nil {
			continue
		}
		// The speaker streams from the mixer on its own goroutine.
		speaker.Lock()
		m.mixer.Add(cue)
		speaker.Unlock()
	}
}

// SetVolume adjusts the master volume applied to future cues.
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampVolume(v)
}

// Enabled reports whether the manager will actually produce sound.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled && m.ready
}

// Close drops all pending cues. beep has no speaker close, so an empty
// mixer is as quiet as it gets.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ready {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.ready = false
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
