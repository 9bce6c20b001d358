package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Config controls the sound effects
type Config struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // base-2 exponent, 0 is unchanged
}

// SoundManager plays the game's sound effects through one mixer
// Every Play call is a no-op until Initialize succeeds, so the game runs without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:   cfg,
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   cfg.Volume,
			Silent:   !cfg.Enabled,
		},
	}
}

// Initialize opens the speaker; disabled managers skip the device entirely
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// Active reports whether sounds reach the device
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayShot plays the fire sound
func (sm *SoundManager) PlayShot() {
	sm.play(func() beep.Streamer {
		return beep.Take(sampleRate.N(90*time.Millisecond), NewShotGenerator(sampleRate))
	})
}

// PlayHit plays the target hit sound
func (sm *SoundManager) PlayHit() {
	sm.play(func() beep.Streamer {
		return NewHitStreamer(sampleRate)
	})
}

// PlayCleared plays the jingle for the last target going down
func (sm *SoundManager) PlayCleared() {
	sm.play(func() beep.Streamer {
		return NewClearedStreamer(sampleRate)
	})
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := build()
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
