package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays synthesized one-shot effects on a shared mixer.
// Every Play method is fire-and-forget and safe to call before
// initialization (it just does nothing).
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and attaches the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// playTone queues a fixed-length sine blip on the mixer
func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), sine))
	speaker.Unlock()
}

// PlayFire is the shot blip
func (sm *SoundManager) PlayFire() {
	sm.playTone(1200, 40*time.Millisecond)
}

// PlayKill marks an enemy going down
func (sm *SoundManager) PlayKill() {
	sm.playTone(880, 80*time.Millisecond)
}

// PlayHurt marks contact damage landing on the player
func (sm *SoundManager) PlayHurt() {
	sm.playTone(160, 60*time.Millisecond)
}

// PlayWin is the escape jingle
func (sm *SoundManager) PlayWin() {
	sm.playTone(660, 120*time.Millisecond)
	sm.playTone(990, 200*time.Millisecond)
}

// PlayLose is the death drone
func (sm *SoundManager) PlayLose() {
	sm.playTone(110, 400*time.Millisecond)
}
