// Package audio synthesizes short feedback tones with beep. The game is
// fully playable without sound: when the speaker cannot initialize, or
// when sound is toggled off, every method is a no-op.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays drop feedback tones.
type Player struct {
	enabled bool
	ready   bool
}

// NewPlayer initializes the speaker. The returned error is informational
// only; the player stays usable (silently) on failure.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{enabled: enabled}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		p.ready = true
	}
	return p, err
}

// Enabled reports whether tones will actually play.
func (p *Player) Enabled() bool {
	return p.enabled && p.ready
}

// Toggle flips the sound setting and reports the new state.
func (p *Player) Toggle() bool {
	p.enabled = !p.enabled
	return p.Enabled()
}

// Pickup plays a short tick when a choice is grabbed.
func (p *Player) Pickup() {
	p.tone(660, 40*time.Millisecond)
}

// Match plays the success chime.
func (p *Player) Match() {
	p.tone(880, 120*time.Millisecond)
}

// Mismatch plays the failure buzz.
func (p *Player) Mismatch() {
	p.tone(220, 180*time.Millisecond)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.Enabled() {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
