// Package audio plays short synthesized blips for game cues.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyhop/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue's melody.
type note struct {
	freq float64
	dur  time.Duration
}

// melodies maps each cue to the notes it plays.
var melodies = map[core.Cue][]note{
	core.CueJump:       {{660, 60 * time.Millisecond}},
	core.CueLand:       {{220, 40 * time.Millisecond}},
	core.CueRetire:     {{880, 30 * time.Millisecond}},
	core.CueRoundStart: {{523.25, 80 * time.Millisecond}, {659.25, 120 * time.Millisecond}},
	core.CueGameOver:   {{392, 150 * time.Millisecond}, {329.63, 150 * time.Millisecond}, {261.63, 300 * time.Millisecond}},
	core.CueHighScore:  {{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 90 * time.Millisecond}, {1046.5, 240 * time.Millisecond}},
}

// Cues plays cue sounds through a shared mixer.
// A Cues that was never initialized, or a nil *Cues, stays silent.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New creates a silent cue player with volume in [0, 1].
func New(volume float64) *Cues {
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device and starts the mixer.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (c *Cues) Enabled() bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Play queues the sound for each cue.
func (c *Cues) Play(cues ...core.Cue) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	for _, cue := range cues {
		s, err := Sound(cue, c.volume)
		if err != nil || s == nil {
			continue
		}
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close silences everything still playing.
func (c *Cues) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Sound builds the streamer for a cue, or nil for a cue without a sound.
func Sound(cue core.Cue, volume float64) (beep.Streamer, error) {
	notes, ok := melodies[cue]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %v Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// Duration returns how long a cue's sound lasts.
func Duration(cue core.Cue) time.Duration {
	var total time.Duration
	for _, n := range melodies[cue] {
		total += n.dur
	}
	return total
}

// withVolume scales s; math.Log2(0) is -Inf, so zero volume means silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
