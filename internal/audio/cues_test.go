package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := range n {
			for _, v := range buf[i] {
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream did not end")
	return 0, 0
}

func TestSoundLength(t *testing.T) {
	cues := []core.Cue{
		core.CueJump, core.CueLand, core.CueRetire,
		core.CueRoundStart, core.CueGameOver, core.CueHighScore,
	}

	for _, cue := range cues {
		t.Run(cue.String(), func(t *testing.T) {
			s, err := Sound(cue, 0.5)
			if err != nil {
				t.Fatalf("Sound() failed: %v", err)
			}
			if s == nil {
				t.Fatal("expected a streamer")
			}

			var want int
			for _, n := range melodies[cue] {
				want += sampleRate.N(n.dur)
			}
			got, peak := drain(t, s)
			if got != want {
				t.Errorf("streamed %d samples, expected %d", got, want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak amplitude %v out of (0, 1]", peak)
			}
		})
	}
}

func TestSoundSilentAtZeroVolume(t *testing.T) {
	s, err := Sound(core.CueJump, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("peak = %v, expected silence", peak)
	}
}

func TestSoundUnknownCue(t *testing.T) {
	s, err := Sound(core.Cue(200), 1)
	if err != nil || s != nil {
		t.Errorf("Sound(unknown) = %v, %v; expected nil, nil", s, err)
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(core.CueGameOver); got != 600*time.Millisecond {
		t.Errorf("Duration(game over) = %v, expected 600ms", got)
	}
}

func TestUninitializedIsSilent(t *testing.T) {
	c := New(1)
	if c.Enabled() {
		t.Error("new player should not be enabled before Init")
	}
	c.Play(core.CueJump) // must not touch the speaker
	c.Close()

	var nilCues *Cues
	nilCues.Play(core.CueJump)
	nilCues.Close()
	if nilCues.Enabled() {
		t.Error("nil player should not be enabled")
	}
}
