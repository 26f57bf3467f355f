package skyhop

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Frame is a read-only view of the game for renderers and tests.
type Frame struct {
	Tick      uint64
	Phase     Phase
	Paused    bool
	Title     string
	Width     float64
	Height    float64
	Player    core.RectF
	PlayerVY  float64
	Platforms []core.RectF
	Score     int
	Best      int
	NewBest   bool
}

// Frame captures the current state.
func (g *Game) Frame() Frame {
	return Frame{
		Tick:      g.tick,
		Phase:     g.phase,
		Paused:    g.paused,
		Title:     g.cfg.Title,
		Width:     float64(g.cfg.Screen.Width),
		Height:    float64(g.cfg.Screen.Height),
		Player:    g.player.Rect(),
		PlayerVY:  g.player.VY,
		Platforms: g.platforms.Rects(),
		Score:     g.stats.Score,
		Best:      g.keeper.Best(),
		NewBest:   g.newBest,
	}
}

// Hash fingerprints the simulation-relevant part of the frame.
// Two runs with the same seed and inputs produce the same sequence of hashes.
func (f Frame) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putRect := func(r core.RectF) {
		putF(r.X)
		putF(r.Y)
		putF(r.W)
		putF(r.H)
	}

	putU(f.Tick)
	putU(uint64(f.Phase)) //#nosec G115 -- phase is a small enum
	putU(uint64(f.Score)) //#nosec G115 -- score is never negative
	putRect(f.Player)
	putF(f.PlayerVY)
	putU(uint64(len(f.Platforms)))
	for _, p := range f.Platforms {
		putRect(p)
	}
	return h.Sum64()
}
