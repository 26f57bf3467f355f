package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// PlatformSet is the insertion-ordered collection of live platforms.
type PlatformSet struct {
	rects []core.RectF
}

// NewPlatformSet builds a set from the initial layout.
func NewPlatformSet(layout []config.PlatformSpec) *PlatformSet {
	ps := &PlatformSet{rects: make([]core.RectF, 0, len(layout)+8)}
	for _, spec := range layout {
		ps.Add(core.NewRectF(spec.X, spec.Y, spec.W, spec.H))
	}
	return ps
}

// Add appends a platform.
func (ps *PlatformSet) Add(r core.RectF) {
	ps.rects = append(ps.rects, r)
}

// Len returns the number of live platforms.
func (ps *PlatformSet) Len() int {
	return len(ps.rects)
}

// at returns the platform at index i.
func (ps *PlatformSet) at(i int) core.RectF {
	return ps.rects[i]
}

// Rects returns a copy of the platforms in insertion order.
func (ps *PlatformSet) Rects() []core.RectF {
	out := make([]core.RectF, len(ps.rects))
	copy(out, ps.rects)
	return out
}

// FirstHit returns the first platform in insertion order overlapping r.
func (ps *PlatformSet) FirstHit(r core.RectF) (core.RectF, bool) {
	for _, p := range ps.rects {
		if p.Intersects(r) {
			return p, true
		}
	}
	return core.RectF{}, false
}

// Shift moves every platform by dy and removes those for which gone reports true.
// Each platform is visited once. Returns the number removed.
func (ps *PlatformSet) Shift(dy float64, gone func(core.RectF) bool) int {
	kept := ps.rects[:0]
	for _, p := range ps.rects {
		p = p.Shift(0, dy)
		if gone(p) {
			continue
		}
		kept = append(kept, p)
	}
	removed := len(ps.rects) - len(kept)
	// Drop references past the new length
	for i := len(kept); i < len(ps.rects); i++ {
		ps.rects[i] = core.RectF{}
	}
	ps.rects = kept
	return removed
}

// Replenish spawns platforms above the field until the set holds cfg.Target.
// Returns the number spawned.
func (ps *PlatformSet) Replenish(cfg config.SkyhopConfig, rng core.Random) int {
	spawned := 0
	pc := cfg.Platforms
	for ps.Len() < pc.Target {
		w := core.Range(rng, pc.MinWidth, pc.MaxWidth)
		x := core.Range(rng, 0, cfg.Screen.Width-w)
		y := core.Range(rng, pc.SpawnMinY, pc.SpawnMaxY)
		ps.Add(core.NewRectF(float64(x), float64(y), float64(w), float64(pc.Height)))
		spawned++
	}
	return spawned
}

// removeAll drops every platform.
func (ps *PlatformSet) removeAll() {
	ps.rects = ps.rects[:0]
}
