package skyhop

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Camera keeps the player inside the field by shifting the world.
type Camera struct {
	scroll config.ScrollConfig
	height float64
}

// ScrollResult reports what one camera pass did.
type ScrollResult struct {
	Climb   float64 // Downward world shift from the climb scroll, 0 if none
	Fall    float64 // Upward world shift from the falling camera, 0 if none
	Retired int     // Platforms that scrolled out below the field
	Culled  int     // Platforms that scrolled out above the field
}

// NewCamera creates a camera for the configured field.
func NewCamera(cfg config.SkyhopConfig) Camera {
	return Camera{scroll: cfg.Scroll, height: float64(cfg.Screen.Height)}
}

// Apply runs the climb scroll and then the falling camera.
// The player itself is never removed: it would need to be shifted past the
// top edge by a single fall step, which the fall step size rules out.
func (c Camera) Apply(p *Player, ps *PlatformSet) ScrollResult {
	var res ScrollResult

	if p.Rect().Top() <= c.height*c.scroll.TopFraction {
		s := math.Max(math.Abs(p.VY), c.scroll.MinClimb)
		p.Y += s
		limit := c.height * c.scroll.RetireFraction
		res.Climb = s
		res.Retired = ps.Shift(s, func(r core.RectF) bool {
			return r.Top() >= limit
		})
	}

	if p.Rect().Bottom() > c.height {
		s := math.Max(p.VY, c.scroll.MinFall)
		p.Y -= s
		res.Fall = s
		res.Culled = ps.Shift(-s, func(r core.RectF) bool {
			return r.Bottom() < 0
		})
	}

	return res
}
