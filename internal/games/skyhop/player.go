package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Player is the controllable body. Body.X/Body.Y is the mid-bottom point of
// the collision box.
type Player struct {
	core.Body
	Width  float64
	Height float64

	// landed is the outcome of the last collision pass and gates jumping.
	landed bool

	physics config.PhysicsConfig
	fieldW  float64
}

// NewPlayer places a player at its spawn point for the given config.
func NewPlayer(cfg config.SkyhopConfig) *Player {
	return &Player{
		Body: core.Body{
			X: float64(cfg.Screen.Width) / 2,
			Y: float64(cfg.Screen.Height) - cfg.Player.StartOffset,
		},
		Width:   cfg.Player.Width,
		Height:  cfg.Player.Height,
		physics: cfg.Physics,
		fieldW:  float64(cfg.Screen.Width),
	}
}

// Rect returns the collision box derived from the body.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X-p.Width/2, p.Y-p.Height, p.Width, p.Height)
}

// Landed reports whether the last collision pass put the player on a platform.
func (p *Player) Landed() bool {
	return p.landed
}

// Control returns the horizontal acceleration for dir (-1, 0, 1) including friction.
func (p *Player) Control(dir int) float64 {
	ax := float64(dir) * p.physics.Accel
	return ax + p.VX*p.physics.Friction
}

// Jump launches the player if it is standing on a platform.
func (p *Player) Jump() bool {
	if !p.landed {
		return false
	}
	p.VY = -p.physics.JumpImpulse
	p.landed = false
	return true
}

// Update integrates one frame of motion and wraps horizontally.
func (p *Player) Update(dir int) {
	core.Integrate(&p.Body, p.Control(dir), p.physics.Gravity)

	if p.X > p.fieldW {
		p.X = 0
	}
	if p.X < 0 {
		p.X = p.fieldW
	}
}

// LandOn rests the player on top of r.
func (p *Player) LandOn(r core.RectF) {
	p.Y = r.Top() + 1
	p.VY = 0
	p.landed = true
}
