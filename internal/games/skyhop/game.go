// Package skyhop implements an endless vertical platformer.
// The player jumps between platforms while the camera climbs with them;
// falling off the bottom drags the camera down until no platform is left.
package skyhop

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Phase is the round state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ScoreKeeper receives finished rounds and knows the best score.
type ScoreKeeper interface {
	Best() int
	// Submit records a finished round and reports whether it set a new best.
	Submit(score int) bool
}

// RoundStats summarizes the current or last round.
type RoundStats struct {
	Score   int
	Frames  int
	Retired int
	Culled  int
}

// Game is one player's session: the round state machine plus the world it owns.
type Game struct {
	cfg     config.SkyhopConfig
	palette config.Palette
	keeper  ScoreKeeper
	rng     core.Random
	runtime core.RuntimeConfig

	phase     Phase
	player    *Player
	platforms *PlatformSet
	camera    Camera
	paused    bool
	newBest   bool
	stats     RoundStats
	tick      uint64
}

// New creates a game. A nil keeper keeps the best score in memory only.
func New(cfg config.SkyhopConfig, keeper ScoreKeeper) *Game {
	if keeper == nil {
		keeper = &memoryKeeper{}
	}
	g := &Game{
		cfg:     cfg,
		palette: cfg.Palette(),
		keeper:  keeper,
		camera:  NewCamera(cfg),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Title
}

// Reset returns to the start screen with a fresh random source.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.phase = PhaseNotStarted
	g.tick = 0
	g.newRound()
}

// newRound rebuilds the world from the initial layout.
func (g *Game) newRound() {
	g.player = NewPlayer(g.cfg)
	g.platforms = NewPlatformSet(g.cfg.Platforms.Initial)
	g.paused = false
	g.newBest = false
	g.stats = RoundStats{}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var cues []core.Cue

	switch g.phase {
	case PhaseNotStarted, PhaseGameOver:
		if in.Has(core.ActionAny) {
			g.newRound()
			g.phase = PhasePlaying
			cues = append(cues, core.CueRoundStart)
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			cues = g.stepRound(in, cues)
		}
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// stepRound runs one frame of play in pipeline order.
func (g *Game) stepRound(in core.InputFrame, cues []core.Cue) []core.Cue {
	g.stats.Frames++

	if in.Has(core.ActionJump) && g.player.Jump() {
		cues = append(cues, core.CueJump)
	}

	g.player.Update(in.Direction())

	wasLanded := g.player.Landed()
	g.resolveCollisions()
	if g.player.Landed() && !wasLanded {
		cues = append(cues, core.CueLand)
	}

	scroll := g.camera.Apply(g.player, g.platforms)
	if scroll.Retired > 0 {
		for range scroll.Retired {
			g.stats.Score += core.Range(g.rng, g.cfg.Score.MinBonus, g.cfg.Score.MaxBonus)
		}
		g.stats.Retired += scroll.Retired
		cues = append(cues, core.CueRetire)
	}
	g.stats.Culled += scroll.Culled

	if g.platforms.Len() == 0 {
		return g.endRound(cues)
	}

	g.platforms.Replenish(g.cfg, g.rng)
	return cues
}

// resolveCollisions lands a falling player on the first platform it overlaps.
func (g *Game) resolveCollisions() {
	g.player.landed = false
	if g.player.VY <= 0 {
		return
	}
	if hit, ok := g.platforms.FirstHit(g.player.Rect()); ok {
		g.player.LandOn(hit)
	}
}

func (g *Game) endRound(cues []core.Cue) []core.Cue {
	g.phase = PhaseGameOver
	g.paused = false
	cues = append(cues, core.CueGameOver)
	if g.keeper.Submit(g.stats.Score) {
		g.newBest = true
		cues = append(cues, core.CueHighScore)
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the round state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Stats returns the current or last round's statistics.
func (g *Game) Stats() RoundStats {
	return g.stats
}

// Best returns the best score known to the keeper.
func (g *Game) Best() int {
	return g.keeper.Best()
}

// Config returns the tunables the game was built with.
func (g *Game) Config() config.SkyhopConfig {
	return g.cfg
}

// memoryKeeper is the ScoreKeeper used when none is supplied.
type memoryKeeper struct {
	best int
}

func (k *memoryKeeper) Best() int { return k.best }

func (k *memoryKeeper) Submit(score int) bool {
	if score > k.best {
		k.best = score
		return true
	}
	return false
}
