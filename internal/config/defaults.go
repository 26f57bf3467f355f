package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyhopYAML []byte

// DefaultSkyhopConfig returns the built-in configuration.
// It mirrors defaults/skyhop.yaml and is used when the embedded file cannot be decoded.
func DefaultSkyhopConfig() SkyhopConfig {
	return SkyhopConfig{
		Title: "Skyhop",
		Screen: ScreenConfig{
			Width:  480,
			Height: 600,
			FPS:    60,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			Accel:       0.5,
			Friction:    -0.12,
			JumpImpulse: 20,
		},
		Player: PlayerConfig{
			Width:       30,
			Height:      40,
			StartOffset: 50,
		},
		Platforms: PlatformsConfig{
			Target:    10,
			Height:    20,
			MinWidth:  50,
			MaxWidth:  100,
			SpawnMinY: -75,
			SpawnMaxY: -30,
			Initial: []PlatformSpec{
				{X: 0, Y: 560, W: 480, H: 40},
				{X: 190, Y: 450, W: 100, H: 20},
				{X: 125, Y: 250, W: 100, H: 20},
				{X: 350, Y: 200, W: 100, H: 20},
				{X: 175, Y: 100, W: 50, H: 20},
			},
		},
		Scroll: ScrollConfig{
			TopFraction:    0.25,
			MinClimb:       2,
			RetireFraction: 1.2,
			MinFall:        10,
		},
		Score: ScoreConfig{
			MinBonus: 5,
			MaxBonus: 10,
		},
		Colors: ColorsConfig{
			Background: "blue",
			Player:     "bright_yellow",
			Platform:   "green",
			Text:       "bright_white",
		},
		Input: InputConfig{
			HoldMillis: 180,
		},
		HighScoreFile: "~/.skyhop/highscore.txt",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSkyhopYAML
}
