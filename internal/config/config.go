// Package config provides YAML-based configuration loading for skyhop.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/skyhop/internal/core"
)

// SkyhopConfig is the immutable tunables bundle handed to the game.
type SkyhopConfig struct {
	Title         string          `yaml:"title"`
	Screen        ScreenConfig    `yaml:"screen"`
	Physics       PhysicsConfig   `yaml:"physics"`
	Player        PlayerConfig    `yaml:"player"`
	Platforms     PlatformsConfig `yaml:"platforms"`
	Scroll        ScrollConfig    `yaml:"scroll"`
	Score         ScoreConfig     `yaml:"score"`
	Colors        ColorsConfig    `yaml:"colors"`
	Input         InputConfig     `yaml:"input"`
	HighScoreFile string          `yaml:"high_score_file"`
}

// ScreenConfig is the play field in world pixels and the frame rate.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// PhysicsConfig holds per-frame accelerations.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	Accel       float64 `yaml:"accel"`
	Friction    float64 `yaml:"friction"` // Negative: fraction of VX removed each frame
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PlayerConfig defines the player's collision box and spawn point.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the spawn point above the bottom edge
}

// PlatformSpec is one entry of the initial layout.
type PlatformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlatformsConfig controls the initial layout and the respawn policy.
type PlatformsConfig struct {
	Target    int            `yaml:"target"`
	Height    int            `yaml:"height"`
	MinWidth  int            `yaml:"min_width"`
	MaxWidth  int            `yaml:"max_width"` // Exclusive
	SpawnMinY int            `yaml:"spawn_min_y"`
	SpawnMaxY int            `yaml:"spawn_max_y"` // Exclusive
	Initial   []PlatformSpec `yaml:"initial"`
}

// ScrollConfig controls both camera events.
type ScrollConfig struct {
	TopFraction    float64 `yaml:"top_fraction"`    // Climb scroll starts when the player's top is above this fraction of the height
	MinClimb       float64 `yaml:"min_climb"`       // Minimum upward scroll per frame
	RetireFraction float64 `yaml:"retire_fraction"` // Platforms whose top reaches this fraction of the height retire
	MinFall        float64 `yaml:"min_fall"`        // Minimum falling camera speed per frame
}

// ScoreConfig is the bonus range for a retired platform.
type ScoreConfig struct {
	MinBonus int `yaml:"min_bonus"`
	MaxBonus int `yaml:"max_bonus"` // Exclusive
}

// ColorsConfig uses color names understood by core.ParseColor.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Player     string `yaml:"player"`
	Platform   string `yaml:"platform"`
	Text       string `yaml:"text"`
}

// InputConfig tunes how terminal key repeats are turned into held keys.
type InputConfig struct {
	HoldMillis int `yaml:"hold_millis"`
}

// Palette is the resolved set of colors.
type Palette struct {
	Background core.Color
	Player     core.Color
	Platform   core.Color
	Text       core.Color
}

// Palette resolves the color names. Unknown names fall back to the default
// color; Validate reports them.
func (c SkyhopConfig) Palette() Palette {
	parse := func(name string) core.Color {
		col, err := core.ParseColor(name)
		if err != nil {
			return core.ColorDefault
		}
		return col
	}
	return Palette{
		Background: parse(c.Colors.Background),
		Player:     parse(c.Colors.Player),
		Platform:   parse(c.Colors.Platform),
		Text:       parse(c.Colors.Text),
	}
}

// Validate checks the bundle for values the simulation cannot run with.
// All problems are reported together.
func (c SkyhopConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.FPS > 0, "fps must be positive, got %d", c.Screen.FPS)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Physics.JumpImpulse > 0, "jump_impulse must be positive, got %v", c.Physics.JumpImpulse)
	check(c.Platforms.Target > 0, "platforms.target must be positive, got %d", c.Platforms.Target)
	check(c.Platforms.Height > 0, "platforms.height must be positive, got %d", c.Platforms.Height)
	check(c.Platforms.MinWidth > 0 && c.Platforms.MinWidth < c.Platforms.MaxWidth,
		"platforms width range [%d, %d) is empty", c.Platforms.MinWidth, c.Platforms.MaxWidth)
	check(c.Platforms.MaxWidth <= c.Screen.Width, "platforms.max_width %d exceeds screen width %d", c.Platforms.MaxWidth, c.Screen.Width)
	check(c.Platforms.SpawnMinY < c.Platforms.SpawnMaxY,
		"platforms spawn range [%d, %d) is empty", c.Platforms.SpawnMinY, c.Platforms.SpawnMaxY)
	check(len(c.Platforms.Initial) > 0, "platforms.initial must list at least one platform")
	for i, p := range c.Platforms.Initial {
		check(p.W > 0 && p.H > 0, "platforms.initial[%d] has non-positive size", i)
	}
	check(c.Scroll.TopFraction > 0 && c.Scroll.TopFraction < 1, "scroll.top_fraction must be in (0, 1), got %v", c.Scroll.TopFraction)
	check(c.Scroll.RetireFraction >= 1, "scroll.retire_fraction must be at least 1, got %v", c.Scroll.RetireFraction)
	check(c.Score.MinBonus >= 0 && c.Score.MinBonus < c.Score.MaxBonus,
		"score bonus range [%d, %d) is invalid", c.Score.MinBonus, c.Score.MaxBonus)
	check(c.Input.HoldMillis >= 0, "input.hold_millis must not be negative")

	colors := []struct{ field, name string }{
		{"background", c.Colors.Background},
		{"player", c.Colors.Player},
		{"platform", c.Colors.Platform},
		{"text", c.Colors.Text},
	}
	for _, col := range colors {
		if _, err := core.ParseColor(col.name); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", col.field, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}
