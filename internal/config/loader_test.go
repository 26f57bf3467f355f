package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	if !reflect.DeepEqual(base(), DefaultSkyhopConfig()) {
		t.Errorf("embedded defaults differ from DefaultSkyhopConfig:\n%+v\n%+v", base(), DefaultSkyhopConfig())
	}
	if err := DefaultSkyhopConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "title: Tower\nphysics:\n  gravity: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Title != "Tower" || cfg.Physics.Gravity != 0.5 {
		t.Errorf("overrides not applied: title=%q gravity=%v", cfg.Title, cfg.Physics.Gravity)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != 20 || cfg.Platforms.Target != 10 {
		t.Errorf("defaults lost: jump=%v target=%d", cfg.Physics.JumpImpulse, cfg.Platforms.Target)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("missing custom config should be an error")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("screen: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(path); err == nil {
		t.Fatal("malformed YAML should be an error")
	}
}

func TestParseInitialLayoutReplaced(t *testing.T) {
	cfg, err := Parse([]byte("platforms:\n  initial:\n    - {x: 0, y: 300, w: 100, h: 20}\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	want := []PlatformSpec{{X: 0, Y: 300, W: 100, H: 20}}
	if !reflect.DeepEqual(cfg.Platforms.Initial, want) {
		t.Errorf("initial = %+v, expected %+v", cfg.Platforms.Initial, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SkyhopConfig)
		substr string
	}{
		{"zero fps", func(c *SkyhopConfig) { c.Screen.FPS = 0 }, "fps"},
		{"empty width range", func(c *SkyhopConfig) { c.Platforms.MaxWidth = c.Platforms.MinWidth }, "width range"},
		{"no initial platforms", func(c *SkyhopConfig) { c.Platforms.Initial = nil }, "initial"},
		{"unknown color", func(c *SkyhopConfig) { c.Colors.Player = "plaid" }, "colors.player"},
		{"bad bonus range", func(c *SkyhopConfig) { c.Score.MaxBonus = 5 }, "bonus"},
		{"retire inside screen", func(c *SkyhopConfig) { c.Scroll.RetireFraction = 0.5 }, "retire_fraction"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSkyhopConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q should mention %q", err, tc.substr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSkyhopConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSkyhopConfig()) {
		t.Error("marshalled defaults should parse back to the defaults")
	}
}

func TestPalette(t *testing.T) {
	p := DefaultSkyhopConfig().Palette()
	if p.Player == p.Platform {
		t.Error("player and platform colors should differ by default")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.skyhop/highscore.txt")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".skyhop", "highscore.txt"); got != want {
		t.Errorf("ExpandHome = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}
