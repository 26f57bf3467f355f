package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyhop/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(2, 1, "hello", core.ColorGreen)
	s.SetColored(0, 0, '█', core.ColorBrightYellow)

	out := NewRenderer(core.ColorBlue).RenderScreen(s)

	if !strings.Contains(out, "hello") {
		t.Errorf("output should contain the text, got %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Error("output should contain the block")
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 newlines for 3 rows, got %d", got)
	}
}

func TestRendererCoversAllColors(t *testing.T) {
	r := NewRenderer(core.ColorDefault)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := r.styles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
