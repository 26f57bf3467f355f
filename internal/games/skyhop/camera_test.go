package skyhop

import (
	"testing"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

func TestCameraApply(t *testing.T) {
	tests := []struct {
		name      string
		height    float64 // Player height
		y, vy     float64
		platforms []core.RectF
		want      ScrollResult
		wantY     float64
		wantLeft  []core.RectF
	}{
		{
			name:   "climb shift follows rising speed",
			height: 40, y: 150, vy: -15,
			platforms: []core.RectF{
				core.NewRectF(0, 710, 100, 20),
				core.NewRectF(0, 100, 100, 20),
			},
			want:     ScrollResult{Climb: 15, Retired: 1},
			wantY:    165,
			wantLeft: []core.RectF{core.NewRectF(0, 115, 100, 20)},
		},
		{
			name:   "fall shift follows falling speed",
			height: 40, y: 620, vy: 25,
			platforms: []core.RectF{
				core.NewRectF(0, 0, 100, 20),
				core.NewRectF(0, 300, 100, 20),
			},
			want:     ScrollResult{Fall: 25, Culled: 1},
			wantY:    595,
			wantLeft: []core.RectF{core.NewRectF(0, 275, 100, 20)},
		},
		{
			name:   "climb then fall in one frame",
			height: 500, y: 620, vy: -30,
			platforms: []core.RectF{
				core.NewRectF(0, 700, 100, 20),
				core.NewRectF(0, -15, 100, 20),
				core.NewRectF(0, -30, 100, 5),
			},
			want:     ScrollResult{Climb: 30, Fall: 10, Retired: 1, Culled: 1},
			wantY:    640,
			wantLeft: []core.RectF{core.NewRectF(0, 5, 100, 20)},
		},
		{
			name:   "no scroll inside the band",
			height: 40, y: 400, vy: 3,
			platforms: []core.RectF{
				core.NewRectF(0, 300, 100, 20),
			},
			want:     ScrollResult{},
			wantY:    400,
			wantLeft: []core.RectF{core.NewRectF(0, 300, 100, 20)},
		},
	}

	cfg := config.DefaultSkyhopConfig()
	cam := NewCamera(cfg)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(cfg)
			p.Height = tc.height
			p.Y, p.VY = tc.y, tc.vy
			ps := &PlatformSet{}
			for _, r := range tc.platforms {
				ps.Add(r)
			}

			got := cam.Apply(p, ps)

			if got != tc.want {
				t.Errorf("Apply() = %+v, expected %+v", got, tc.want)
			}
			if p.Y != tc.wantY {
				t.Errorf("player Y = %v, expected %v", p.Y, tc.wantY)
			}
			left := ps.Rects()
			if len(left) != len(tc.wantLeft) {
				t.Fatalf("platforms left = %v, expected %v", left, tc.wantLeft)
			}
			for i := range left {
				if left[i] != tc.wantLeft[i] {
					t.Errorf("platform %d = %+v, expected %+v", i, left[i], tc.wantLeft[i])
				}
			}
		})
	}
}
