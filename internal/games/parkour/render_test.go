package parkour

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
)

func screenContains(s *core.Screen, r rune) bool {
	return strings.ContainsRune(s.String(), r)
}

func TestRenderHUDAndStatus(t *testing.T) {
	g := newTestGame(New())
	stepN(g, 60)
	dst := core.NewScreen(120, 30)
	g.Render(dst)

	if hud := dst.Row(0); !strings.Contains(hud, "Stage 1") || !strings.Contains(hud, "Combo x0") {
		t.Errorf("HUD row = %q", hud)
	}
	if status := dst.Row(29); !strings.Contains(status, "city / medium / third") {
		t.Errorf("status row = %q", status)
	}
}

func TestRenderDrawsCourseAndPlayer(t *testing.T) {
	g := newTestGame(New())
	stepN(g, 60)
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !screenContains(dst, SurfaceChar) {
		t.Error("start platform should be on screen")
	}
	if !screenContains(dst, HeadingArrow(g.Player().Heading)) {
		t.Error("player arrow missing")
	}
}

func TestRenderFirstPerson(t *testing.T) {
	g := newTestGame(New())
	s := g.Settings()
	s.POV = config.POVFirstPerson
	g.ApplySettings(s)
	stepN(g, 10)

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !screenContains(dst, EyeChar) {
		t.Error("first person should mark the eye point")
	}
	if screenContains(dst, CameraChar) {
		t.Error("first person has no trailing camera")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(New())
	g.Step(frame(core.ActionPause))
	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("missing pause overlay")
	}

	g.Step(frame(core.ActionPause))
	placeOnFinish(g)
	g.Step(frame())
	g.Render(dst)
	if !strings.Contains(dst.String(), "STAGE 1 CLEARED") {
		t.Error("missing stage cleared overlay")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(New())
	dst := core.NewScreen(10, 2)
	g.Render(dst) // must not panic
}

func TestHeadingArrow(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '↑'},
		{math.Pi / 2, '←'},
		{math.Pi, '↓'},
		{-math.Pi / 2, '→'},
		{math.Pi / 4, '↖'},
	}
	for _, tt := range tests {
		if got := HeadingArrow(tt.yaw); got != tt.want {
			t.Errorf("HeadingArrow(%v) = %q, want %q", tt.yaw, got, tt.want)
		}
	}
}
