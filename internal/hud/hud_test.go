package hud

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/dodgeordie/internal/draw"
	"github.com/tomz197/dodgeordie/internal/game"
)

func render(t *testing.T, h *HUD) string {
	t.Helper()
	var buf bytes.Buffer
	cw := draw.NewChunkWriter(&buf, 0, 0)
	h.Draw(cw, 80, 30)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return buf.String()
}

func TestArmorText(t *testing.T) {
	tests := []struct {
		active    bool
		remaining float64
		want      string
	}{
		{false, 3, ""},
		{true, 5, "Armor: 5s"},
		{true, 4.99, "Armor: 5s"},
		{true, 0.01, "Armor: 1s"},
		{true, 2, "Armor: 2s"},
	}
	for _, tt := range tests {
		h := New(nil)
		h.ShowArmor(tt.active, tt.remaining)
		if got := h.ArmorText(); got != tt.want {
			t.Errorf("ShowArmor(%v, %v): got %q, want %q", tt.active, tt.remaining, got, tt.want)
		}
	}
}

func TestDrawScoreAndTimer(t *testing.T) {
	h := New(nil)
	h.ShowScore(12)
	h.ShowTimer(12)
	out := render(t, h)
	for _, want := range []string{"Score: 12", "Time: 12s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Armor") {
		t.Error("armor shown without armor")
	}
}

func TestOverlays(t *testing.T) {
	h := New(nil)
	h.ShowStart(42)
	out := render(t, h)
	if !strings.Contains(out, "Best Score: 42") {
		t.Error("start panel missing best score")
	}
	if !strings.Contains(out, "Press SPACE to Start") {
		t.Error("start panel missing prompt")
	}

	h.HideOverlays()
	if h.Panel() != "" {
		t.Error("panel still shown after HideOverlays")
	}

	h.ShowGameOver(7, 42)
	out = render(t, h)
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 7") {
		t.Errorf("game over panel missing final score:\n%s", out)
	}
	if !strings.Contains(out, "Best Score: 42") {
		t.Error("game over panel missing best score")
	}
}

func TestCueBells(t *testing.T) {
	h := New(nil)
	h.Cue(game.CueMusicStart)
	h.Cue(game.CueApplePickup)
	h.Cue(game.CueArmorGained)
	h.Cue(game.CueGameOver)

	out := render(t, h)
	if got := strings.Count(out, draw.Bell); got != 2 {
		t.Errorf("got %d bells, want 2", got)
	}
	if got := strings.Count(render(t, h), draw.Bell); got != 0 {
		t.Errorf("bells rang again on the next frame: %d", got)
	}
}
