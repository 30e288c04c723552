// Package hud shows the score, timer, armor indicator and the start and
// game-over panels on top of the canvas.
package hud

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tomz197/dodgeordie/internal/draw"
	"github.com/tomz197/dodgeordie/internal/game"
)

type overlay int

const (
	overlayNone overlay = iota
	overlayStart
	overlayGameOver
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 4).
	Align(lipgloss.Center)

// HUD implements game.Presenter by remembering what should be on screen.
// Draw writes it out once per frame.
type HUD struct {
	logger *log.Logger

	score     int
	seconds   int
	armor     bool
	armorLeft float64
	overlay   overlay
	best      int
	final     int
	bells     int
}

var _ game.Presenter = (*HUD)(nil)

// New creates a HUD. logger may be nil.
func New(logger *log.Logger) *HUD {
	return &HUD{logger: logger}
}

func (h *HUD) ShowScore(score int) { h.score = score }

func (h *HUD) ShowTimer(seconds int) { h.seconds = seconds }

func (h *HUD) ShowArmor(active bool, remaining float64) {
	h.armor = active
	h.armorLeft = remaining
}

func (h *HUD) ShowStart(best int) {
	h.overlay = overlayStart
	h.best = best
}

func (h *HUD) ShowGameOver(final, best int) {
	h.overlay = overlayGameOver
	h.final = final
	h.best = best
}

func (h *HUD) HideOverlays() { h.overlay = overlayNone }

// Cue rings the terminal bell for pickups and game over. There is no music in
// a terminal, so music cues are only logged.
func (h *HUD) Cue(c game.Cue) {
	switch c {
	case game.CueApplePickup, game.CueGameOver:
		h.bells++
	}
	if h.logger != nil {
		h.logger.Debug("cue", "cue", c)
	}
}

// ScoreText is the top-left score line.
func (h *HUD) ScoreText() string { return fmt.Sprintf("Score: %d", h.score) }

// TimerText is the top-right timer line.
func (h *HUD) TimerText() string { return fmt.Sprintf("Time: %ds", h.seconds) }

// ArmorText returns the armor indicator, or "" when no armor is active.
func (h *HUD) ArmorText() string {
	if !h.armor {
		return ""
	}
	return fmt.Sprintf("Armor: %ds", int(math.Ceil(h.armorLeft)))
}

// Panel returns the rendered overlay panel, or "" when none is shown.
func (h *HUD) Panel() string {
	switch h.overlay {
	case overlayStart:
		return panelStyle.Render(strings.Join([]string{
			"D O D G E   O R   D I E",
			"",
			"Dodge the monsters, eat apples for armor.",
			"Arrows/WASD or drag the joystick to move.",
			"",
			fmt.Sprintf("Best Score: %d", h.best),
			"",
			"Press SPACE to Start  -  Q to quit",
		}, "\n"))
	case overlayGameOver:
		return panelStyle.Render(strings.Join([]string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", h.final),
			fmt.Sprintf("Best Score: %d", h.best),
			"",
			"Press SPACE to Restart  -  Q to quit",
		}, "\n"))
	}
	return ""
}

// Draw writes the HUD for a render area of width x height cells. Pending bells
// are flushed with it.
func (h *HUD) Draw(cw *draw.ChunkWriter, width, height int) {
	cw.WriteAt(2, 1, h.ScoreText())
	timer := h.TimerText()
	cw.WriteAt(max(width-len(timer), 1), 1, timer)
	if armor := h.ArmorText(); armor != "" {
		cw.WriteAt(max((width-len(armor))/2, 1), 1, armor)
	}

	if panel := h.Panel(); panel != "" {
		lines := strings.Split(panel, "\n")
		top := max((height-len(lines))/2, 1)
		for i, line := range lines {
			col := max((width-lipgloss.Width(line))/2, 1)
			cw.WriteAt(col, top+i, line)
		}
	}

	for ; h.bells > 0; h.bells-- {
		cw.WriteString(draw.Bell)
	}
}
