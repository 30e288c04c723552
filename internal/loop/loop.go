// Package loop runs one game in a terminal: a fixed 60 Hz Input → Update → Draw cycle.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodgeordie/internal/draw"
	"github.com/tomz197/dodgeordie/internal/game"
	"github.com/tomz197/dodgeordie/internal/input"
)

// Options configures a game loop. Zero values select defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Store        game.ScoreStore
	Logger       *log.Logger
	Rand         *rand.Rand
	KeyHold      time.Duration // How long a key counts as held after its last byte
	IdleTimeout  time.Duration // Disconnect after this long without input; negative disables
}

// Run plays until the player quits, the input closes, the player goes idle for
// too long or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	stream := input.StartStream(r, opts.KeyHold)
	defer stream.Close()
	s := newState(stream, w, opts)

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer draw.ShowCursor(w)
	defer draw.DisableMouse(w)
	draw.ClearScreen(w)

	for s.running {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			s.logger.Debug("context done, leaving loop", "err", ctx.Err())
			s.running = false
			continue
		default:
		}

		// ===== INPUT PHASE =====
		s.handle(input.ReadInput(s.stream), frameStart)
		if !s.running {
			break
		}

		// ===== UPDATE PHASE =====
		s.updateScreen()
		s.update()

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}
