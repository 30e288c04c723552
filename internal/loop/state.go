package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodgeordie/internal/draw"
	"github.com/tomz197/dodgeordie/internal/game"
	"github.com/tomz197/dodgeordie/internal/hud"
	"github.com/tomz197/dodgeordie/internal/input"
)

// state is everything one running loop owns.
type state struct {
	game     *game.Game
	hud      *hud.HUD
	stream   *input.Stream
	joystick *input.Joystick
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	effects  particles
	logger   *log.Logger

	termSizeFunc draw.TermSizeFunc
	idleTimeout  time.Duration

	in        input.Input
	lastInput time.Time
	running   bool
}

func newState(stream *input.Stream, w io.Writer, opts Options) *state {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}

	h := hud.New(opts.Logger)
	g := game.New(game.Options{
		Width:     game.CanvasWidth,
		Height:    game.CanvasHeight,
		Rand:      opts.Rand,
		Presenter: h,
		Store:     opts.Store,
		Logger:    opts.Logger,
	})

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		opts.Logger.Warn("could not read terminal size", "err", err)
		termWidth, termHeight = 80, 24
	}
	width, height, offCol, offRow := draw.FitTerm(termWidth, termHeight, game.CanvasWidth, game.CanvasHeight)
	canvas := draw.NewScaledCanvas(width, height, game.CanvasWidth, game.CanvasHeight)
	canvas.SetOffset(offCol, offRow)

	return &state{
		game:         g,
		hud:          h,
		stream:       stream,
		joystick:     input.NewJoystick(JoystickX, JoystickY, JoystickRadius, JoystickThreshold),
		canvas:       canvas,
		cw:           draw.NewChunkWriter(w, offCol, offRow),
		effects:      particles{rng: rand.New(rand.NewSource(time.Now().UnixNano()))},
		logger:       opts.Logger,
		termSizeFunc: opts.TermSizeFunc,
		idleTimeout:  opts.IdleTimeout,
		lastInput:    time.Now(),
		running:      true,
	}
}

// handle takes one frame's input snapshot: quitting, inactivity and the joystick.
func (s *state) handle(in input.Input, now time.Time) {
	s.in = in

	if len(in.Pressed) > 0 {
		s.lastInput = now
	} else if s.idleTimeout > 0 && now.Sub(s.lastInput) > s.idleTimeout {
		s.logger.Info("disconnecting idle player", "idle", now.Sub(s.lastInput).Round(time.Second))
		s.running = false
		return
	}

	if in.Quit || in.Closed {
		s.running = false
		return
	}

	for _, ev := range in.Pointer {
		x, y := s.canvas.TerminalToLogical(ev.Col, ev.Row)
		switch ev.Kind {
		case input.PointerPress:
			s.joystick.Press(x, y)
		case input.PointerDrag:
			s.joystick.Drag(x, y)
		case input.PointerRelease:
			s.joystick.Release()
		}
	}
}

// update starts a game on request or advances the running one.
func (s *state) update() {
	s.effects.update(targetFrameTime.Seconds())

	switch s.game.Phase() {
	case game.PhaseIdle, game.PhaseOver:
		if s.in.Start {
			s.stream.Reset()
			s.joystick.Release()
			s.effects.reset()
			s.game.Start()
		}
	case game.PhaseRunning:
		res := s.game.Tick(s.controls())
		p := s.game.Session().Player
		if res.ApplesEaten > 0 {
			s.effects.burst(p.X, p.Y, pickupParticles, pickupSpeed)
		}
		if res.GameOver {
			s.effects.burst(p.X, p.Y, gameOverParticles, gameOverSpeed)
		}
	}
}

// controls merges held keys and the joystick into one snapshot.
func (s *state) controls() game.Controls {
	x, y := s.joystick.Axes()
	return game.Controls{
		Up:     s.in.Up,
		Down:   s.in.Down,
		Left:   s.in.Left,
		Right:  s.in.Right,
		StickX: x,
		StickY: y,
	}
}

// updateScreen refits the canvas when the terminal size changes.
func (s *state) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	width, height, offCol, offRow := draw.FitTerm(termWidth, termHeight, game.CanvasWidth, game.CanvasHeight)
	if width == s.canvas.TerminalWidth() && height == s.canvas.TerminalHeight() &&
		offCol == s.canvas.OffsetCol() && offRow == s.canvas.OffsetRow() {
		return
	}
	s.canvas.Resize(width, height)
	s.canvas.SetOffset(offCol, offRow)
	s.cw.SetOffset(offCol, offRow)
}

// drawFrame clears the screen and redraws everything.
func (s *state) drawFrame() error {
	s.cw.WriteString("\033[H\033[2J")
	s.canvas.Clear()

	sess := s.game.Session()
	for _, o := range sess.Obstacles {
		s.canvas.DrawCircle(o.X, o.Y, o.Radius)
	}
	for _, a := range sess.Apples {
		s.canvas.FillCircle(a.X, a.Y, a.Radius)
	}
	p := sess.Player
	s.canvas.FillCircle(p.X, p.Y, p.Radius)
	if p.Armor {
		s.canvas.DrawCircle(p.X, p.Y, p.Radius+armorRingGap)
	}

	s.effects.draw(s.canvas)

	s.canvas.DrawCircle(s.joystick.CenterX, s.joystick.CenterY, s.joystick.Radius)
	hx, hy := s.joystick.Handle()
	s.canvas.FillCircle(s.joystick.CenterX+hx, s.joystick.CenterY+hy, JoystickHandle)

	s.canvas.Render(s.cw)
	s.canvas.RenderBorder(s.cw)
	s.hud.Draw(s.cw, s.canvas.TerminalWidth(), s.canvas.TerminalHeight())

	return s.cw.Flush()
}
