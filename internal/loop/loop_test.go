package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/dodgeordie/internal/game"
	"github.com/tomz197/dodgeordie/internal/input"
)

// 80x30 cells fit the 800x600 field exactly: 10 logical units per column and
// per half-block row, no offset.
func fixedSize() (int, int, error) { return 80, 30, nil }

func newTestState(t *testing.T, out io.Writer) *state {
	t.Helper()
	stream := input.StartStream(bufio.NewReader(strings.NewReader("")), 0)
	return newState(stream, out, Options{
		TermSizeFunc: fixedSize,
		Store:        &game.MemoryStore{},
		Logger:       log.New(io.Discard),
		Rand:         rand.New(rand.NewSource(1)),
	})
}

func TestStartAndTick(t *testing.T) {
	s := newTestState(t, io.Discard)
	now := time.Now()

	s.handle(input.Input{}, now)
	s.update()
	if got := s.game.Phase(); got != game.PhaseIdle {
		t.Fatalf("phase without start key: got %v, want idle", got)
	}

	s.handle(input.Input{Start: true, Pressed: []byte{' '}}, now)
	s.update()
	if got := s.game.Phase(); got != game.PhaseRunning {
		t.Fatalf("phase after start key: got %v, want running", got)
	}

	s.handle(input.Input{Right: true, Pressed: []byte{'d'}}, now)
	s.update()
	p := s.game.Session().Player
	if p.X != game.CanvasWidth/2+game.PlayerSpeed {
		t.Errorf("player x after moving right: got %v, want %v", p.X, game.CanvasWidth/2+game.PlayerSpeed)
	}
	if s.game.Session().Frame != 1 {
		t.Errorf("frame: got %d, want 1", s.game.Session().Frame)
	}
}

func TestRestartReleasesJoystick(t *testing.T) {
	s := newTestState(t, io.Discard)

	// Cell (16, 26) is on the joystick base, see TestJoystickPointer.
	s.handle(input.Input{
		Start:   true,
		Pressed: []byte{' '},
		Pointer: []input.PointerEvent{{Col: 16, Row: 26, Kind: input.PointerPress}},
	}, time.Now())
	if !s.joystick.Active() {
		t.Fatal("press on the base did not grab the joystick")
	}
	s.update()

	if got := s.game.Phase(); got != game.PhaseRunning {
		t.Fatalf("phase: got %v, want running", got)
	}
	if s.joystick.Active() {
		t.Error("joystick still held after a new game started")
	}
	if c := s.controls(); c.StickX != 0 || c.StickY != 0 {
		t.Errorf("stick after start: got (%v, %v), want (0, 0)", c.StickX, c.StickY)
	}
}

func TestQuitAndClosed(t *testing.T) {
	tests := []struct {
		name string
		in   input.Input
	}{
		{"quit key", input.Input{Quit: true, Pressed: []byte{'q'}}},
		{"input closed", input.Input{Closed: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, io.Discard)
			s.handle(tt.in, time.Now())
			if s.running {
				t.Error("loop still running")
			}
		})
	}
}

func TestIdleTimeout(t *testing.T) {
	s := newTestState(t, io.Discard)
	s.idleTimeout = time.Second

	s.handle(input.Input{}, s.lastInput.Add(500*time.Millisecond))
	if !s.running {
		t.Fatal("stopped before the idle timeout")
	}
	s.handle(input.Input{}, s.lastInput.Add(2*time.Second))
	if s.running {
		t.Error("still running after the idle timeout")
	}
}

func TestJoystickPointer(t *testing.T) {
	s := newTestState(t, io.Discard)

	// Cell (16, 26) is centred on logical (155, 510): 65 units right of the base.
	s.handle(input.Input{Pointer: []input.PointerEvent{{Col: 16, Row: 26, Kind: input.PointerPress}}}, time.Now())
	c := s.controls()
	if c.StickX < 0.999 || c.StickY > 1e-9 || c.StickY < -1e-9 {
		t.Errorf("stick after press: got (%v, %v), want (1, 0)", c.StickX, c.StickY)
	}

	s.handle(input.Input{Pointer: []input.PointerEvent{{Col: 16, Row: 26, Kind: input.PointerRelease}}}, time.Now())
	c = s.controls()
	if c.StickX != 0 || c.StickY != 0 {
		t.Errorf("stick after release: got (%v, %v), want (0, 0)", c.StickX, c.StickY)
	}

	// Far from the base: ignored.
	s.handle(input.Input{Pointer: []input.PointerEvent{{Col: 70, Row: 5, Kind: input.PointerPress}}}, time.Now())
	if s.joystick.Active() {
		t.Error("press far from the joystick grabbed it")
	}
}

func TestDrawFrame(t *testing.T) {
	var out bytes.Buffer
	s := newTestState(t, &out)

	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "Best Score: 0") {
		t.Error("start panel not drawn")
	}

	s.handle(input.Input{Start: true, Pressed: []byte{' '}}, time.Now())
	s.update()
	out.Reset()
	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	frame := out.String()
	if !strings.Contains(frame, "Score: 0") || !strings.Contains(frame, "Time: 0s") {
		t.Error("HUD not drawn while running")
	}
	if strings.Contains(frame, "Best Score") {
		t.Error("start panel still drawn while running")
	}
	if !strings.ContainsRune(frame, '█') {
		t.Error("no player pixels drawn")
	}
}

func TestRunStopsWhenInputCloses(t *testing.T) {
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), bufio.NewReader(strings.NewReader("")), &out, Options{
			TermSizeFunc: fixedSize,
			Logger:       log.New(io.Discard),
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the input closed")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("cursor not restored on exit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(pr), io.Discard, Options{
			TermSizeFunc: fixedSize,
			Logger:       log.New(io.Discard),
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
