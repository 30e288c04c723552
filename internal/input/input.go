// Package input turns a raw terminal byte stream into per-frame input snapshots.
package input

import (
	"bufio"
	"bytes"
	"strconv"
	"sync"
	"time"
)

// DefaultKeyHold is how long a key is considered "held" after its last press.
const DefaultKeyHold = 120 * time.Millisecond

// PointerKind tells what a mouse report means.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerDrag
	PointerRelease
)

// PointerEvent is a mouse report in 1-based terminal cells.
type PointerEvent struct {
	Col, Row int
	Kind     PointerKind
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Start   bool // Space or Enter
	Closed  bool // The underlying reader is gone
	Pointer []PointerEvent
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
	start time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	hold    time.Duration
	pending []byte // Incomplete escape sequence carried to the next frame
	closed  bool

	quit     chan struct{} // Closed by Close
	quitOnce sync.Once
	exited   chan struct{} // Closed when the reader goroutine returns
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// A key counts as held for hold after its last byte; zero selects DefaultKeyHold.
func StartStream(r *bufio.Reader, hold time.Duration) *Stream {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	s := &Stream{
		ch:     make(chan byte, 256),
		hold:   hold,
		quit:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go func() {
		defer close(s.exited)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.quit:
				return
			}
		}
	}()
	return s
}

// Close stops delivering bytes. The reader goroutine returns as soon as it
// has a byte it cannot hand over, or when the reader fails.
func (s *Stream) Close() {
	s.quitOnce.Do(func() { close(s.quit) })
}

// ReadInput drains all available bytes from the stream (non-blocking)
// and returns the resulting snapshot.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Input{Closed: s.closed}
	s.pending = parse(buf, now, &s.state, &in)
	in.Pressed = buf[:len(buf)-len(s.pending)]

	in.Quit = now.Sub(s.state.quit) < s.hold
	in.Up = now.Sub(s.state.up) < s.hold
	in.Down = now.Sub(s.state.down) < s.hold
	in.Left = now.Sub(s.state.left) < s.hold
	in.Right = now.Sub(s.state.right) < s.hold
	in.Start = now.Sub(s.state.start) < s.hold
	return in
}

// Reset forgets every held key, e.g. when a new game starts.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// parse consumes buf, updating key timestamps and collecting pointer events.
// It returns the trailing bytes of an escape sequence that is not complete yet.
func parse(buf []byte, now time.Time, st *keyState, in *Input) []byte {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyByteToState(st, b, now)
			continue
		}
		if i+1 >= len(buf) {
			return buf[i:]
		}

		switch buf[i+1] {
		case 'O': // SS3 arrows (application cursor mode)
			if i+2 >= len(buf) {
				return buf[i:]
			}
			applyArrow(st, buf[i+2], now)
			i += 2
		case '[':
			end := csiEnd(buf, i+2)
			if end < 0 {
				return buf[i:]
			}
			params, final := buf[i+2:end], buf[end]
			if len(params) > 0 && params[0] == '<' {
				if ev, ok := parseSGRMouse(params[1:], final); ok {
					in.Pointer = append(in.Pointer, ev)
				}
			} else if len(params) == 0 {
				applyArrow(st, final, now)
			}
			i = end
		}
	}
	return nil
}

// csiEnd returns the index of the final byte of a CSI sequence starting at from, or -1.
func csiEnd(buf []byte, from int) int {
	for j := from; j < len(buf); j++ {
		if buf[j] >= 0x40 && buf[j] <= 0x7e {
			return j
		}
	}
	return -1
}

// parseSGRMouse decodes "b;col;row" with final 'M' (press/drag) or 'm' (release).
func parseSGRMouse(params []byte, final byte) (PointerEvent, bool) {
	if final != 'M' && final != 'm' {
		return PointerEvent{}, false
	}
	fields := bytes.Split(params, []byte{';'})
	if len(fields) != 3 {
		return PointerEvent{}, false
	}
	var nums [3]int
	for k, f := range fields {
		n, err := strconv.Atoi(string(f))
		if err != nil {
			return PointerEvent{}, false
		}
		nums[k] = n
	}

	button := nums[0]
	if button&64 != 0 { // wheel
		return PointerEvent{}, false
	}
	ev := PointerEvent{Col: nums[1], Row: nums[2]}
	switch {
	case final == 'm':
		ev.Kind = PointerRelease
	case button&32 != 0:
		ev.Kind = PointerDrag
	default:
		ev.Kind = PointerPress
	}
	return ev, true
}

func applyArrow(state *keyState, code byte, now time.Time) {
	switch code {
	case 'A':
		state.up = now
	case 'B':
		state.down = now
	case 'C':
		state.right = now
	case 'D':
		state.left = now
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case ' ', '\n', '\r':
		state.start = now
	}
}
