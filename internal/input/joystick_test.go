package input

import (
	"math"
	"testing"
)

func TestJoystickAxes(t *testing.T) {
	tests := []struct {
		name         string
		px, py       float64
		wantX, wantY float64
	}{
		{"centre is neutral", 100, 100, 0, 0},
		{"inside threshold", 108, 100, 0, 0},
		{"half right", 130, 100, 0.5, 0},
		{"full up", 100, 40, 0, -1},
		{"clamped beyond radius", 100, 200, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJoystick(100, 100, 60, 10)
			j.Press(100, 100)
			j.Drag(tt.px, tt.py)
			x, y := j.Axes()
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Fatalf("Axes = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestJoystickPressOutsideReachIgnored(t *testing.T) {
	j := NewJoystick(100, 100, 60, 10)
	j.Press(400, 400)
	j.Drag(160, 100)
	if j.Active() {
		t.Fatal("press far from the base must not grab the stick")
	}
	if x, y := j.Axes(); x != 0 || y != 0 {
		t.Fatalf("Axes = (%v, %v), want neutral", x, y)
	}
}

func TestJoystickReleaseRecentres(t *testing.T) {
	j := NewJoystick(100, 100, 60, 10)
	j.Press(150, 150)
	if x, y := j.Axes(); x == 0 || y == 0 {
		t.Fatal("expected a deflection after press")
	}
	j.Release()
	x, y := j.Axes()
	hx, hy := j.Handle()
	if x != 0 || y != 0 || hx != 0 || hy != 0 || j.Active() {
		t.Fatal("release must recentre the stick")
	}
}
