package game

import (
	"math"

	"github.com/tomz197/dodgeordie/internal/physics"
)

// Controls is the input snapshot consumed by one tick.
// StickX and StickY are joystick axes in [-1, 1].
type Controls struct {
	Up, Down, Left, Right bool
	StickX, StickY        float64
}

// ResolveMovement moves the player according to c and keeps it inside the field.
// On each axis a held key overrides the stick; the stick moves the player by
// Speed*|axis| once the axis leaves the dead zone.
func ResolveMovement(p *Player, c Controls, width, height float64) {
	p.Y += axisStep(c.Up, c.Down, c.StickY, p.Speed)
	p.X += axisStep(c.Left, c.Right, c.StickX, p.Speed)
	keepInside(p, width, height)
}

// axisStep returns the signed displacement along one axis.
func axisStep(negative, positive bool, stick, speed float64) float64 {
	switch {
	case negative:
		return -speed
	case positive:
		return speed
	case stick < -StickDeadZone:
		return -speed * math.Abs(stick)
	case stick > StickDeadZone:
		return speed * math.Abs(stick)
	default:
		return 0
	}
}

// keepInside clamps the player so its whole circle stays on the field.
func keepInside(p *Player, width, height float64) {
	p.X = physics.Clamp(p.X, p.Radius, width-p.Radius)
	p.Y = physics.Clamp(p.Y, p.Radius, height-p.Radius)
}
