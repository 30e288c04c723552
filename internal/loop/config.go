package loop

import (
	"time"

	"github.com/tomz197/dodgeordie/internal/game"
)

// Frame timing
const (
	targetFPS       = game.TickRate
	targetFrameTime = time.Second / targetFPS
)

// Virtual joystick, in logical units. The base sits in the bottom-left corner
// of the play field.
const (
	JoystickX         = 90.0
	JoystickY         = game.CanvasHeight - 90.0
	JoystickRadius    = 60.0
	JoystickThreshold = 10.0
	JoystickHandle    = 20.0
)

// Drawing
const (
	armorRingGap = 5.0 // Armor ring sits this far outside the player
)

// Inactivity
const (
	DefaultIdleTimeout = 2 * time.Minute
)
