package input

import "math"

// Joystick is an on-screen virtual stick driven by pointer events.
// Coordinates are in the same logical units as the play field.
type Joystick struct {
	CenterX, CenterY float64
	Radius           float64 // Maximum handle travel
	Threshold        float64 // Handle travel below this reads as neutral
	Reach            float64 // Presses further than this from the centre are ignored

	active           bool
	x, y             float64 // Normalized axes
	handleX, handleY float64 // Handle offset from the centre
}

// NewJoystick creates a joystick whose base is centred at (cx, cy).
func NewJoystick(cx, cy, radius, threshold float64) *Joystick {
	return &Joystick{
		CenterX:   cx,
		CenterY:   cy,
		Radius:    radius,
		Threshold: threshold,
		Reach:     radius * 1.5,
	}
}

// Press grabs the stick if (px, py) lands on the base.
func (j *Joystick) Press(px, py float64) {
	if math.Hypot(px-j.CenterX, py-j.CenterY) > j.Reach {
		return
	}
	j.active = true
	j.moveTo(px, py)
}

// Drag moves a grabbed stick toward (px, py).
func (j *Joystick) Drag(px, py float64) {
	if j.active {
		j.moveTo(px, py)
	}
}

// Release lets go of the stick and recentres it.
func (j *Joystick) Release() {
	j.active = false
	j.x, j.y = 0, 0
	j.handleX, j.handleY = 0, 0
}

// moveTo places the handle toward the pointer, limited to Radius.
func (j *Joystick) moveTo(px, py float64) {
	dx := px - j.CenterX
	dy := py - j.CenterY
	limited := math.Min(math.Hypot(dx, dy), j.Radius)
	angle := math.Atan2(dy, dx)

	j.handleX = math.Cos(angle) * limited
	j.handleY = math.Sin(angle) * limited

	if limited > j.Threshold {
		j.x = j.handleX / j.Radius
		j.y = j.handleY / j.Radius
	} else {
		j.x, j.y = 0, 0
	}
}

// Axes returns the stick position, each axis in [-1, 1].
func (j *Joystick) Axes() (x, y float64) {
	return j.x, j.y
}

// Handle returns the handle offset from the base centre.
func (j *Joystick) Handle() (dx, dy float64) {
	return j.handleX, j.handleY
}

// Active reports whether the stick is currently held.
func (j *Joystick) Active() bool {
	return j.active
}
