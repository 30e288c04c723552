package game

import "github.com/tomz197/dodgeordie/internal/physics"

// Player is the avatar steered by the user.
type Player struct {
	X, Y   float64
	Radius float64
	Speed  float64 // Units moved per tick at full input
	Armor  bool
}

// NewPlayer creates a player centred at (x, y).
func NewPlayer(x, y float64) Player {
	return Player{
		X:      x,
		Y:      y,
		Radius: PlayerRadius,
		Speed:  PlayerSpeed,
	}
}

// Circle returns the player's collision body.
func (p Player) Circle() physics.Circle {
	return physics.Circle{X: p.X, Y: p.Y, Radius: p.Radius}
}

// Obstacle is a monster travelling in a straight line across the field.
type Obstacle struct {
	X, Y   float64
	DX, DY float64 // Per-tick velocity, fixed at spawn
	Radius float64
	Color  int // Index into MonsterPalette
}

// Circle returns the obstacle's collision body.
func (o Obstacle) Circle() physics.Circle {
	return physics.Circle{X: o.X, Y: o.Y, Radius: o.Radius}
}

// Offscreen reports whether the obstacle has left the field by more than the culling margin.
func (o Obstacle) Offscreen(width, height float64) bool {
	return o.X < -ObstacleCullingMargin || o.X > width+ObstacleCullingMargin ||
		o.Y < -ObstacleCullingMargin || o.Y > height+ObstacleCullingMargin
}

// Apple is a static power-up that grants armor when collected.
type Apple struct {
	X, Y   float64
	Radius float64
}

// Circle returns the apple's collision body.
func (a Apple) Circle() physics.Circle {
	return physics.Circle{X: a.X, Y: a.Y, Radius: a.Radius}
}
