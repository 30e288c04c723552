package game

import (
	"math"
	"math/rand"
)

// Edge identifies a side of the field.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// due reports whether a timer with the given interval fires on frame.
// Intervals may be fractional; the check is a plain modulo with no catch-up.
func due(frame int, interval float64) bool {
	return math.Mod(float64(frame), interval) == 0
}

// SpawnObstacle creates a monster just outside a random edge, heading inward.
// Its inward speed grows with the difficulty multiplier.
func SpawnObstacle(rng *rand.Rand, width, height, multiplier float64) Obstacle {
	edge := Edge(rng.Intn(4))
	radius := rng.Float64()*ObstacleRadiusSpread + ObstacleMinRadius
	speed := rng.Float64()*ObstacleSpeedSpread + ObstacleSpeedFactor*multiplier

	o := Obstacle{
		Radius: radius,
		Color:  rng.Intn(len(MonsterPalette)),
	}

	switch edge {
	case EdgeTop:
		o.X = rng.Float64() * width
		o.Y = -radius
		o.DX = lateralDrift(rng)
		o.DY = speed
	case EdgeRight:
		o.X = width + radius
		o.Y = rng.Float64() * height
		o.DX = -speed
		o.DY = lateralDrift(rng)
	case EdgeBottom:
		o.X = rng.Float64() * width
		o.Y = height + radius
		o.DX = lateralDrift(rng)
		o.DY = -speed
	case EdgeLeft:
		o.X = -radius
		o.Y = rng.Float64() * height
		o.DX = speed
		o.DY = lateralDrift(rng)
	}

	return o
}

func lateralDrift(rng *rand.Rand) float64 {
	return (rng.Float64() - 0.5) * ObstacleLateralSpread
}

// SpawnApple places an apple uniformly on the field, fully inset by its radius.
func SpawnApple(rng *rand.Rand, width, height float64) Apple {
	return Apple{
		X:      rng.Float64()*(width-AppleRadius*2) + AppleRadius,
		Y:      rng.Float64()*(height-AppleRadius*2) + AppleRadius,
		Radius: AppleRadius,
	}
}

// spawn adds whatever the timers call for on the current frame.
func (s *Session) spawn(rng *rand.Rand) {
	if due(s.Frame, s.SpawnInterval) {
		s.Obstacles = append(s.Obstacles, SpawnObstacle(rng, s.Width, s.Height, s.SpeedMultiplier))
	}
	if s.Frame%AppleSpawnInterval == 0 {
		s.Apples = append(s.Apples, SpawnApple(rng, s.Width, s.Height))
	}
}
