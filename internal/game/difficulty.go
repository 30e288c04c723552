package game

import "math"

// SpeedMultiplier returns the obstacle speed multiplier after elapsed seconds.
func SpeedMultiplier(elapsed float64) float64 {
	return 1 + elapsed*SpeedMultiplierPerSecond
}

// SpawnInterval returns the number of ticks between obstacle spawns after elapsed seconds.
// The interval shrinks linearly and never drops below MinSpawnInterval.
func SpawnInterval(elapsed float64) float64 {
	return math.Max(MinSpawnInterval, InitialSpawnInterval-elapsed*SpawnIntervalDecay)
}

// updateDifficulty recomputes the difficulty parameters from the elapsed time.
func (s *Session) updateDifficulty() {
	t := float64(s.Elapsed)
	s.SpeedMultiplier = SpeedMultiplier(t)
	s.SpawnInterval = SpawnInterval(t)
}
