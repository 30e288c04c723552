package game

import "math/rand"

// StepResult reports what happened during one tick.
type StepResult struct {
	GameOver     bool // Unarmored player touched a monster
	Knockback    bool // Armored player bounced off a monster
	ApplesEaten  int
	ArmorExpired bool
	SecondPassed bool // Elapsed (and Score) advanced this tick
}

// Step advances the session by one tick using the input snapshot c.
// It is deterministic for a given session, snapshot and random source.
//
// Order: move player, move and cull monsters, spawn, update difficulty,
// count armor down, resolve collisions, advance the clock. A game-over
// tick stops right after collision detection.
func Step(s *Session, c Controls, rng *rand.Rand) StepResult {
	var res StepResult

	ResolveMovement(&s.Player, c, s.Width, s.Height)
	s.advanceObstacles()
	s.spawn(rng)
	s.updateDifficulty()
	res.ArmorExpired = s.tickArmor()

	s.checkCollisions(&res)
	if res.GameOver {
		return res
	}

	s.Frame++
	if s.Frame%TickRate == 0 {
		s.Elapsed++
		s.Score = s.Elapsed
		res.SecondPassed = true
	}
	return res
}

// checkCollisions resolves player contact with monsters and apples.
// The first overlapping monster decides the tick: an armored player is
// knocked back and nothing else is checked; an unarmored one loses.
func (s *Session) checkCollisions(res *StepResult) {
	pc := s.Player.Circle()

	for _, o := range s.Obstacles {
		if !pc.Overlaps(o.Circle()) {
			continue
		}
		if !s.Player.Armor {
			res.GameOver = true
			return
		}
		s.knockback(o)
		res.Knockback = true
		return
	}

	kept := s.Apples[:0]
	for _, a := range s.Apples {
		if pc.Overlaps(a.Circle()) {
			s.grantArmor()
			res.ApplesEaten++
			continue
		}
		kept = append(kept, a)
	}
	s.Apples = kept
}

// knockback pushes the player away from o by a share of their separation.
func (s *Session) knockback(o Obstacle) {
	s.Player.X += (s.Player.X - o.X) * KnockbackFactor
	s.Player.Y += (s.Player.Y - o.Y) * KnockbackFactor
	keepInside(&s.Player, s.Width, s.Height)
}
