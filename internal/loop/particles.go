package loop

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/dodgeordie/internal/draw"
)

// particlePool is a sync.Pool for reusing particles to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &particle{}
	},
}

// particle is a short-lived cosmetic dot, in logical units.
type particle struct {
	x, y        float64
	vx, vy      float64 // Units per second
	lifetime    float64 // Seconds remaining
	maxLifetime float64
}

// Burst sizes
const (
	gameOverParticles = 24
	gameOverSpeed     = 300.0
	pickupParticles   = 10
	pickupSpeed       = 150.0
	particleLifetime  = 0.6
	particleDrag      = 0.95 // Velocity kept per 60 Hz frame
)

// particles is the set of live bursts drawn over the play field.
type particles struct {
	rng  *rand.Rand
	live []*particle
}

// burst spawns count particles flying out of (x, y) in random directions.
func (ps *particles) burst(x, y float64, count int, speed float64) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + ps.rng.Float64())
		// Random lifetime variation (50% to 100%)
		life := particleLifetime * (0.5 + ps.rng.Float64()*0.5)

		p := particlePool.Get().(*particle)
		*p = particle{
			x:           x,
			y:           y,
			vx:          math.Cos(angle) * spd,
			vy:          math.Sin(angle) * spd,
			lifetime:    life,
			maxLifetime: life,
		}
		ps.live = append(ps.live, p)
	}
}

// update moves every particle by dt seconds and drops the expired ones.
func (ps *particles) update(dt float64) {
	dragFactor := math.Pow(particleDrag, dt*60)
	kept := ps.live[:0]
	for _, p := range ps.live {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			particlePool.Put(p)
			continue
		}
		p.vx *= dragFactor
		p.vy *= dragFactor
		p.x += p.vx * dt
		p.y += p.vy * dt
		kept = append(kept, p)
	}
	clear(ps.live[len(kept):])
	ps.live = kept
}

// reset drops every particle.
func (ps *particles) reset() {
	for _, p := range ps.live {
		particlePool.Put(p)
	}
	clear(ps.live)
	ps.live = ps.live[:0]
}

// draw plots the particles that still have at least a quarter of their life left.
func (ps *particles) draw(c *draw.Canvas) {
	for _, p := range ps.live {
		if p.lifetime/p.maxLifetime < 0.25 {
			continue
		}
		c.SetFloat(p.x, p.y)
	}
}
