/*
Package systems
File: obstacles.go
Description:
    Obstacle bookkeeping: boundary wrapping for drifting asteroids and
    ship-vs-obstacle collision with a cooldown, a fuel penalty, and physical
    knockback. The knockback translates position directly (bypassing
    velocity) so held input cannot mask the shove.

    Each obstacle's logical hitbox is smaller than its visual footprint by a
    configurable shrink factor, centered inside the visual bounds. Sprite
    assets carry transparent padding; colliding on the full image feels
    unfair.
*/

package systems

import (
	"math"

	"github.com/astrocademy/voyager-server/internal/geom"
	"github.com/astrocademy/voyager-server/internal/sim"
)

// KnockbackFunc is invoked after a hit is applied. The presentation layer
// uses it to briefly lock player input while the ship is shoved.
type KnockbackFunc func(ship sim.EntityID)

// ObstacleTuning holds the collision constants, read-only for the system.
type ObstacleTuning struct {
	StageWidth        float64
	StageHeight       float64
	ShipWidth         float64
	ShipHeight        float64
	HitboxShrink      float64 // ratio of visual bounds, default 0.75
	KnockbackDistance float64 // pixels, default 60
	FuelPenalty       float64 // units drained per hit, default 10
	CooldownMS        float64 // per-ship window between hits, default 500
}

type registeredObstacle struct {
	entity sim.EntityID
	width  float64 // visual bounds
	height float64
}

// ObstaclesSystem keeps its registry in insertion order so the
// first-obstacle-wins rule is deterministic. Cooldowns are tracked against
// sim-time accumulated from dt, not the wall clock, which keeps the window
// exact under catch-up ticks and under test.
type ObstaclesSystem struct {
	bus    *sim.EventBus
	tuning ObstacleTuning

	obstacles   []registeredObstacle
	lastHit     map[sim.EntityID]float64 // ship id -> sim-time of last applied hit
	clock       float64                  // sim-time in ms
	onKnockback KnockbackFunc
}

func NewObstaclesSystem(bus *sim.EventBus, tuning ObstacleTuning) *ObstaclesSystem {
	if tuning.HitboxShrink <= 0 {
		tuning.HitboxShrink = 0.75
	}
	if tuning.KnockbackDistance <= 0 {
		tuning.KnockbackDistance = 60
	}
	if tuning.FuelPenalty <= 0 {
		tuning.FuelPenalty = 10
	}
	if tuning.CooldownMS <= 0 {
		tuning.CooldownMS = 500
	}
	return &ObstaclesSystem{
		bus:     bus,
		tuning:  tuning,
		lastHit: make(map[sim.EntityID]float64),
	}
}

// SetKnockbackFunc installs the optional post-hit callback.
func (s *ObstaclesSystem) SetKnockbackFunc(fn KnockbackFunc) {
	s.onKnockback = fn
}

// RegisterObstacle adds an entity to the collision registry with its visual
// bounds. The logical hitbox is derived per tick from the shrink factor.
func (s *ObstaclesSystem) RegisterObstacle(entity sim.EntityID, width, height float64) {
	s.obstacles = append(s.obstacles, registeredObstacle{entity: entity, width: width, height: height})
}

func (s *ObstaclesSystem) Update(dt float64, w *sim.World) {
	s.clock += dt
	s.wrapDrifters(w)
	for _, ship := range w.EntitiesWith(sim.KindPosition, sim.KindFuel) {
		s.collideShip(ship, w)
	}
}

// wrapDrifters teleports moving obstacles across the stage when they leave
// it on any axis, so the asteroid field never empties out.
func (s *ObstaclesSystem) wrapDrifters(w *sim.World) {
	for _, obs := range s.obstacles {
		pos, ok := w.PositionOf(obs.entity)
		if !ok {
			continue
		}
		if !w.HasComponent(obs.entity, sim.KindVelocity) {
			continue
		}
		if pos.X+obs.width < 0 {
			pos.X = s.tuning.StageWidth
		} else if pos.X > s.tuning.StageWidth {
			pos.X = -obs.width
		}
		if pos.Y+obs.height < 0 {
			pos.Y = s.tuning.StageHeight
		} else if pos.Y > s.tuning.StageHeight {
			pos.Y = -obs.height
		}
	}
}

// collideShip applies at most one hit per ship per tick: the first
// registered obstacle that overlaps wins and the rest are skipped.
func (s *ObstaclesSystem) collideShip(ship sim.EntityID, w *sim.World) {
	pos, ok := w.PositionOf(ship)
	if !ok {
		return
	}
	shipBox := geom.Box{X: pos.X, Y: pos.Y, W: s.tuning.ShipWidth, H: s.tuning.ShipHeight}

	for _, obs := range s.obstacles {
		if obs.entity == ship {
			continue
		}
		obsPos, alive := w.PositionOf(obs.entity)
		if !alive {
			continue
		}

		hitW := obs.width * s.tuning.HitboxShrink
		hitH := obs.height * s.tuning.HitboxShrink
		// Offset centers the shrunken hitbox inside the visual bounds.
		centerX := obsPos.X + (obs.width-hitW)/2 + hitW/2
		centerY := obsPos.Y + (obs.height-hitH)/2 + hitH/2
		radius := math.Max(hitW, hitH) / 2

		if !geom.ShipVsAsteroid(shipBox, centerX, centerY, radius) {
			continue
		}

		if last, seen := s.lastHit[ship]; seen && s.clock-last < s.tuning.CooldownMS {
			return
		}
		s.applyHit(ship, obs.entity, pos, centerX, centerY, w)
		return
	}
}

func (s *ObstaclesSystem) applyHit(ship, obstacle sim.EntityID, pos *sim.Position, obsCenterX, obsCenterY float64, w *sim.World) {
	s.lastHit[ship] = s.clock

	if fuel, ok := w.FuelOf(ship); ok {
		fuel.Current = math.Max(0, fuel.Current-s.tuning.FuelPenalty)
	}

	// Push the ship along the obstacle-center -> ship-center vector. When
	// the centers coincide exactly there is no direction; skip the push but
	// keep the drain and the cooldown.
	dx := pos.X + s.tuning.ShipWidth/2 - obsCenterX
	dy := pos.Y + s.tuning.ShipHeight/2 - obsCenterY
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		pos.X += dx / dist * s.tuning.KnockbackDistance
		pos.Y += dy / dist * s.tuning.KnockbackDistance
	}

	if vel, ok := w.VelocityOf(ship); ok {
		vel.VX = 0
		vel.VY = 0
	}

	s.bus.Emit(sim.TopicObstacleHit, sim.ObstacleHitEvent{Ship: ship, Obstacle: obstacle})
	if s.onKnockback != nil {
		s.onKnockback(ship)
	}
}
