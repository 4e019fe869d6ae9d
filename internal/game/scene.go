/*
Package game
File: scene.go
Description:
    Seeds the World from the stage configuration and wires the systems to
    the loop in the contractual order: movement, rotation and fuel run
    before the collision systems, so a knockback that zeroes velocity is
    visible to everything later in the same tick.
*/

package game

import (
	"math/rand"

	"github.com/astrocademy/voyager-server/internal/geom"
	"github.com/astrocademy/voyager-server/internal/sim"
	"github.com/astrocademy/voyager-server/internal/systems"
)

// Scene bundles one running simulation instance. Nothing here is shared
// between instances, so parallel scenes (tests, future multi-stage play) do
// not interfere.
type Scene struct {
	World *sim.World
	Bus   *sim.EventBus
	Loop  *sim.GameLoop

	Ship sim.EntityID

	Fuel      *systems.FuelSystem
	Obstacles *systems.ObstaclesSystem
	Capsules  *systems.CapsulesSystem
}

// BuildScene creates the World, spawns every configured entity, and
// registers the systems. rng pins the capsule fact draw; pass nil for a
// time-seeded source.
func BuildScene(cfg *Config, rng *rand.Rand) *Scene {
	world := sim.NewWorld()
	bus := sim.NewEventBus()

	ship := world.CreateEntity()
	world.AddComponent(ship, &sim.Position{X: cfg.Ship.X, Y: cfg.Ship.Y})
	world.AddComponent(ship, &sim.Velocity{})
	world.AddComponent(ship, &sim.Fuel{Current: cfg.Ship.MaxFuel, Max: cfg.Ship.MaxFuel})
	world.AddComponent(ship, &sim.Sprite{Key: cfg.Ship.SpriteKey})

	movement := systems.NewMovementSystem()
	rotation := systems.NewRotationSystem()
	fuel := systems.NewFuelSystem(bus, cfg.Ship.DrainRate)
	obstacles := systems.NewObstaclesSystem(bus, systems.ObstacleTuning{
		StageWidth:        cfg.Stage.Width,
		StageHeight:       cfg.Stage.Height,
		ShipWidth:         cfg.Ship.Width,
		ShipHeight:        cfg.Ship.Height,
		HitboxShrink:      cfg.Collision.HitboxShrink,
		KnockbackDistance: cfg.Collision.KnockbackDistance,
		FuelPenalty:       cfg.Collision.FuelPenalty,
		CooldownMS:        cfg.Collision.CooldownMS,
	})
	triggers := systems.NewTriggersSystem(fuel, cfg.Ship.Width, cfg.Ship.Height)
	capsules := systems.NewCapsulesSystem(bus, rng, cfg.Ship.Width, cfg.Ship.Height)

	for _, a := range cfg.Asteroids {
		entity := world.CreateEntity()
		world.AddComponent(entity, &sim.Position{X: a.X, Y: a.Y})
		if a.VX != 0 || a.VY != 0 {
			world.AddComponent(entity, &sim.Velocity{VX: a.VX, VY: a.VY})
		}
		world.AddComponent(entity, &sim.Sprite{Key: a.SpriteKey})
		obstacles.RegisterObstacle(entity, a.Width, a.Height)
	}

	for _, st := range cfg.Stations {
		entity := world.CreateEntity()
		world.AddComponent(entity, &sim.Position{X: st.X, Y: st.Y})
		world.AddComponent(entity, &sim.Sprite{Key: st.SpriteKey})
		triggers.RegisterTrigger(systems.Trigger{
			Kind:   systems.TriggerRefuel,
			Box:    geom.Box{X: st.X, Y: st.Y, W: st.Width, H: st.Height},
			Amount: st.RefuelAmount,
		})
	}

	for _, capsule := range cfg.Capsules {
		entity := world.CreateEntity()
		world.AddComponent(entity, &sim.Position{X: capsule.X, Y: capsule.Y})
		world.AddComponent(entity, &sim.Sprite{Key: capsule.SpriteKey})
		facts := make([]sim.Fact, 0, len(capsule.Facts))
		for _, f := range capsule.Facts {
			facts = append(facts, sim.Fact{ID: f.ID, Text: f.Text, QuestionID: f.QuestionID})
		}
		world.AddComponent(entity, &sim.DataCapsule{CapsuleID: capsule.ID, Facts: facts})
		capsules.RegisterCapsule(systems.CapsuleZone{
			ID:     capsule.ID,
			Entity: entity,
			Width:  capsule.Width,
			Height: capsule.Height,
		})
	}

	loop := sim.NewGameLoop(world, sim.LoopConfig{StepMS: cfg.Loop.StepMS, MaxFrameMS: cfg.Loop.MaxFrameMS})
	loop.Register(movement, rotation, fuel, obstacles, triggers, capsules)

	return &Scene{
		World:     world,
		Bus:       bus,
		Loop:      loop,
		Ship:      ship,
		Fuel:      fuel,
		Obstacles: obstacles,
		Capsules:  capsules,
	}
}

// SetHelm stages a directional-intent update for the ship's velocity,
// applied on the loop goroutine at the next frame boundary.
func (s *Scene) SetHelm(vx, vy float64) {
	ship := s.Ship
	s.Loop.Do(func(w *sim.World) {
		if vel, ok := w.VelocityOf(ship); ok {
			vel.VX = vx
			vel.VY = vy
		}
	})
}
