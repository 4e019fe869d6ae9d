/*
Package systems
File: fuel.go
Description:
    Fuel drain and refueling. Fuel burns only while the entity is actually
    moving. The empty notification is latched per entity: it fires once when
    the tank first hits zero and re-arms only after fuel comes back, so the
    narrative layer sees one event per continuous empty period instead of
    one per tick.
*/

package systems

import (
	"math"

	"github.com/astrocademy/voyager-server/internal/sim"
)

// FuelSystem owns the per-entity empty latch. Construct one per simulation
// instance; the latch map must not be shared across parallel worlds.
type FuelSystem struct {
	bus  *sim.EventBus
	rate float64 // units per second while moving

	emptyFired map[sim.EntityID]bool
}

func NewFuelSystem(bus *sim.EventBus, drainPerSecond float64) *FuelSystem {
	return &FuelSystem{
		bus:        bus,
		rate:       drainPerSecond,
		emptyFired: make(map[sim.EntityID]bool),
	}
}

func (s *FuelSystem) Update(dt float64, w *sim.World) {
	seconds := dt / 1000
	for _, id := range w.EntitiesWith(sim.KindFuel, sim.KindVelocity) {
		fuel, _ := w.FuelOf(id)
		vel, _ := w.VelocityOf(id)

		if math.Hypot(vel.VX, vel.VY) > speedEpsilon {
			fuel.Current -= s.rate * seconds
			if fuel.Current < 0 {
				fuel.Current = 0
			}
		}

		if fuel.Current <= 0 {
			if !s.emptyFired[id] {
				s.emptyFired[id] = true
				s.bus.Emit(sim.TopicFuelEmpty, sim.FuelEmptyEvent{Entity: id})
			}
		} else {
			delete(s.emptyFired, id)
		}
	}
}

// Refuel tops up the entity's tank, clamped at Max, and re-arms the empty
// latch. The emitted amount is the requested amount even when the clamp
// applied less. No-op without a fuel component.
func (s *FuelSystem) Refuel(w *sim.World, id sim.EntityID, amount float64) {
	fuel, ok := w.FuelOf(id)
	if !ok {
		return
	}
	fuel.Current = math.Min(fuel.Current+amount, fuel.Max)
	delete(s.emptyFired, id)
	s.bus.Emit(sim.TopicFuelRefueled, sim.FuelRefueledEvent{Entity: id, Amount: amount})
}
