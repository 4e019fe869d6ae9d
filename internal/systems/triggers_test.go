package systems

import (
	"testing"

	"github.com/astrocademy/voyager-server/internal/geom"
	"github.com/astrocademy/voyager-server/internal/sim"
)

func newTriggerFixture(t *testing.T, fuelCurrent float64) (*sim.World, *sim.EventBus, *TriggersSystem, sim.EntityID) {
	t.Helper()
	w := sim.NewWorld()
	bus := sim.NewEventBus()
	fuelSys := NewFuelSystem(bus, 5)
	sys := NewTriggersSystem(fuelSys, 10, 10)

	ship := w.CreateEntity()
	w.AddComponent(ship, &sim.Position{X: 50, Y: 50})
	w.AddComponent(ship, &sim.Fuel{Current: fuelCurrent, Max: 100})
	w.AddComponent(ship, &sim.Sprite{Key: "ship"})
	return w, bus, sys, ship
}

func TestRefuelTriggerFiresEveryOverlappingTick(t *testing.T) {
	w, bus, sys, ship := newTriggerFixture(t, 50)
	sys.RegisterTrigger(Trigger{
		Kind:   TriggerRefuel,
		Box:    geom.Box{X: 45, Y: 45, W: 30, H: 30},
		Amount: 2,
	})

	refuels := 0
	bus.On(sim.TopicFuelRefueled, func(any) { refuels++ })

	sys.Update(16, w)
	sys.Update(16, w)
	sys.Update(16, w)

	fuel, _ := w.FuelOf(ship)
	if fuel.Current != 56 {
		t.Fatalf("fuel = %v after three overlapping ticks at 2/tick, want 56", fuel.Current)
	}
	if refuels != 3 {
		t.Fatalf("fuel:refueled fired %d times, want one per overlapping tick", refuels)
	}
}

func TestRefuelTriggerIdempotentAtMax(t *testing.T) {
	w, _, sys, ship := newTriggerFixture(t, 99)
	sys.RegisterTrigger(Trigger{
		Kind:   TriggerRefuel,
		Box:    geom.Box{X: 45, Y: 45, W: 30, H: 30},
		Amount: 2,
	})

	for i := 0; i < 5; i++ {
		sys.Update(16, w)
	}

	fuel, _ := w.FuelOf(ship)
	if fuel.Current != 100 {
		t.Fatalf("fuel = %v, want clamped at max 100", fuel.Current)
	}
}

func TestTriggerMissesNonOverlappingShip(t *testing.T) {
	w, bus, sys, ship := newTriggerFixture(t, 50)
	sys.RegisterTrigger(Trigger{
		Kind:   TriggerRefuel,
		Box:    geom.Box{X: 200, Y: 200, W: 30, H: 30},
		Amount: 2,
	})

	refuels := 0
	bus.On(sim.TopicFuelRefueled, func(any) { refuels++ })

	sys.Update(16, w)

	fuel, _ := w.FuelOf(ship)
	if fuel.Current != 50 || refuels != 0 {
		t.Fatalf("distant trigger fired: fuel %v, %d events", fuel.Current, refuels)
	}
}
