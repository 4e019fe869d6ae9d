package systems

import (
	"testing"

	"github.com/astrocademy/voyager-server/internal/sim"
)

func newFuelFixture(t *testing.T, current, max float64) (*sim.World, *sim.EventBus, sim.EntityID) {
	t.Helper()
	w := sim.NewWorld()
	bus := sim.NewEventBus()
	ship := w.CreateEntity()
	w.AddComponent(ship, &sim.Velocity{VX: 10, VY: 0})
	w.AddComponent(ship, &sim.Fuel{Current: current, Max: max})
	return w, bus, ship
}

func TestFuelDrainsWhileMoving(t *testing.T) {
	w, bus, ship := newFuelFixture(t, 10, 100)
	sys := NewFuelSystem(bus, 7)

	sys.Update(1000, w)

	fuel, _ := w.FuelOf(ship)
	if fuel.Current != 3 {
		t.Fatalf("fuel = %v after 1000ms at 7/s, want 3", fuel.Current)
	}
}

func TestFuelIdleNoDrain(t *testing.T) {
	w, bus, ship := newFuelFixture(t, 10, 100)
	vel, _ := w.VelocityOf(ship)
	vel.VX, vel.VY = 0, 0

	NewFuelSystem(bus, 7).Update(1000, w)

	fuel, _ := w.FuelOf(ship)
	if fuel.Current != 10 {
		t.Fatalf("stationary ship burned fuel: %v", fuel.Current)
	}
}

func TestFuelClampsAtZero(t *testing.T) {
	w, bus, ship := newFuelFixture(t, 2, 100)

	NewFuelSystem(bus, 7).Update(1000, w)

	fuel, _ := w.FuelOf(ship)
	if fuel.Current != 0 {
		t.Fatalf("fuel went negative: %v", fuel.Current)
	}
}

// The empty event fires once per continuous empty period, not once per tick.
func TestFuelEmptyEventAtMostOnce(t *testing.T) {
	w, bus, ship := newFuelFixture(t, 5, 100)
	sys := NewFuelSystem(bus, 7)

	emptyEvents := 0
	bus.On(sim.TopicFuelEmpty, func(any) { emptyEvents++ })

	sys.Update(1000, w) // drains to zero, fires
	vel, _ := w.VelocityOf(ship)
	vel.VX, vel.VY = 0, 0
	for i := 0; i < 10; i++ {
		sys.Update(1000, w) // stationary at zero, must stay silent
	}
	if emptyEvents != 1 {
		t.Fatalf("fuel:empty fired %d times over one empty period, want 1", emptyEvents)
	}

	// Refuel re-arms the latch; a later empty period fires again.
	sys.Refuel(w, ship, 5)
	vel.VX = 10
	sys.Update(1000, w)
	if emptyEvents != 2 {
		t.Fatalf("fuel:empty fired %d times after re-arming, want 2", emptyEvents)
	}
}

func TestRefuelClampsAndEmitsRequestedAmount(t *testing.T) {
	w, bus, ship := newFuelFixture(t, 90, 100)
	sys := NewFuelSystem(bus, 7)

	var got sim.FuelRefueledEvent
	events := 0
	bus.On(sim.TopicFuelRefueled, func(payload any) {
		events++
		got = payload.(sim.FuelRefueledEvent)
	})

	sys.Refuel(w, ship, 50)

	fuel, _ := w.FuelOf(ship)
	if fuel.Current != 100 {
		t.Fatalf("fuel = %v after clamped refuel, want 100", fuel.Current)
	}
	if events != 1 {
		t.Fatalf("fuel:refueled fired %d times, want 1", events)
	}
	if got.Amount != 50 {
		t.Fatalf("event amount = %v, want the requested 50 regardless of the clamp", got.Amount)
	}
	if got.Entity != ship {
		t.Fatalf("event entity = %d, want %d", got.Entity, ship)
	}
}

func TestRefuelWithoutFuelComponentIsNoOp(t *testing.T) {
	w := sim.NewWorld()
	bus := sim.NewEventBus()
	bare := w.CreateEntity()
	w.AddComponent(bare, &sim.Position{})

	events := 0
	bus.On(sim.TopicFuelRefueled, func(any) { events++ })

	NewFuelSystem(bus, 7).Refuel(w, bare, 50)

	if events != 0 {
		t.Fatalf("refuel on entity without fuel emitted %d events", events)
	}
}
