package systems

import (
	"testing"

	"github.com/astrocademy/voyager-server/internal/sim"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	w := sim.NewWorld()
	ship := w.CreateEntity()
	w.AddComponent(ship, &sim.Position{})
	w.AddComponent(ship, &sim.Velocity{VX: 100, VY: 0})

	NewMovementSystem().Update(1000, w)

	pos, _ := w.PositionOf(ship)
	if pos.X != 100 {
		t.Fatalf("position.x = %v after one 1000ms step at vx=100, want 100", pos.X)
	}
	if pos.Y != 0 {
		t.Fatalf("position.y drifted to %v", pos.Y)
	}
}

func TestMovementScalesWithStep(t *testing.T) {
	w := sim.NewWorld()
	ship := w.CreateEntity()
	w.AddComponent(ship, &sim.Position{X: 10, Y: 20})
	w.AddComponent(ship, &sim.Velocity{VX: 60, VY: -30})

	sys := NewMovementSystem()
	for i := 0; i < 4; i++ {
		sys.Update(250, w)
	}

	pos, _ := w.PositionOf(ship)
	if pos.X != 70 || pos.Y != -10 {
		t.Fatalf("position = (%v, %v) after 4x250ms, want (70, -10)", pos.X, pos.Y)
	}
}

func TestMovementIgnoresPartialEntities(t *testing.T) {
	w := sim.NewWorld()
	static := w.CreateEntity()
	w.AddComponent(static, &sim.Position{X: 5})

	NewMovementSystem().Update(1000, w)

	pos, _ := w.PositionOf(static)
	if pos.X != 5 {
		t.Fatalf("entity without velocity moved to %v", pos.X)
	}
}
