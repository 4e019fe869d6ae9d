package systems

import (
	"math"
	"testing"

	"github.com/astrocademy/voyager-server/internal/sim"
)

func TestRotationFollowsVelocity(t *testing.T) {
	cases := []struct {
		name      string
		vx, vy    float64
		wantAngle float64
	}{
		{name: "up", vx: 0, vy: -100, wantAngle: 0},
		{name: "right", vx: 100, vy: 0, wantAngle: 90},
		{name: "down", vx: 0, vy: 100, wantAngle: 180},
		{name: "left", vx: -100, vy: 0, wantAngle: 270},
		{name: "up-right diagonal", vx: 100, vy: -100, wantAngle: 45},
	}

	sys := NewRotationSystem()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := sim.NewWorld()
			ship := w.CreateEntity()
			w.AddComponent(ship, &sim.Position{})
			w.AddComponent(ship, &sim.Velocity{VX: tc.vx, VY: tc.vy})

			sys.Update(16, w)

			pos, _ := w.PositionOf(ship)
			if math.Abs(pos.Angle-tc.wantAngle) > 1e-9 {
				t.Fatalf("angle = %v for velocity (%v, %v), want %v", pos.Angle, tc.vx, tc.vy, tc.wantAngle)
			}
			if pos.Angle < 0 || pos.Angle >= 360 {
				t.Fatalf("angle %v outside [0, 360)", pos.Angle)
			}
		})
	}
}

func TestRotationRetainsAngleBelowThreshold(t *testing.T) {
	w := sim.NewWorld()
	ship := w.CreateEntity()
	w.AddComponent(ship, &sim.Position{Angle: 123})
	w.AddComponent(ship, &sim.Velocity{VX: 0.005, VY: 0})

	NewRotationSystem().Update(16, w)

	pos, _ := w.PositionOf(ship)
	if pos.Angle != 123 {
		t.Fatalf("near-zero speed snapped angle to %v, want the last heading 123", pos.Angle)
	}
}
