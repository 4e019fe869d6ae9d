/*
Package systems
File: rotation.go
Description: Points each moving entity along its velocity vector.
*/

package systems

import (
	"math"

	"github.com/astrocademy/voyager-server/internal/sim"
)

// speedEpsilon is the dead zone below which an entity keeps its last
// heading. Snapping to a new angle at near-zero speed makes the sprite
// jitter whenever input briefly zeroes velocity.
const speedEpsilon = 0.01

// RotationSystem derives the facing angle from velocity. The +90 offset
// aligns atan2's convention with sprite artwork that faces up at angle 0.
type RotationSystem struct{}

func NewRotationSystem() *RotationSystem { return &RotationSystem{} }

func (s *RotationSystem) Update(dt float64, w *sim.World) {
	w.ForEachEntity([]sim.Kind{sim.KindPosition, sim.KindVelocity}, func(id sim.EntityID) {
		pos, _ := w.PositionOf(id)
		vel, _ := w.VelocityOf(id)
		if math.Hypot(vel.VX, vel.VY) <= speedEpsilon {
			return
		}
		angle := math.Atan2(vel.VY, vel.VX)*180/math.Pi + 90
		angle = math.Mod(angle, 360)
		if angle < 0 {
			angle += 360
		}
		pos.Angle = angle
	})
}
