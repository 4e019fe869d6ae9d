/*
Package systems
File: movement.go
Description: Velocity integration. Runs before the collision systems so a
knockback that zeroes velocity in the same tick is not overwritten.
*/

package systems

import "github.com/astrocademy/voyager-server/internal/sim"

// MovementSystem advances position by velocity for every entity carrying
// both components.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

func (s *MovementSystem) Update(dt float64, w *sim.World) {
	seconds := dt / 1000
	w.ForEachEntity([]sim.Kind{sim.KindPosition, sim.KindVelocity}, func(id sim.EntityID) {
		pos, _ := w.PositionOf(id)
		vel, _ := w.VelocityOf(id)
		pos.X += vel.VX * seconds
		pos.Y += vel.VY * seconds
	})
}
