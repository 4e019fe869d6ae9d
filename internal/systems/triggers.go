/*
Package systems
File: triggers.go
Description:
    Static trigger zones. A refuel zone tops up any overlapping ship every
    tick it remains inside; there is no cooldown because Refuel clamps at the
    tank max, so re-triggering is idempotent.
*/

package systems

import (
	"github.com/astrocademy/voyager-server/internal/geom"
	"github.com/astrocademy/voyager-server/internal/sim"
)

// TriggerKind selects what a zone does on overlap.
type TriggerKind string

const TriggerRefuel TriggerKind = "refuel"

// Trigger is a fixed zone in stage space.
type Trigger struct {
	Kind   TriggerKind
	Box    geom.Box
	Amount float64 // refuel units applied per overlapping tick
}

// TriggersSystem tests every ship (position + fuel + sprite) against every
// registered zone.
type TriggersSystem struct {
	fuel       *FuelSystem
	shipWidth  float64
	shipHeight float64
	triggers   []Trigger
}

func NewTriggersSystem(fuel *FuelSystem, shipWidth, shipHeight float64) *TriggersSystem {
	return &TriggersSystem{fuel: fuel, shipWidth: shipWidth, shipHeight: shipHeight}
}

// RegisterTrigger appends a zone. Zones keep registration order.
func (s *TriggersSystem) RegisterTrigger(t Trigger) {
	s.triggers = append(s.triggers, t)
}

func (s *TriggersSystem) Update(dt float64, w *sim.World) {
	for _, id := range w.EntitiesWith(sim.KindPosition, sim.KindFuel, sim.KindSprite) {
		pos, _ := w.PositionOf(id)
		shipBox := geom.Box{X: pos.X, Y: pos.Y, W: s.shipWidth, H: s.shipHeight}
		for _, t := range s.triggers {
			if !geom.AABBIntersect(shipBox, t.Box) {
				continue
			}
			if t.Kind == TriggerRefuel {
				s.fuel.Refuel(w, id, t.Amount)
			}
		}
	}
}
