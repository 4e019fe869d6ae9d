/*
Package systems
File: capsules.go
Description:
    Collectible data capsules, the win-condition mechanic. On pickup the
    capsule yields one fact drawn uniformly at random from its list, the
    capsule entity is removed from the World, and collected/complete events
    feed the narrative layer.

    At most one capsule is collected per tick, system-wide. Capsules can
    visually overlap, and without the early return a single flyby would pop
    two pickups in the same frame.
*/

package systems

import (
	"math/rand"
	"time"

	"github.com/astrocademy/voyager-server/internal/geom"
	"github.com/astrocademy/voyager-server/internal/sim"
)

// CapsuleZone registers one collectible: its stable id, the backing entity,
// the pickup box size, and an optional synchronous callback.
type CapsuleZone struct {
	ID        string
	Entity    sim.EntityID
	Width     float64
	Height    float64
	OnCollect func(fact *sim.Fact)
}

// CapsulesSystem tracks zones in registration order plus the collected set.
// The RNG is injected so tests can pin the fact draw.
type CapsulesSystem struct {
	bus        *sim.EventBus
	rng        *rand.Rand
	shipWidth  float64
	shipHeight float64

	zones     []CapsuleZone
	collected map[string]bool
	facts     []sim.Fact // collection order
}

func NewCapsulesSystem(bus *sim.EventBus, rng *rand.Rand, shipWidth, shipHeight float64) *CapsulesSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CapsulesSystem{
		bus:        bus,
		rng:        rng,
		shipWidth:  shipWidth,
		shipHeight: shipHeight,
		collected:  make(map[string]bool),
	}
}

// RegisterCapsule adds a zone. Registration order decides which of two
// overlapping capsules wins a contested tick.
func (s *CapsulesSystem) RegisterCapsule(z CapsuleZone) {
	s.zones = append(s.zones, z)
}

// CollectedFacts returns a copy of the facts gathered so far, in order.
func (s *CapsulesSystem) CollectedFacts() []sim.Fact {
	out := make([]sim.Fact, len(s.facts))
	copy(out, s.facts)
	return out
}

// CollectedCount reports how many capsules have been picked up.
func (s *CapsulesSystem) CollectedCount() int { return len(s.collected) }

// Total reports how many capsules were registered.
func (s *CapsulesSystem) Total() int { return len(s.zones) }

func (s *CapsulesSystem) Update(dt float64, w *sim.World) {
	for _, ship := range w.EntitiesWith(sim.KindPosition, sim.KindFuel, sim.KindSprite) {
		pos, _ := w.PositionOf(ship)
		shipBox := geom.Box{X: pos.X, Y: pos.Y, W: s.shipWidth, H: s.shipHeight}

		for _, z := range s.zones {
			if s.collected[z.ID] {
				continue
			}
			zonePos, alive := w.PositionOf(z.Entity)
			if !alive {
				continue
			}
			zoneBox := geom.Box{X: zonePos.X, Y: zonePos.Y, W: z.Width, H: z.Height}
			if !geom.AABBIntersect(shipBox, zoneBox) {
				continue
			}
			s.collect(z, w)
			return // one capsule per tick, system-wide
		}
	}
}

func (s *CapsulesSystem) collect(z CapsuleZone, w *sim.World) {
	s.collected[z.ID] = true

	var fact *sim.Fact
	if capsule, ok := w.CapsuleOf(z.Entity); ok && len(capsule.Facts) > 0 {
		drawn := capsule.Facts[s.rng.Intn(len(capsule.Facts))]
		s.facts = append(s.facts, drawn)
		fact = &drawn
	}

	w.RemoveEntity(z.Entity)

	if z.OnCollect != nil {
		z.OnCollect(fact)
	}

	s.bus.Emit(sim.TopicCapsuleCollected, sim.CapsuleCollectedEvent{
		CapsuleID: z.ID,
		Fact:      fact,
		Collected: len(s.collected),
		Total:     len(s.zones),
	})

	if len(s.collected) == len(s.zones) {
		s.bus.Emit(sim.TopicCapsulesComplete, sim.CapsulesCompleteEvent{Facts: s.CollectedFacts()})
	}
}
