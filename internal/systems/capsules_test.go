package systems

import (
	"math/rand"
	"testing"

	"github.com/astrocademy/voyager-server/internal/sim"
)

func newCapsuleFixture(t *testing.T) (*sim.World, *sim.EventBus, *CapsulesSystem, sim.EntityID) {
	t.Helper()
	w := sim.NewWorld()
	bus := sim.NewEventBus()
	sys := NewCapsulesSystem(bus, rand.New(rand.NewSource(1)), 10, 10)

	ship := w.CreateEntity()
	w.AddComponent(ship, &sim.Position{X: 0, Y: 0})
	w.AddComponent(ship, &sim.Fuel{Current: 100, Max: 100})
	w.AddComponent(ship, &sim.Sprite{Key: "ship"})
	return w, bus, sys, ship
}

func addCapsule(w *sim.World, sys *CapsulesSystem, id string, x, y float64, facts ...sim.Fact) sim.EntityID {
	entity := w.CreateEntity()
	w.AddComponent(entity, &sim.Position{X: x, Y: y})
	w.AddComponent(entity, &sim.Sprite{Key: "capsule"})
	w.AddComponent(entity, &sim.DataCapsule{CapsuleID: id, Facts: facts})
	sys.RegisterCapsule(CapsuleZone{ID: id, Entity: entity, Width: 10, Height: 10})
	return entity
}

func TestCapsuleCollection(t *testing.T) {
	w, bus, sys, _ := newCapsuleFixture(t)
	fact := sim.Fact{ID: "fact-1", Text: "orbital mechanics", QuestionID: "q1"}
	entity := addCapsule(w, sys, "capsule-1", 5, 5, fact)

	var got sim.CapsuleCollectedEvent
	collected := 0
	bus.On(sim.TopicCapsuleCollected, func(payload any) {
		collected++
		got = payload.(sim.CapsuleCollectedEvent)
	})

	callbackFacts := 0
	sys.zones[0].OnCollect = func(f *sim.Fact) {
		callbackFacts++
		if f == nil || f.ID != fact.ID {
			t.Fatalf("callback fact = %v, want %q", f, fact.ID)
		}
	}

	sys.Update(16, w)

	if collected != 1 {
		t.Fatalf("collected events = %d, want 1", collected)
	}
	if got.CapsuleID != "capsule-1" || got.Collected != 1 || got.Total != 1 {
		t.Fatalf("event = %+v, want capsule-1 1/1", got)
	}
	if got.Fact == nil || got.Fact.ID != "fact-1" {
		t.Fatalf("event fact = %v, want fact-1", got.Fact)
	}
	if callbackFacts != 1 {
		t.Fatalf("on-collect callback ran %d times, want 1", callbackFacts)
	}
	if w.HasComponent(entity, sim.KindDataCapsule) {
		t.Fatal("capsule entity still in the World after collection")
	}
}

// Two overlapping capsules yield exactly one pickup per tick.
func TestCapsuleExclusivityPerTick(t *testing.T) {
	w, bus, sys, _ := newCapsuleFixture(t)
	addCapsule(w, sys, "capsule-a", 2, 2, sim.Fact{ID: "fa"})
	addCapsule(w, sys, "capsule-b", 4, 4, sim.Fact{ID: "fb"})

	collected := 0
	bus.On(sim.TopicCapsuleCollected, func(any) { collected++ })

	sys.Update(16, w)
	if collected != 1 {
		t.Fatalf("tick 1 collected %d capsules, want 1", collected)
	}

	sys.Update(16, w)
	if collected != 2 {
		t.Fatalf("tick 2 total = %d, want 2", collected)
	}
}

func TestCapsulesCompleteEventCarriesFactsInOrder(t *testing.T) {
	w, bus, sys, _ := newCapsuleFixture(t)
	addCapsule(w, sys, "capsule-a", 2, 2, sim.Fact{ID: "fa"})
	addCapsule(w, sys, "capsule-b", 4, 4, sim.Fact{ID: "fb"})

	var complete *sim.CapsulesCompleteEvent
	bus.On(sim.TopicCapsulesComplete, func(payload any) {
		ev := payload.(sim.CapsulesCompleteEvent)
		complete = &ev
	})

	sys.Update(16, w)
	if complete != nil {
		t.Fatal("complete event fired before the last capsule")
	}

	sys.Update(16, w)
	if complete == nil {
		t.Fatal("complete event missing after the last capsule")
	}
	if len(complete.Facts) != 2 || complete.Facts[0].ID != "fa" || complete.Facts[1].ID != "fb" {
		t.Fatalf("complete facts = %+v, want [fa fb] in collection order", complete.Facts)
	}
}

func TestCapsuleWithoutFactsStillCollects(t *testing.T) {
	w, bus, sys, _ := newCapsuleFixture(t)
	addCapsule(w, sys, "capsule-bare", 5, 5)

	var got sim.CapsuleCollectedEvent
	bus.On(sim.TopicCapsuleCollected, func(payload any) {
		got = payload.(sim.CapsuleCollectedEvent)
	})

	sys.Update(16, w)

	if got.CapsuleID != "capsule-bare" {
		t.Fatalf("empty capsule not collected: %+v", got)
	}
	if got.Fact != nil {
		t.Fatalf("empty capsule produced fact %v", got.Fact)
	}
	if sys.CollectedCount() != 1 {
		t.Fatalf("collected count = %d, want 1", sys.CollectedCount())
	}
	if len(sys.CollectedFacts()) != 0 {
		t.Fatalf("fact log = %v for factless capsule, want empty", sys.CollectedFacts())
	}
}

func TestCapsuleIgnoredOnceCollected(t *testing.T) {
	w, bus, sys, _ := newCapsuleFixture(t)
	addCapsule(w, sys, "capsule-1", 5, 5, sim.Fact{ID: "f"})

	collected := 0
	bus.On(sim.TopicCapsuleCollected, func(any) { collected++ })

	for i := 0; i < 5; i++ {
		sys.Update(16, w)
	}

	if collected != 1 {
		t.Fatalf("capsule collected %d times, want 1", collected)
	}
}
