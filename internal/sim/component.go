/*
Package sim
File: component.go
Description:
    Defines the closed set of component variants that can be attached to an
    entity. Each variant carries pure data; behavior lives in the systems
    package. The string Kind discriminator doubles as the key of the World's
    reverse index.
*/

package sim

// Kind discriminates the component variants. The values are stable strings
// because the client protocol and the stage config refer to them by name.
type Kind string

const (
	KindPosition    Kind = "position"
	KindVelocity    Kind = "velocity"
	KindFuel        Kind = "fuel"
	KindSprite      Kind = "sprite"
	KindDataCapsule Kind = "data-capsule"
)

// Component is implemented by every variant. Components are stored and
// mutated as pointers; the World is their only owner.
type Component interface {
	Kind() Kind
}

// Position is a world-space location in pixels. Angle is in degrees,
// 0 = facing up, increasing clockwise (sprite artwork convention).
type Position struct {
	X     float64
	Y     float64
	Angle float64
}

func (*Position) Kind() Kind { return KindPosition }

// Velocity is measured in pixels per second along each axis.
type Velocity struct {
	VX float64
	VY float64
}

func (*Velocity) Kind() Kind { return KindVelocity }

// Fuel tracks the tank level. Current stays within [0, Max]; writers clamp
// rather than reject.
type Fuel struct {
	Current float64
	Max     float64
}

func (*Fuel) Kind() Kind { return KindFuel }

// Sprite holds an opaque presentation lookup key. The simulation only ever
// compares it for identity.
type Sprite struct {
	Key string
}

func (*Sprite) Kind() Kind { return KindSprite }

// Fact is one piece of educational content carried by a data capsule.
type Fact struct {
	ID         string
	Text       string
	QuestionID string
}

// DataCapsule is a collectible payload. Facts are immutable once attached.
type DataCapsule struct {
	CapsuleID string
	Facts     []Fact
}

func (*DataCapsule) Kind() Kind { return KindDataCapsule }
