/*
Package geom
File: geom.go
Description:
    Pure intersection helpers shared by the collision systems. No state, no
    allocation.
*/

package geom

import "math"

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// AABBIntersect is the standard separating-axis test for two boxes.
func AABBIntersect(a, b Box) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// CircleIntersect reports whether two circles overlap.
func CircleIntersect(x1, y1, r1, x2, y2, r2 float64) bool {
	return math.Hypot(x2-x1, y2-y1) < r1+r2
}

// ShipVsAsteroid tests a rectangular ship against a round obstacle. The ship
// box is reduced to a circle (center = box center, radius = half the larger
// side) so the test is forgiving and independent of the ship's rotation.
// Squared-distance comparison, no sqrt.
func ShipVsAsteroid(ship Box, asteroidX, asteroidY, asteroidRadius float64) bool {
	shipRadius := math.Max(ship.W, ship.H) / 2
	dx := asteroidX - ship.CenterX()
	dy := asteroidY - ship.CenterY()
	reach := asteroidRadius + shipRadius
	return dx*dx+dy*dy < reach*reach
}
