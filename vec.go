// pathrec - a 2D graphics path construction and transformation engine
// Copyright (C) 2026  pathrec contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pathrec

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is an integer point in device coordinates. It has no analogue in
// seehuhn.de/go/geom/vec, which models only floating-point user-space
// vectors; the device grid this engine rounds onto is specific to this
// package.
type Point struct {
	X, Y int
}

// Pointf is a floating-point point, used wherever the spec requires
// sub-pixel precision before a final rounding to device coordinates
// (logical coordinates, arc angle computation, glyph fixed-point math).
// It is seehuhn.de/go/geom/vec.Vec2, the same user-space vector type
// raster.go/stroke.go use throughout (Add/Sub/Mul/Dot/Length are
// inherited from vec.Vec2 directly; Go forbids attaching new methods to
// a type from another package, so RoundPoint and NormalOf below are
// ordinary functions rather than further methods on Pointf).
type Pointf = vec.Vec2

// RoundPoint converts p to device coordinates using round-half-away-
// from-zero, the rounding rule spec.md §9 requires for widener offsets
// and arc control points ("Rounding uses 'away from zero' for the
// widener's offsets").
func RoundPoint(p Pointf) Point {
	return Point{roundAway(p.X), roundAway(p.Y)}
}

// NormalOf returns p rotated 90° counter-clockwise; the result has the
// same length as p, so it is a unit vector only when p is one.
func NormalOf(p Pointf) Pointf { return Pointf{X: -p.Y, Y: p.X} }

func roundAway(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

// roundHalfUp implements the "round half up" rule spec.md §9 mandates
// for fixed-point glyph coordinates: value + (fract >= 0.5 ? 1 : 0).
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// ToPointf converts an integer device point to floating point.
func (p Point) ToPointf() Pointf { return Pointf{X: float64(p.X), Y: float64(p.Y)} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
