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

import "iter"

// Tag identifies the kind of a path entry. The bit layout matches
// spec.md §6 exactly so that callers translating from a Win32-shaped
// host can reuse their own constants directly.
type Tag byte

const (
	Close  Tag = 1 // additive flag, combined with Line or Bezier
	Line   Tag = 2
	Bezier Tag = 4
	Move   Tag = 6
)

// Base returns the tag with the Close flag stripped.
func (t Tag) Base() Tag { return t &^ Close }

// Closed reports whether the Close flag is set.
func (t Tag) Closed() bool { return t&Close != 0 }

// initialCapacity is the first allocation size for a new Path's buffers,
// matching original_source/dlls/gdi32/path.c's NUM_ENTRIES_INITIAL.
const initialCapacity = 16

// Path is a growable, tagged sequence of device-space points. It is the
// central data structure of spec.md §3: entries live in two parallel
// slices (points, tags) so the points slice is directly consumable by a
// RegionConstructor without copying.
//
// Structural invariants (maintained by the recording operations in
// recorder.go, shapes.go and glyph.go; the low-level append/appendMany
// in this file do not check them, checkInvariants does):
//   - if non-empty, the first entry has tag Move;
//   - Bezier tags occur in consecutive runs whose length (ignoring the
//     Close flag) is a multiple of 3.
//
// A Path is not safe for concurrent use; per spec.md §5 it is exclusively
// owned by a single device context.
type Path struct {
	points []Point
	tags   []Tag

	current   Point // current position (device coords)
	newStroke bool  // new-stroke latch, see recorder.go
}

// NewPath returns an empty path with the standard initial capacity.
func NewPath() *Path {
	p := &Path{}
	p.reserve(initialCapacity)
	return p
}

// Len returns the number of entries in the path.
func (p *Path) Len() int { return len(p.tags) }

// Point returns the device-space point at index i.
func (p *Path) Point(i int) Point { return p.points[i] }

// Tag returns the tag at index i.
func (p *Path) Tag(i int) Tag { return p.tags[i] }

// Points exposes the underlying point slice. Callers (such as a
// RegionConstructor) must not retain it past the next mutation.
func (p *Path) Points() []Point { return p.points }

// Tags exposes the underlying tag slice, subject to the same aliasing
// rule as Points.
func (p *Path) Tags() []Tag { return p.tags }

// CurrentPosition returns the path's current position, as defined in
// spec.md §3.
func (p *Path) CurrentPosition() Point { return p.current }

// reserve grows the points/tags slices so that at least n more entries
// can be appended without reallocating, doubling capacity as needed
// (spec.md §4.1).
func (p *Path) reserve(n int) {
	need := len(p.tags) + n
	if cap(p.tags) >= need {
		return
	}
	newCap := cap(p.tags)
	if newCap == 0 {
		newCap = initialCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	points := make([]Point, len(p.points), newCap)
	copy(points, p.points)
	tags := make([]Tag, len(p.tags), newCap)
	copy(tags, p.tags)
	p.points = points
	p.tags = tags
}

// append adds a single tagged point, amortized O(1).
func (p *Path) append(pt Point, tag Tag) {
	p.reserve(1)
	p.points = append(p.points, pt)
	p.tags = append(p.tags, tag)
}

// appendMany adds pts as a run tagged with tag, returning the index of
// the first appended entry so the caller can fix up its tag (the
// polygon/polyline idiom of spec.md §4.1: append as Line, then retag
// index 0 as Move).
func (p *Path) appendMany(pts []Point, tag Tag) int {
	p.reserve(len(pts))
	start := len(p.tags)
	for _, pt := range pts {
		p.points = append(p.points, pt)
		p.tags = append(p.tags, tag)
	}
	return start
}

// retag overwrites the tag at index i, preserving any Close flag already
// set there.
func (p *Path) retag(i int, tag Tag) {
	closed := p.tags[i].Closed()
	if closed {
		tag |= Close
	}
	p.tags[i] = tag
}

// closeLast sets the Close flag on the last entry. Precondition: the
// path is non-empty; violating it is a programmer error, not a
// user-visible failure (spec.md §7), so it panics.
func (p *Path) closeLast() {
	if len(p.tags) == 0 {
		panic("pathrec: closeLast on empty path")
	}
	p.tags[len(p.tags)-1] |= Close
}

// setCurrentPos updates the stored current position.
func (p *Path) setCurrentPos(pt Point) { p.current = pt }

// Entries returns an iterator over the path's (point, tag) pairs, the Go
// analogue of the enumerator the original implementation exposes to its
// graphics driver (see SPEC_FULL.md §4).
func (p *Path) Entries() iter.Seq2[Point, Tag] {
	return func(yield func(Point, Tag) bool) {
		for i := range p.tags {
			if !yield(p.points[i], p.tags[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the path, used by SaveDC/RestoreDC
// (spec.md §3 "Lifecycle").
func (p *Path) Clone() *Path {
	c := &Path{
		points:    make([]Point, len(p.points)),
		tags:      make([]Tag, len(p.tags)),
		current:   p.current,
		newStroke: p.newStroke,
	}
	copy(c.points, p.points)
	copy(c.tags, p.tags)
	return c
}

// checkInvariants validates the structural invariants of spec.md §3. It
// is used by tests and is not part of the public API's error-signalling
// path: violations indicate a bug in this package, not in caller input.
func (p *Path) checkInvariants() error {
	if len(p.tags) == 0 {
		return nil
	}
	if p.tags[0].Base() != Move {
		return opErr("checkInvariants", ErrInvalidParameter)
	}
	run := 0
	for _, t := range p.tags {
		if t.Base() == Bezier {
			run++
		} else {
			if run%3 != 0 {
				return opErr("checkInvariants", ErrInvalidParameter)
			}
			run = 0
		}
	}
	if run%3 != 0 {
		return opErr("checkInvariants", ErrInvalidParameter)
	}
	return nil
}
