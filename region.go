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

import "sort"

// Region is the opaque result of a RegionConstructor's Build call; this
// package never inspects it, it only passes it back to the caller
// (spec.md §4.6).
type Region any

// RegionConstructor is the external collaborator that turns a set of
// polygon vertex rings plus a fill rule into a concrete Region. points
// is the concatenation of every ring's vertices; counts gives each
// ring's vertex count in order, summing to len(points). Each ring is
// implicitly closed (its last vertex connects back to its first).
type RegionConstructor interface {
	Build(points []Point, counts []int, fill FillMode) (Region, error)
}

// ToRegion partitions path at its Move entries into polygon rings and
// hands them to constructor, per spec.md §4.6. An empty path returns a
// nil Region and no error. path must already be flattened (Bezier
// entries fail with ErrInvalidParameter), matching
// original_source/dlls/gdi32/path.c's requirement that PATH_FlattenPath
// runs before PATH_FillRegion builds the scan converter's edge table.
func ToRegion(path *Path, fill FillMode, constructor RegionConstructor) (Region, error) {
	if path.Len() == 0 {
		return nil, nil
	}
	subpaths, err := partitionSubpaths(path)
	if err != nil {
		return nil, opErr("ToRegion", err)
	}

	var points []Point
	var counts []int
	for _, sp := range subpaths {
		if len(sp.points) == 0 {
			continue
		}
		points = append(points, sp.points...)
		counts = append(counts, len(sp.points))
	}
	if len(counts) == 0 {
		return nil, nil
	}
	return constructor.Build(points, counts, fill)
}

// Span is one horizontal run of a ScanlineRegion: the half-open device
// row [Y, Y+1) between X0 (inclusive) and X1 (exclusive).
type Span struct {
	Y, X0, X1 int
}

// ScanlineRegion is a reference Region representation: a sorted list of
// horizontal spans, the same shape as a Win32 HRGN's internal
// rectangle list.
type ScanlineRegion struct {
	Spans []Span
}

// ScanlineRegionConstructor is a reference RegionConstructor
// implementation, integrating polygon edges scanline by scanline under
// either the nonzero-winding or even-odd fill rule. Grounded on the
// winding-accumulation arithmetic of seehuhn-go-render's
// integrateScanlineNonZero/integrateScanlineEvenOdd, adapted from
// producing pixel coverage to producing discrete spans.
type ScanlineRegionConstructor struct{}

type regionEdge struct {
	y0, y1 float64
	x0, x1 float64
	dir    int
}

func (ScanlineRegionConstructor) Build(points []Point, counts []int, fill FillMode) (Region, error) {
	if len(points) == 0 {
		return nil, nil
	}

	var edges []regionEdge
	minY, maxY := points[0].Y, points[0].Y
	idx := 0
	for _, n := range counts {
		ring := points[idx : idx+n]
		idx += n
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			if a.Y < minY {
				minY = a.Y
			}
			if a.Y > maxY {
				maxY = a.Y
			}
			if a.Y == b.Y {
				continue // horizontal edges never cross a scanline
			}
			dir := 1
			y0, y1 := float64(a.Y), float64(b.Y)
			x0, x1 := float64(a.X), float64(b.X)
			if y0 > y1 {
				y0, y1 = y1, y0
				x0, x1 = x1, x0
				dir = -1
			}
			edges = append(edges, regionEdge{y0: y0, y1: y1, x0: x0, x1: x1, dir: dir})
		}
	}
	if len(edges) == 0 {
		return &ScanlineRegion{}, nil
	}

	type crossing struct {
		x   float64
		dir int
	}

	var spans []Span
	for y := minY; y < maxY; y++ {
		scanY := float64(y) + 0.5
		var xs []crossing
		for _, e := range edges {
			if scanY < e.y0 || scanY >= e.y1 {
				continue
			}
			t := (scanY - e.y0) / (e.y1 - e.y0)
			x := e.x0 + t*(e.x1-e.x0)
			xs = append(xs, crossing{x: x, dir: e.dir})
		}
		if len(xs) == 0 {
			continue
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

		winding := 0
		inside := false
		spanStart := 0.0
		for _, c := range xs {
			wasInside := inside
			switch fill {
			case FillWinding:
				winding += c.dir
				inside = winding != 0
			default: // FillAlternate
				inside = !inside
			}
			if !wasInside && inside {
				spanStart = c.x
			} else if wasInside && !inside {
				spans = append(spans, Span{Y: y, X0: roundAway(spanStart), X1: roundAway(c.x)})
			}
		}
	}
	return &ScanlineRegion{Spans: spans}, nil
}
