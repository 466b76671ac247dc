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

// CubicFlattener is the external collaborator spec.md §4.4 requires:
// given the four control points of one cubic Bezier segment, it returns
// the polyline approximating it, including both endpoints. This engine
// does not implement curve subdivision itself; it is supplied by the
// embedder (typically backed by Wang's-formula adaptive subdivision,
// as seehuhn-go-render's raster.go does for its own rasterizer).
type CubicFlattener interface {
	FlattenCubic(p0, p1, p2, p3 Pointf) []Pointf
}

// Flatten converts every Bezier run in path to a run of Line entries,
// using flattener to approximate each cubic segment, and leaves Move
// and Line entries untouched (spec.md §4.4). The first point flattener
// returns for a segment is assumed to coincide with the segment's start
// (already present in the path) and is discarded; the remaining points
// are appended as Line entries. The Close flag on a flattened segment's
// final control point is propagated to the corresponding final Line
// entry.
func Flatten(path *Path, flattener CubicFlattener) (*Path, error) {
	out := NewPath()
	n := path.Len()
	i := 0
	for i < n {
		pt := path.Point(i)
		tag := path.Tag(i)
		switch tag.Base() {
		case Move:
			out.append(pt, Move)
			out.setCurrentPos(pt)
			i++
		case Line:
			out.append(pt, tag)
			out.setCurrentPos(pt)
			i++
		case Bezier:
			if i+2 >= n || path.Tag(i+1).Base() != Bezier || path.Tag(i+2).Base() != Bezier {
				return nil, opErr("Flatten", ErrInvalidParameter)
			}
			start := out.CurrentPosition()
			p1 := pt
			p2 := path.Point(i + 1)
			p3 := path.Point(i + 2)
			closed := path.Tag(i + 2).Closed()

			poly := flattener.FlattenCubic(start.ToPointf(), p1.ToPointf(), p2.ToPointf(), p3.ToPointf())
			if len(poly) > 1 {
				poly = poly[1:]
			}
			for j, fp := range poly {
				lineTag := Line
				if closed && j == len(poly)-1 {
					lineTag |= Close
				}
				devPt := RoundPoint(fp)
				out.append(devPt, lineTag)
				out.setCurrentPos(devPt)
			}
			i += 3
		default:
			return nil, opErr("Flatten", ErrInvalidParameter)
		}
	}
	return out, nil
}
