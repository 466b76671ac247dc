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

import "math"

// widenSeg is one piece of a widened boundary: a straight line, or (for
// round joins/caps) a cubic Bézier arc, always described by explicit
// from/to endpoints so it can be reversed in place.
type widenSeg struct {
	from, to Pointf
	arc      bool
	c1, c2   Pointf
}

// Widen converts a flattened path (Move/Line entries only — Bezier runs
// must already have been passed through Flatten) into the closed
// polygon(s) outlining pen's stroke, per spec.md §4.5. Adapted from
// seehuhn-go-render's raster.go stroke widener, which produces pixel
// coverage from the same join/cap geometry; here the geometry is
// emitted as Path entries instead.
//
// Cosmetic pens are not supported and fail with ErrCanNotComplete,
// matching original_source/dlls/gdi32/path.c's PATH_WidenPath. A pen
// width of zero or less is clamped to one device unit (SPEC_FULL.md
// §4's "zero-width pen clamp").
func Widen(path *Path, pen Pen, miterLimit float64) (*Path, error) {
	if pen.Style.IsCosmetic() {
		return nil, opErr("Widen", ErrCanNotComplete)
	}
	width := pen.Width
	if width <= 0 {
		width = 1
	}
	wIn := float64(width / 2)
	wOut := float64(width) - wIn

	subpaths, err := partitionSubpaths(path)
	if err != nil {
		return nil, err
	}

	out := NewPath()
	for _, sp := range subpaths {
		ptsF := dedupPoints(sp.points)
		if sp.closed && len(ptsF) > 1 && ptsF[0] == ptsF[len(ptsF)-1] {
			ptsF = ptsF[:len(ptsF)-1]
		}
		if len(ptsF) < 2 {
			continue
		}
		if sp.closed {
			widenClosedSubpath(out, ptsF, wIn, wOut, pen.Style, miterLimit)
		} else {
			widenOpenSubpath(out, ptsF, wIn, wOut, pen.Style, miterLimit)
		}
	}
	return out, nil
}

// subpathRaw is one Move-delimited run extracted from the input path.
type subpathRaw struct {
	points []Point
	closed bool
}

// partitionSubpaths splits path at its Move entries. A Bezier entry
// fails with ErrInvalidParameter: Widen requires its input already
// flattened.
func partitionSubpaths(path *Path) ([]subpathRaw, error) {
	var out []subpathRaw
	var cur subpathRaw
	started := false
	n := path.Len()
	for i := 0; i < n; i++ {
		tag := path.Tag(i)
		pt := path.Point(i)
		switch tag.Base() {
		case Move:
			if started {
				out = append(out, cur)
			}
			cur = subpathRaw{points: []Point{pt}}
			started = true
		case Line:
			if !started {
				return nil, opErr("Widen", ErrInvalidParameter)
			}
			cur.points = append(cur.points, pt)
			if tag.Closed() {
				cur.closed = true
			}
		default:
			return nil, opErr("Widen", ErrInvalidParameter)
		}
	}
	if started {
		out = append(out, cur)
	}
	return out, nil
}

func dedupPoints(pts []Point) []Pointf {
	out := make([]Pointf, 0, len(pts))
	for _, p := range pts {
		pf := p.ToPointf()
		if len(out) > 0 && out[len(out)-1] == pf {
			continue
		}
		out = append(out, pf)
	}
	return out
}

func normalizeVec(p Pointf) Pointf {
	l := p.Length()
	if l == 0 {
		return Pointf{}
	}
	return p.Mul(1 / l)
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// lineIntersect returns the intersection of the line through p1 with
// direction d1 and the line through p2 with direction d2.
func lineIntersect(p1, d1, p2, d2 Pointf) (Pointf, bool) {
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < 1e-9 {
		return Pointf{}, false
	}
	t := ((p2.X-p1.X)*d2.Y - (p2.Y-p1.Y)*d2.X) / denom
	return p1.Add(d1.Mul(t)), true
}

// cubicArcPoints returns the control points and end point of a single
// cubic Bézier approximating the circular arc of the given radius
// centred at center, from angle a0 to a1 (|a1-a0| <= pi/2). Uses the
// same half-angle construction as arcPart in shapes.go, applied to a
// true circle rather than an arbitrary ellipse.
func cubicArcPoints(center Pointf, radius, a0, a1 float64) (c1, c2, end Pointf) {
	half := (a1 - a0) / 2
	x0, y0 := math.Cos(a0), math.Sin(a0)
	x3, y3 := math.Cos(a1), math.Sin(a1)
	var x1, y1, x2, y2 float64
	if math.Abs(half) > 1e-8 {
		a := 4.0 / 3.0 * (1 - math.Cos(half)) / math.Sin(half)
		x1, y1 = x0-a*y0, y0+a*x0
		x2, y2 = x3+a*y3, y3-a*x3
	} else {
		x1, y1, x2, y2 = x0, y0, x3, y3
	}
	c1 = center.Add(Pointf{X: x1 * radius, Y: y1 * radius})
	c2 = center.Add(Pointf{X: x2 * radius, Y: y2 * radius})
	end = center.Add(Pointf{X: x3 * radius, Y: y3 * radius})
	return c1, c2, end
}

// arcSegsBetween builds the cubic Bézier run(s) approximating the
// circular arc of radius centred at center, sweeping from a0 to a1 in
// chunks of at most pi/2, in the direction given by the sign of a1-a0.
func arcSegsBetween(center Pointf, radius, a0, a1 float64) []widenSeg {
	var segs []widenSeg
	step := math.Pi / 2
	if a1 < a0 {
		step = -step
	}
	angle := a0
	cur := center.Add(Pointf{X: radius * math.Cos(a0), Y: radius * math.Sin(a0)})
	for angle != a1 {
		var next float64
		if step > 0 {
			next = math.Min(angle+step, a1)
		} else {
			next = math.Max(angle+step, a1)
		}
		c1, c2, end := cubicArcPoints(center, radius, angle, next)
		segs = append(segs, widenSeg{from: cur, to: end, arc: true, c1: c1, c2: c2})
		cur = end
		angle = next
	}
	return segs
}

// buildSideSegs offsets ptsF by dist along each segment's left normal
// (dist > 0 offsets left of travel, dist < 0 offsets right), joining
// consecutive segments per join at vertices on the convex side of the
// turn, and, on the concave side, connecting the two independently
// computed perpendicular-offset points with a straight line — no join
// style applies there. Grounded on original_source/dlls/gdi32/path.c's
// PATH_WidenPath "Inside angle points" block, which unconditionally
// emits exactly two perpendicular-offset PT_LINETO points on the inside
// of a turn regardless of join style; it never computes a line-line
// intersection.
func buildSideSegs(ptsF []Pointf, dist float64, join PenStyle, miterLimit float64, closed bool) (start Pointf, segs []widenSeg, end Pointf) {
	n := len(ptsF)
	nSegs := n - 1
	if closed {
		nSegs = n
	}
	dirs := make([]Pointf, nSegs)
	normals := make([]Pointf, nSegs)
	oStart := make([]Pointf, nSegs)
	oEnd := make([]Pointf, nSegs)
	for i := 0; i < nSegs; i++ {
		a := ptsF[i]
		b := ptsF[(i+1)%n]
		d := normalizeVec(b.Sub(a))
		dirs[i] = d
		nrm := NormalOf(d)
		normals[i] = nrm
		off := nrm.Mul(dist)
		oStart[i] = a.Add(off)
		oEnd[i] = b.Add(off)
	}

	isLeft := dist > 0

	for i := 0; i < nSegs; i++ {
		segs = append(segs, widenSeg{from: oStart[i], to: oEnd[i]})
		hasNext := i < nSegs-1 || closed
		if !hasNext {
			continue
		}
		nextIdx := (i + 1) % nSegs
		cross := dirs[i].X*dirs[nextIdx].Y - dirs[i].Y*dirs[nextIdx].X
		if math.Abs(cross) < 1e-9 {
			continue
		}
		var convex bool
		if isLeft {
			convex = cross < 0
		} else {
			convex = cross > 0
		}
		vertex := ptsF[(i+1)%n]

		if !convex {
			// PATH_WidenPath's "Inside angle points": two unconditional
			// perpendicular-offset points, joined by a straight line,
			// with no join-style dispatch.
			segs = append(segs, widenSeg{from: oEnd[i], to: oStart[nextIdx]})
			continue
		}

		switch join {
		case JoinBevel:
			segs = append(segs, widenSeg{from: oEnd[i], to: oStart[nextIdx]})
		case JoinMiter:
			if ip, ok := lineIntersect(oEnd[i], dirs[i], oStart[nextIdx], dirs[nextIdx]); ok &&
				ip.Sub(vertex).Length() <= miterLimit*math.Abs(dist) {
				segs = append(segs, widenSeg{from: oEnd[i], to: ip})
				segs = append(segs, widenSeg{from: ip, to: oStart[nextIdx]})
			} else {
				segs = append(segs, widenSeg{from: oEnd[i], to: oStart[nextIdx]})
			}
		default: // JoinRound
			a0 := math.Atan2(oEnd[i].Y-vertex.Y, oEnd[i].X-vertex.X)
			a1 := math.Atan2(oStart[nextIdx].Y-vertex.Y, oStart[nextIdx].X-vertex.X)
			diff := normalizeAngle(a1 - a0)
			arcs := arcSegsBetween(vertex, math.Abs(dist), a0, a0+diff)
			if len(arcs) > 0 {
				arcs[len(arcs)-1].to = oStart[nextIdx]
			}
			segs = append(segs, arcs...)
		}
	}

	start = oStart[0]
	if len(segs) > 0 {
		segs[0].from = start
		end = segs[len(segs)-1].to
	} else {
		end = oEnd[nSegs-1]
	}
	return start, segs, end
}

// reverseSegs returns segs traversed back to front, swapping each arc's
// control points to match.
func reverseSegs(segs []widenSeg) []widenSeg {
	out := make([]widenSeg, len(segs))
	for i, s := range segs {
		r := widenSeg{from: s.to, to: s.from}
		if s.arc {
			r.arc = true
			r.c1, r.c2 = s.c2, s.c1
		}
		out[len(segs)-1-i] = r
	}
	return out
}

// buildCap returns the geometry bridging from to to across a stroke
// end at vertex, where tangent points outward along the subpath's
// direction at that end.
func buildCap(vertex, from, to, tangent Pointf, style PenStyle, distFrom, distTo float64) []widenSeg {
	switch style.EndCap() {
	case EndCapSquare:
		ext1 := from.Add(tangent.Mul(distFrom))
		ext2 := to.Add(tangent.Mul(distTo))
		return []widenSeg{
			{from: from, to: ext1},
			{from: ext1, to: ext2},
			{from: ext2, to: to},
		}
	case EndCapRound:
		a0 := math.Atan2(from.Y-vertex.Y, from.X-vertex.X)
		mid1 := a0 + math.Pi/2
		mid2 := a0 - math.Pi/2
		dot1 := math.Cos(mid1)*tangent.X + math.Sin(mid1)*tangent.Y
		dot2 := math.Cos(mid2)*tangent.X + math.Sin(mid2)*tangent.Y
		sign := 1.0
		if dot2 > dot1 {
			sign = -1.0
		}
		a1 := a0 + sign*math.Pi
		radius := (distFrom + distTo) / 2
		segs := arcSegsBetween(vertex, radius, a0, a1)
		if len(segs) > 0 {
			segs[len(segs)-1].to = to
			return segs
		}
		return []widenSeg{{from: from, to: to}}
	default: // EndCapFlat
		return []widenSeg{{from: from, to: to}}
	}
}

// appendSideToPath appends one closed figure made of start followed by
// segs to out; the caller is responsible for calling out.closeLast().
func appendSideToPath(out *Path, start Pointf, segs []widenSeg) {
	pt := RoundPoint(start)
	out.append(pt, Move)
	out.setCurrentPos(pt)
	for _, s := range segs {
		if s.arc {
			c1, c2, end := RoundPoint(s.c1), RoundPoint(s.c2), RoundPoint(s.to)
			out.append(c1, Bezier)
			out.append(c2, Bezier)
			out.append(end, Bezier)
			out.setCurrentPos(end)
		} else {
			end := RoundPoint(s.to)
			out.append(end, Line)
			out.setCurrentPos(end)
		}
	}
}

// widenOpenSubpath emits one closed figure: the outer offset forward,
// an end cap, the inner offset backward, and a start cap.
func widenOpenSubpath(out *Path, ptsF []Pointf, wIn, wOut float64, style PenStyle, miterLimit float64) {
	n := len(ptsF)
	firstDir := normalizeVec(ptsF[1].Sub(ptsF[0]))
	lastDir := normalizeVec(ptsF[n-1].Sub(ptsF[n-2]))

	join := style.Join()
	leftStart, leftSegs, leftEnd := buildSideSegs(ptsF, wOut, join, miterLimit, false)
	rightStart, rightSegs, rightEnd := buildSideSegs(ptsF, -wIn, join, miterLimit, false)

	endCap := buildCap(ptsF[n-1], leftEnd, rightEnd, lastDir, style, wOut, wIn)
	startCap := buildCap(ptsF[0], rightStart, leftStart, firstDir.Mul(-1), style, wIn, wOut)

	final := make([]widenSeg, 0, len(leftSegs)+len(rightSegs)+len(endCap)+len(startCap))
	final = append(final, leftSegs...)
	final = append(final, endCap...)
	final = append(final, reverseSegs(rightSegs)...)
	final = append(final, startCap...)

	appendSideToPath(out, leftStart, final)
	out.closeLast()
}

// widenClosedSubpath emits a single figure: the outer offset ring
// forward followed by the inner offset ring reversed, matching
// original_source/dlls/gdi32/path.c's PATH_WidenPath, which appends the
// up path (Move, then Line per point) and then the down path reversed
// into the *same* output path, retagging only the down path's first
// point as Move ("if j==0 && closed: MOVETO else LINETO") rather than
// closing the up ring first. Close is set only on the final entry
// (spec.md §4.5: "the transition between up and down uses MOVE only
// when the stroke was closed"), so the whole assembly is one figure
// with an internal Move rather than two independently closed rings —
// the inner ring still traces the opposite winding direction, so a
// nonzero-winding fill treats it as a hole.
func widenClosedSubpath(out *Path, ptsF []Pointf, wIn, wOut float64, style PenStyle, miterLimit float64) {
	join := style.Join()
	outerStart, outerSegs, _ := buildSideSegs(ptsF, wOut, join, miterLimit, true)
	appendSideToPath(out, outerStart, outerSegs)

	innerStart, innerSegs, innerEnd := buildSideSegs(ptsF, -wIn, join, miterLimit, true)
	reversed := reverseSegs(innerSegs)
	start := innerEnd
	if len(innerSegs) == 0 {
		start = innerStart
	}
	appendSideToPath(out, start, reversed)
	out.closeLast()
}
