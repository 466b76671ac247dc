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

// corners holds a normalized top-left/bottom-right device-space pair,
// the FLOAT_POINT corners[2] of the original implementation.
type corners [2]Pointf

// checkCorners transforms x1,y1,x2,y2 to device space and normalizes
// them so corners[0] is top-left and corners[1] is bottom-right,
// applying the Windows exclusive-edge -1 adjustment in compatible mode
// (spec.md §4.3 "Rectangle / corner normalisation").
func checkCorners(ctx *Context, x1, y1, x2, y2 float64) corners {
	c0 := ctx.toDeviceF(Pointf{X: x1, Y: y1})
	c1 := ctx.toDeviceF(Pointf{X: x2, Y: y2})
	if c0.X > c1.X {
		c0.X, c1.X = c1.X, c0.X
	}
	if c0.Y > c1.Y {
		c0.Y, c1.Y = c1.Y, c0.Y
	}
	if ctx.GraphicsMode() == GraphicsModeCompatible {
		c1.X--
		c1.Y--
	}
	return corners{c0, c1}
}

// recordRectangle appends the four-point closed rectangle outline,
// ordered (x2,y1),(x1,y1),(x1,y2),(x2,y2) per spec.md §4.3. It does not
// short-circuit on x1==x2 or y1==y2: the boundary case in spec.md §8
// still emits all four entries.
func recordRectangle(r *Recorder, ctx *Context, x1, y1, x2, y2 float64) {
	c := checkCorners(ctx, x1, y1, x2, y2)
	pts := []Point{
		{int(c[1].X), int(c[0].Y)},
		{int(c[0].X), int(c[0].Y)},
		{int(c[0].X), int(c[1].Y)},
		{int(c[1].X), int(c[1].Y)},
	}
	start := r.Path.appendMany(pts, Line)
	r.Path.retag(start, Move)
	r.Path.closeLast()
	r.Path.newStroke = false
	r.Path.setCurrentPos(pts[len(pts)-1])
}

// Rectangle records a closed rectangle outline.
func (r *Recorder) Rectangle(ctx *Context, x1, y1, x2, y2 float64) {
	recordRectangle(r, ctx, x1, y1, x2, y2)
}

// arcPart approximates a circular-arc segment spanning at most π/2 with
// a single cubic Bézier, scaled to the ellipse defined by c, and appends
// it to the path. startTag controls whether the starting control point
// is emitted (Move or Line) or skipped because the caller already
// appended it as the end of the previous piece (startTag == 0).
// Grounded on original_source/dlls/gdi32/path.c's PATH_DoArcPart.
func arcPart(p *Path, c corners, angleStart, angleEnd float64, startTag Tag) {
	half := (angleEnd - angleStart) / 2
	var xn, yn [4]float64
	if math.Abs(half) > 1e-8 {
		a := 4.0 / 3.0 * (1 - math.Cos(half)) / math.Sin(half)
		xn[0] = math.Cos(angleStart)
		yn[0] = math.Sin(angleStart)
		xn[1] = xn[0] - a*yn[0]
		yn[1] = yn[0] + a*xn[0]
		xn[3] = math.Cos(angleEnd)
		yn[3] = math.Sin(angleEnd)
		xn[2] = xn[3] + a*yn[3]
		yn[2] = yn[3] - a*xn[3]
	} else {
		for i := range xn {
			xn[i] = math.Cos(angleStart)
			yn[i] = math.Sin(angleStart)
		}
	}

	start := 1
	if startTag != 0 {
		start = 0
	}
	pts := make([]Point, 0, 4-start)
	for i := start; i < 4; i++ {
		pts = append(pts, scaleNormalizedPoint(c, xn[i], yn[i]))
	}
	if startTag != 0 {
		idx := p.appendMany(pts, Bezier)
		p.retag(idx, startTag)
	} else {
		p.appendMany(pts, Bezier)
	}
	p.setCurrentPos(pts[len(pts)-1])
}

// scaleNormalizedPoint maps a point (x,y) on the unit square centred at
// the origin to device coordinates within c, rounding half-away-from-
// zero (spec.md §9).
func scaleNormalizedPoint(c corners, x, y float64) Point {
	px := c[0].X + (c[1].X-c[0].X)*0.5*(x+1)
	py := c[0].Y + (c[1].Y-c[0].Y)*0.5*(y+1)
	return RoundPoint(Pointf{X: px, Y: py})
}

// normalizePoint maps a device-space point to the unit square centred
// at the origin within c.
func normalizePoint(c corners, p Pointf) (x, y float64) {
	x = (p.X-c[0].X)/(c[1].X-c[0].X)*2 - 1
	y = (p.Y-c[0].Y)/(c[1].Y-c[0].Y)*2 - 1
	return x, y
}

// arcLines selects which additional geometry an arc-family call emits
// after the curve itself.
type arcLines int

const (
	arcPlain arcLines = 0
	arcChord arcLines = 1
	arcPie   arcLines = 2
	arcArcTo arcLines = -1
)

// recordArc implements the unified arc algorithm of spec.md §4.3: Arc,
// ArcTo, Chord, Pie, Ellipse, and AngleArc all funnel through this with
// a different `lines` discriminator. Grounded on
// original_source/dlls/gdi32/path.c's PATH_Arc.
func recordArc(r *Recorder, ctx *Context, left, top, right, bottom, xs, ys, xe, ye float64, dir ArcDirection, lines int) error {
	if left == right || top == bottom {
		return nil // no-op success, spec.md §8
	}

	c0 := ctx.toDeviceF(Pointf{X: left, Y: top})
	c1 := ctx.toDeviceF(Pointf{X: right, Y: bottom})
	if c0.X > c1.X {
		c0.X, c1.X = c1.X, c0.X
	}
	if c0.Y > c1.Y {
		c0.Y, c1.Y = c1.Y, c0.Y
	}
	normCorners := corners{c0, c1}

	start := ctx.toDeviceF(Pointf{X: xs, Y: ys})
	end := ctx.toDeviceF(Pointf{X: xe, Y: ye})

	xsn, ysn := normalizePoint(normCorners, start)
	xen, yen := normalizePoint(normCorners, end)

	angleStart := math.Atan2(ysn, xsn)
	angleEnd := math.Atan2(yen, xen)

	switch dir {
	case ArcClockwise:
		if angleEnd <= angleStart {
			angleEnd += 2 * math.Pi
		}
	case ArcCounterClockwise:
		if angleEnd >= angleStart {
			angleEnd -= 2 * math.Pi
		}
	}

	if ctx.GraphicsMode() == GraphicsModeCompatible {
		normCorners[1].X--
		normCorners[1].Y--
	}

	al := arcLines(lines)
	if al == arcArcTo {
		r.ensureStroke()
	}

	firstTag := Move
	if al == arcArcTo {
		firstTag = Line
	}

	angle := angleStart
	first := true
	step := math.Pi / 2
	if angleEnd < angleStart {
		step = -step
	}
	for {
		var next float64
		if step > 0 {
			next = math.Min(nearestQuadrant(angle, step), angleEnd)
		} else {
			next = math.Max(nearestQuadrant(angle, step), angleEnd)
		}
		tag := Tag(0)
		if first {
			tag = firstTag
		}
		arcPart(r.Path, normCorners, angle, next, tag)
		first = false
		angle = next
		if angle == angleEnd {
			break
		}
	}

	switch al {
	case arcArcTo:
		// current position already updated by arcPart
	case arcChord:
		r.Path.closeLast()
	case arcPie:
		centre := scaleNormalizedPoint(normCorners, 0, 0)
		r.Path.append(centre, Line|Close)
		r.Path.setCurrentPos(centre)
	}
	return nil
}

// nearestQuadrant advances angle to the nearest multiple of π/2 in the
// direction of step.
func nearestQuadrant(angle, step float64) float64 {
	const quadrant = math.Pi / 2
	n := angle / quadrant
	if step > 0 {
		return math.Floor(n+1e-9+1) * quadrant
	}
	return math.Ceil(n-1e-9-1) * quadrant
}

// Arc records an open elliptical arc: lines=0.
func (r *Recorder) Arc(ctx *Context, left, top, right, bottom, xs, ys, xe, ye float64) error {
	return recordArc(r, ctx, left, top, right, bottom, xs, ys, xe, ye, ctx.ArcDirection(), int(arcPlain))
}

// ArcTo behaves like Arc but additionally connects from the current
// position with a Line entry before the arc.
func (r *Recorder) ArcTo(ctx *Context, left, top, right, bottom, xs, ys, xe, ye float64) error {
	return recordArc(r, ctx, left, top, right, bottom, xs, ys, xe, ye, ctx.ArcDirection(), int(arcArcTo))
}

// Chord records a closed arc connecting the two endpoints directly.
func (r *Recorder) Chord(ctx *Context, left, top, right, bottom, xs, ys, xe, ye float64) error {
	return recordArc(r, ctx, left, top, right, bottom, xs, ys, xe, ye, ctx.ArcDirection(), int(arcChord))
}

// Pie records a closed arc connecting both endpoints to the ellipse
// centre.
func (r *Recorder) Pie(ctx *Context, left, top, right, bottom, xs, ys, xe, ye float64) error {
	return recordArc(r, ctx, left, top, right, bottom, xs, ys, xe, ye, ctx.ArcDirection(), int(arcPie))
}

// Ellipse records a full closed ellipse as a degenerate Arc whose start
// and end coincide at the leftmost point, forcing a full 2π sweep.
func (r *Recorder) Ellipse(ctx *Context, left, top, right, bottom float64) error {
	midY := (top + bottom) / 2
	return recordArc(r, ctx, left, top, right, bottom, left, midY, left, midY, ctx.ArcDirection(), int(arcChord))
}

// AngleArc derives a bounding box from (x,y,radius) and endpoints from
// the start/sweep angles in degrees, then delegates to an ArcTo-style
// call with direction chosen by the sign of the sweep.
func (r *Recorder) AngleArc(ctx *Context, x, y, radius, startDeg, sweepDeg float64) error {
	startRad := startDeg * math.Pi / 180
	xs := x + radius*math.Cos(startRad)
	ys := y - radius*math.Sin(startRad)
	endRad := (startDeg + sweepDeg) * math.Pi / 180
	xe := x + radius*math.Cos(endRad)
	ye := y - radius*math.Sin(endRad)

	dir := ArcCounterClockwise
	if sweepDeg < 0 {
		dir = ArcClockwise
	}
	return recordArc(r, ctx, x-radius, y-radius, x+radius, y+radius, xs, ys, xe, ye, dir, int(arcArcTo))
}

// RoundRect records a rectangle with quarter-circle arcs at each
// corner, composed of four arcPart cubics and four straight sides, and
// closes the figure. ellipseW/ellipseH give the corner ellipse's full
// width/height in logical units.
//
// The open question flagged in spec.md's Design Notes (a possible gap
// between each arc and the adjoining straight side) is resolved by
// placing every arc's endpoints on the rectangle's edges: each side
// starts at the previous arc's final control point and its Line entry is
// the next arc's starting point, scaled from that arc's own corner box
// at that arc's start angle; see DESIGN.md and TestRoundRectJoinsCoincide.
func (r *Recorder) RoundRect(ctx *Context, x1, y1, x2, y2, ellipseW, ellipseH float64) {
	c := checkCorners(ctx, x1, y1, x2, y2)
	left, top := c[0].X, c[0].Y
	right, bottom := c[1].X, c[1].Y

	ew := ctx.toDeviceF(Pointf{X: ellipseW, Y: 0}).X - ctx.toDeviceF(Pointf{X: 0, Y: 0}).X
	eh := ctx.toDeviceF(Pointf{X: 0, Y: ellipseH}).Y - ctx.toDeviceF(Pointf{X: 0, Y: 0}).Y
	ew = math.Abs(ew) / 2
	eh = math.Abs(eh) / 2

	// Each corner's ellipse bounding box, in device coordinates.
	tl := corners{{X: left, Y: top}, {X: left + 2*ew, Y: top + 2*eh}}
	tr := corners{{X: right - 2*ew, Y: top}, {X: right, Y: top + 2*eh}}
	br := corners{{X: right - 2*ew, Y: bottom - 2*eh}, {X: right, Y: bottom}}
	bl := corners{{X: left, Y: bottom - 2*eh}, {X: left + 2*ew, Y: bottom}}

	half := math.Pi / 2

	// Device y grows downward, so angle 0 is a box's right-middle point,
	// -π/2 its top-middle, π its left-middle and π/2 its bottom-middle.
	// top-right corner arc: from the right side (0) to the top side (-π/2)
	arcPart(r.Path, tr, 0, -half, Move)
	// top side, ending at the top-left arc's start point
	topLeft := scaleNormalizedPoint(tl, 0, -1)
	r.Path.append(topLeft, Line)
	r.Path.setCurrentPos(topLeft)

	arcPart(r.Path, tl, -half, -math.Pi, 0)
	leftBottom := scaleNormalizedPoint(bl, -1, 0)
	r.Path.append(leftBottom, Line)
	r.Path.setCurrentPos(leftBottom)

	arcPart(r.Path, bl, math.Pi, half, 0)
	bottomRight := scaleNormalizedPoint(br, 0, 1)
	r.Path.append(bottomRight, Line)
	r.Path.setCurrentPos(bottomRight)

	// The fourth side is left to the implicit closing segment close_figure
	// draws back to the initial Move, matching
	// original_source/dlls/gdi32/path.c's pathdrv_RoundRect, which only
	// emits three PT_LINETOs between its four PATH_DoArcPart calls: Close
	// lands directly on this arc's final Bezier control point rather than
	// on a fourth explicit Line (spec.md §8 scenario 3: 16 entries, not 17).
	arcPart(r.Path, br, half, 0, 0)

	r.Path.closeLast()
	r.Path.newStroke = false
}
