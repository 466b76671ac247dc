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

import "encoding/binary"

// CurveKind distinguishes the point kinds a glyph outline's curve
// records carry, matching TT_PRIM_LINE/TT_PRIM_QSPLINE/TT_PRIM_CSPLINE
// (spec.md §4.3 "Glyph outline → path").
type CurveKind int

const (
	// CurveLine: every point is on-curve and appended directly as a Line.
	CurveLine CurveKind = iota
	// CurveQuadratic is a TT_PRIM_QSPLINE run: quadratic B-spline control
	// points, the last of which is on-curve, converted to cubic Beziers
	// by bezierToChain below.
	CurveQuadratic
	// CurveCubic is a TT_PRIM_CSPLINE run, converted by the same
	// bezierToChain helper as CurveQuadratic. The native format makes no
	// distinction between the two at this layer; see bezierToChain.
	CurveCubic
)

// GlyphCurve is one contiguous run of a glyph outline sharing a single
// interpolation kind, corresponding to one TTPOLYCURVE record.
type GlyphCurve struct {
	Kind CurveKind
	// Points are in logical space, y already in the usual up-is-positive
	// text convention. Callers wanting glyph-space y-flip should bake it
	// into the transform, or into the outline's points before calling
	// RecordGlyph (DecodeNativeOutline performs it while decoding raw
	// TTPOLYGONHEADER/TTPOLYCURVE records, matching the origin/flip
	// PATH_add_outline applies).
	Points []Pointf
}

// GlyphOutline is one closed contour of a glyph, as supplied by a font
// rasterizer: a starting point and a sequence of curve runs whose
// points continue from it.
type GlyphOutline struct {
	Start  Pointf
	Curves []GlyphCurve
}

// RecordGlyph appends one glyph contour to the path as its own closed
// figure, starting with Move at the contour's start point
// (spec.md §4.3, grounded on original_source/dlls/gdi32/path.c's
// PATH_add_outline/PATH_BezierTo). Coordinates are projected through the
// recorder's transform exactly like any other primitive.
//
// An unrecognized CurveKind is a caller bug (spec.md §7 treats malformed
// font data as a fatal, non-recoverable condition) and fails with
// ErrInvalidParameter rather than panicking, since outline data often
// originates from an external font file the caller has not validated.
func (r *Recorder) RecordGlyph(outline GlyphOutline) error {
	r.Path.append(r.ToDevice(outline.Start), Move)
	r.Path.newStroke = false
	r.Path.setCurrentPos(r.Path.points[len(r.Path.points)-1])

	cur := outline.Start
	for _, c := range outline.Curves {
		switch c.Kind {
		case CurveLine:
			r.appendGlyphLines(c.Points)
		case CurveQuadratic, CurveCubic:
			if len(c.Points) == 0 {
				continue
			}
			r.bezierToChain(cur, c.Points)
		default:
			return opErr("RecordGlyph", ErrInvalidParameter)
		}
		if len(c.Points) > 0 {
			cur = c.Points[len(c.Points)-1]
		}
	}
	r.Path.closeLast()
	return nil
}

func (r *Recorder) appendGlyphLines(pts []Pointf) {
	for _, lp := range pts {
		pt := r.ToDevice(lp)
		r.Path.append(pt, Line)
		r.Path.setCurrentPos(pt)
	}
}

func (r *Recorder) appendCubicRun(pts []Pointf) {
	for i := 0; i+2 < len(pts); i += 3 {
		var last Point
		for j := 0; j < 3; j++ {
			last = r.ToDevice(pts[i+j])
			r.Path.append(last, Bezier)
		}
		r.Path.setCurrentPos(last)
	}
}

// bezierToChain converts the point run (prev, pts[0], ..., pts[m-1])
// into one or more cubic Bezier triples, matching
// original_source/dlls/gdi32/path.c's PATH_BezierTo exactly and
// spec.md §4.3's "Quadratic-to-cubic chain" algorithm:
//   - m == 1: emit a Line to pts[0] (spec's "n == 2" case, n counting prev);
//   - m == 2: emit one cubic triple from (prev, pts[0], pts[1]) directly
//     (spec's "n == 3" case);
//   - m > 2: walk adjacent points, synthesizing the implicit on-curve
//     midpoint between pts[i] and pts[i+1] for every triple but the
//     last, which uses the final two points directly (spec's "n > 3"
//     case).
//
// Used for both CurveQuadratic and CurveCubic runs: PATH_BezierTo draws
// no distinction between TT_PRIM_QSPLINE and TT_PRIM_CSPLINE, a quirk of
// the native format this engine preserves faithfully rather than
// second-guessing, per spec.md §9's "implementations must preserve these
// rules to match expected pixel-level outputs."
func (r *Recorder) bezierToChain(prev Pointf, pts []Pointf) {
	m := len(pts)
	switch {
	case m == 1:
		pt := r.ToDevice(pts[0])
		r.Path.append(pt, Line)
		r.Path.setCurrentPos(pt)
	case m == 2:
		r.appendCubicRun([]Pointf{prev, pts[0], pts[1]})
	default:
		pt2 := prev
		i := 0
		remaining := m
		for remaining > 2 {
			p0 := pt2
			p1 := pts[i]
			p2 := pts[i].Add(pts[i+1]).Mul(0.5)
			r.appendCubicRun([]Pointf{p0, p1, p2})
			pt2 = p2
			remaining--
			i++
		}
		r.appendCubicRun([]Pointf{pt2, pts[i], pts[i+1]})
	}
}

// Native TTPOLYGONHEADER/TTPOLYCURVE record layout: the wire format a
// Windows-style glyph_outline collaborator (spec.md §6) returns in its
// buffer_out parameter. All multi-byte fields are little-endian; a FIXED
// is a (WORD fract, INT16 value) pair, decoded with spec.md §9's "round
// half up" rule.
const (
	ttPolygonType = 24
	ttPrimLine    = 1
	ttPrimQSpline = 2
	ttPrimCSpline = 3

	sizeofFixed    = 4 // WORD fract + INT16 value
	sizeofPointFX  = 2 * sizeofFixed
	sizeofHeader   = 4 + 4 + sizeofPointFX // DWORD cb, DWORD dwType, POINTFX pfxStart
	sizeofCurveHdr = 2 + 2                 // WORD wType, WORD cpfx
)

// decodeFixed reads one FIXED value from b[0:4] and rounds it to an
// integer logical coordinate, matching
// original_source/dlls/gdi32/path.c's int_from_fixed
// ("value + (fract >= 0x8000 ? 1 : 0)").
func decodeFixed(b []byte) int {
	fract := binary.LittleEndian.Uint16(b[0:2])
	value := int16(binary.LittleEndian.Uint16(b[2:4]))
	return roundHalfUp(float64(value) + float64(fract)/65536)
}

// decodePointFX reads one POINTFX (two FIXED values) from b[0:8].
func decodePointFX(b []byte) (x, y int) {
	return decodeFixed(b[0:4]), decodeFixed(b[4:8])
}

// DecodeNativeOutline decodes a sequence of native TTPOLYGONHEADER/
// TTPOLYCURVE polygon records (spec.md §4.3's "native outlines") into
// the GlyphOutline values RecordGlyph consumes, applying the glyph
// origin (x, y) and the y-flip PATH_add_outline performs
// ("pt.y = y - int_from_fixed(...)"). Grounded on
// original_source/dlls/gdi32/path.c's PATH_add_outline. Fails with
// ErrInvalidParameter on a truncated buffer, an unrecognized polygon
// dwType, or an unrecognized curve wType.
func DecodeNativeOutline(buf []byte, x, y int) ([]GlyphOutline, error) {
	var outlines []GlyphOutline
	off := 0
	for off < len(buf) {
		if off+sizeofHeader > len(buf) {
			return nil, opErr("DecodeNativeOutline", ErrInvalidParameter)
		}
		cb := binary.LittleEndian.Uint32(buf[off : off+4])
		dwType := binary.LittleEndian.Uint32(buf[off+4 : off+8])
		if dwType != ttPolygonType {
			return nil, opErr("DecodeNativeOutline", ErrInvalidParameter)
		}
		headerEnd := off + int(cb)
		if cb < sizeofHeader || headerEnd > len(buf) {
			return nil, opErr("DecodeNativeOutline", ErrInvalidParameter)
		}

		sx, sy := decodePointFX(buf[off+8 : off+16])
		outline := GlyphOutline{Start: Pointf{X: float64(x + sx), Y: float64(y - sy)}}

		pos := off + sizeofHeader
		for pos < headerEnd {
			if pos+sizeofCurveHdr > headerEnd {
				return nil, opErr("DecodeNativeOutline", ErrInvalidParameter)
			}
			wType := binary.LittleEndian.Uint16(buf[pos : pos+2])
			cpfx := int(binary.LittleEndian.Uint16(buf[pos+2 : pos+4]))
			pos += sizeofCurveHdr

			need := cpfx * sizeofPointFX
			if need < 0 || pos+need > headerEnd {
				return nil, opErr("DecodeNativeOutline", ErrInvalidParameter)
			}
			pts := make([]Pointf, cpfx)
			for i := 0; i < cpfx; i++ {
				px, py := decodePointFX(buf[pos+i*sizeofPointFX : pos+(i+1)*sizeofPointFX])
				pts[i] = Pointf{X: float64(x + px), Y: float64(y - py)}
			}
			pos += need

			var kind CurveKind
			switch wType {
			case ttPrimLine:
				kind = CurveLine
			case ttPrimQSpline:
				kind = CurveQuadratic
			case ttPrimCSpline:
				kind = CurveCubic
			default:
				return nil, opErr("DecodeNativeOutline", ErrInvalidParameter)
			}
			outline.Curves = append(outline.Curves, GlyphCurve{Kind: kind, Points: pts})
		}
		outlines = append(outlines, outline)
		off = headerEnd
	}
	return outlines, nil
}
