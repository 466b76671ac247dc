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

// Recorder accepts drawing primitives in logical coordinates, projects
// them through a DeviceContext's world-to-device transform, and appends
// correctly tagged entries to a Path — spec.md §4.2.
//
// A Recorder owns no state of its own beyond the Path and the transform:
// the current position and new-stroke latch live on the Path so that
// Path.Clone (used by SaveDC/RestoreDC) copies them along with the
// entries.
type Recorder struct {
	Path     *Path
	ToDevice func(Pointf) Point // world-to-device projection
}

// NewRecorder returns a Recorder appending to path, projecting logical
// points through toDevice.
func NewRecorder(path *Path, toDevice func(Pointf) Point) *Recorder {
	return &Recorder{Path: path, ToDevice: toDevice}
}

// ensureStroke implements the stroke-continuation discipline of
// spec.md §4.2: a new stroke is required when the latch is set, the
// path is empty, the last entry carries Close, or the last-appended
// point does not equal the stored current position. Grounded on
// original_source/dlls/gdi32/path.c's add_log_points_new_stroke.
func (r *Recorder) ensureStroke() {
	p := r.Path
	n := p.Len()
	needsMove := p.newStroke || n == 0
	if !needsMove && n > 0 {
		if p.tags[n-1].Closed() {
			needsMove = true
		} else if p.points[n-1] != p.current {
			needsMove = true
		}
	}
	if needsMove {
		p.append(p.current, Move)
	}
	p.newStroke = false
}

// MoveTo sets the new-stroke latch and stores the transformed point as
// the current position. No entry is appended yet.
func (r *Recorder) MoveTo(x, y float64) {
	pt := r.ToDevice(Pointf{X: x, Y: y})
	r.Path.setCurrentPos(pt)
	r.Path.newStroke = true
}

// LineTo appends a Line entry, starting a new stroke first if needed.
func (r *Recorder) LineTo(x, y float64) {
	pt := r.ToDevice(Pointf{X: x, Y: y})
	r.ensureStroke()
	r.Path.append(pt, Line)
	r.Path.setCurrentPos(pt)
}

// PolyBezierTo appends pts as a run of Bezier entries continuing the
// current stroke (starting one first if needed). len(pts) must be a
// multiple of 3; the caller guarantees this per spec.md §4.2.
func (r *Recorder) PolyBezierTo(pts []Pointf) {
	r.ensureStroke()
	last := r.appendBezierRun(pts)
	r.Path.setCurrentPos(last)
}

// PolyBezier appends pts as a run of Bezier entries, unconditionally
// starting a new stroke (the first entry is retagged Move).
func (r *Recorder) PolyBezier(pts []Pointf) {
	if len(pts) == 0 {
		return
	}
	start := r.appendBezierRunAt(pts)
	r.Path.retag(start, Move)
	r.Path.newStroke = false
	r.Path.setCurrentPos(r.Path.points[len(r.Path.points)-1])
}

func (r *Recorder) appendBezierRun(pts []Pointf) Point {
	var last Point
	for _, lp := range pts {
		last = r.ToDevice(lp)
		r.Path.append(last, Bezier)
	}
	return last
}

func (r *Recorder) appendBezierRunAt(pts []Pointf) int {
	devPts := make([]Point, len(pts))
	for i, lp := range pts {
		devPts[i] = r.ToDevice(lp)
	}
	return r.Path.appendMany(devPts, Bezier)
}

// Polyline appends pts as a run of Line entries, unconditionally
// starting a new stroke. It does not use the ensure-stroke discipline:
// spec.md §4.2 calls this out explicitly.
func (r *Recorder) Polyline(pts []Pointf) {
	if len(pts) == 0 {
		return
	}
	start := r.appendLineRunAt(pts)
	r.Path.retag(start, Move)
	r.Path.newStroke = false
	r.Path.setCurrentPos(r.Path.points[len(r.Path.points)-1])
}

// PolylineTo appends pts as a run of Line entries continuing the current
// stroke (starting one first if needed).
func (r *Recorder) PolylineTo(pts []Pointf) {
	r.ensureStroke()
	var last Point
	for _, lp := range pts {
		last = r.ToDevice(lp)
		r.Path.append(last, Line)
	}
	if len(pts) > 0 {
		r.Path.setCurrentPos(last)
	}
}

func (r *Recorder) appendLineRunAt(pts []Pointf) int {
	devPts := make([]Point, len(pts))
	for i, lp := range pts {
		devPts[i] = r.ToDevice(lp)
	}
	return r.Path.appendMany(devPts, Line)
}

// Polygon behaves like Polyline but tags the last entry Line|Close.
func (r *Recorder) Polygon(pts []Pointf) {
	if len(pts) == 0 {
		return
	}
	r.Polyline(pts)
	r.Path.closeLast()
}

// PolyPolygon records counts[i]-length polygons back to back, each with
// its own Move/Line|Close pair. It fails with ErrInvalidParameter,
// leaving the path unchanged, if any counts[i] < 2.
func (r *Recorder) PolyPolygon(pts []Pointf, counts []int) error {
	if err := validateCounts(counts); err != nil {
		return opErr("PolyPolygon", err)
	}
	idx := 0
	for _, n := range counts {
		r.Polygon(pts[idx : idx+n])
		idx += n
	}
	return nil
}

// PolyPolyLine records counts[i]-length polylines back to back (each
// with its own leading Move, no closures). It fails with
// ErrInvalidParameter, leaving the path unchanged, if any counts[i] < 2.
func (r *Recorder) PolyPolyLine(pts []Pointf, counts []int) error {
	if err := validateCounts(counts); err != nil {
		return opErr("PolyPolyLine", err)
	}
	idx := 0
	for _, n := range counts {
		r.Polyline(pts[idx : idx+n])
		idx += n
	}
	return nil
}

func validateCounts(counts []int) error {
	for _, n := range counts {
		if n < 2 {
			return ErrInvalidParameter
		}
	}
	return nil
}

// CloseFigure sets Close on the last entry, if any. The new-stroke
// latch is left untouched: the next extension is handled by
// ensureStroke's "last entry carries Close" condition.
func (r *Recorder) CloseFigure() {
	if r.Path.Len() == 0 {
		return
	}
	r.Path.closeLast()
}

// DrawEntry is one element of the tagged stream PolyDraw replays.
type DrawEntry struct {
	Point Pointf
	Tag   Tag
}

// PolyDraw replays an arbitrary tagged stream (spec.md §4.2). Move
// updates the current position and sets the latch; Line uses
// ensure-stroke; Bezier requires the next two entries to also be
// Bezier (Close may be set on the third). Close on a Line or Bezier
// entry closes the current figure and resets the current position to
// the last Move's point. An unrecognized tag, a Move carrying Close, or
// a Bezier not followed by two more Bezier entries, fails with
// ErrInvalidParameter and rolls the path and current position back to
// their state at entry.
func (r *Recorder) PolyDraw(entries []DrawEntry) error {
	p := r.Path
	savedLen := p.Len()
	savedCurrent := p.current
	savedLatch := p.newStroke
	savedTagsLen := len(p.tags)

	rollback := func() error {
		p.points = p.points[:savedLen]
		p.tags = p.tags[:savedTagsLen]
		p.current = savedCurrent
		p.newStroke = savedLatch
		return opErr("PolyDraw", ErrInvalidParameter)
	}

	var lastMove Point

	for i := 0; i < len(entries); i++ {
		e := entries[i]
		base := e.Tag.Base()
		switch base {
		case Move:
			pt := r.ToDevice(e.Point)
			p.setCurrentPos(pt)
			p.newStroke = true
			lastMove = pt
			if e.Tag.Closed() {
				return rollback()
			}

		case Line:
			r.ensureStroke()
			pt := r.ToDevice(e.Point)
			p.append(pt, e.Tag)
			p.setCurrentPos(pt)
			if e.Tag.Closed() {
				p.setCurrentPos(lastMove)
			}

		case Bezier:
			if i+2 >= len(entries) ||
				entries[i+1].Tag.Base() != Bezier ||
				entries[i+2].Tag.Base() != Bezier {
				return rollback()
			}
			r.ensureStroke()
			var last Point
			for j := 0; j < 3; j++ {
				last = r.ToDevice(entries[i+j].Point)
				p.append(last, entries[i+j].Tag)
			}
			p.setCurrentPos(last)
			if entries[i+2].Tag.Closed() {
				p.setCurrentPos(lastMove)
			}
			i += 2

		default:
			return rollback()
		}
	}
	return nil
}
