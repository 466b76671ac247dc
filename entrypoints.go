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

// FillSink receives the Region a fill operation resolves to, along with
// the fill rule that built it, and is responsible for the actual paint
// (outside this package's scope — spec.md's Non-goals exclude
// rasterization).
type FillSink interface {
	Fill(region Region, mode FillMode) error
}

// StrokeSink receives the Path a stroke operation widened to, for
// painting by the embedder.
type StrokeSink interface {
	Stroke(outline *Path) error
}

// ClipSink receives the Region a clip-path selection resolves to.
type ClipSink interface {
	SetClip(region Region) error
}

// FlattenPath replaces the committed path with its flattened form
// (spec.md §6 flatten_path). Fails with ErrCanNotComplete if no path is
// committed.
func (c *Context) FlattenPath(flattener CubicFlattener) error {
	if c.committed == nil {
		return opErr("FlattenPath", ErrCanNotComplete)
	}
	flat, err := Flatten(c.committed, flattener)
	if err != nil {
		return opErr("FlattenPath", err)
	}
	c.committed = flat
	return nil
}

// WidenPath replaces the committed path with the closed polygon(s)
// outlining its stroke under the context's current pen (spec.md §6
// widen_path). The path is flattened first; Widen requires Bezier-free
// input.
func (c *Context) WidenPath(flattener CubicFlattener) error {
	if c.committed == nil {
		return opErr("WidenPath", ErrCanNotComplete)
	}
	flat, err := Flatten(c.committed, flattener)
	if err != nil {
		return opErr("WidenPath", err)
	}
	widened, err := Widen(flat, c.PenState, c.Miter)
	if err != nil {
		return err
	}
	c.committed = widened
	return nil
}

// PathToRegion converts the committed path to a Region using
// constructor, and clears the committed path on success
// (SPEC_FULL.md §4's supplemented "GdiPath.pos clearing" behavior:
// PathToRegion, like its original counterpart, consumes the path it
// converts).
func (c *Context) PathToRegion(flattener CubicFlattener, constructor RegionConstructor) (Region, error) {
	if c.committed == nil {
		return nil, opErr("PathToRegion", ErrCanNotComplete)
	}
	flat, err := Flatten(c.committed, flattener)
	if err != nil {
		return nil, opErr("PathToRegion", err)
	}
	region, err := ToRegion(flat, c.Fill, constructor)
	if err != nil {
		return nil, err
	}
	c.committed = nil
	return region, nil
}

// FillPath converts the committed path to a region and hands it to
// sink for painting (spec.md §6 fill_path). The committed path is
// cleared as soon as the region is built, before sink is called, so it
// is gone even if sink fails.
func (c *Context) FillPath(flattener CubicFlattener, constructor RegionConstructor, sink FillSink) error {
	mode := c.Fill
	region, err := c.PathToRegion(flattener, constructor)
	if err != nil {
		return opErr("FillPath", err)
	}
	if err := sink.Fill(region, mode); err != nil {
		return opErr("FillPath", err)
	}
	return nil
}

// StrokePath widens the committed path under the context's pen and
// hands the outline to sink for painting, then clears the committed
// path on success (spec.md §6 stroke_path).
func (c *Context) StrokePath(flattener CubicFlattener, sink StrokeSink) error {
	if c.committed == nil {
		return opErr("StrokePath", ErrCanNotComplete)
	}
	flat, err := Flatten(c.committed, flattener)
	if err != nil {
		return opErr("StrokePath", err)
	}
	widened, err := Widen(flat, c.PenState, c.Miter)
	if err != nil {
		return opErr("StrokePath", err)
	}
	if err := sink.Stroke(widened); err != nil {
		return opErr("StrokePath", err)
	}
	c.committed = nil
	return nil
}

// StrokeAndFillPath fills and strokes the committed path in one step,
// sharing the flattened form between both operations, then clears the
// committed path on success (spec.md §6 stroke_and_fill_path).
func (c *Context) StrokeAndFillPath(flattener CubicFlattener, constructor RegionConstructor, fillSink FillSink, strokeSink StrokeSink) error {
	if c.committed == nil {
		return opErr("StrokeAndFillPath", ErrCanNotComplete)
	}
	flat, err := Flatten(c.committed, flattener)
	if err != nil {
		return opErr("StrokeAndFillPath", err)
	}
	region, err := ToRegion(flat, c.Fill, constructor)
	if err != nil {
		return opErr("StrokeAndFillPath", err)
	}
	if err := fillSink.Fill(region, c.Fill); err != nil {
		return opErr("StrokeAndFillPath", err)
	}
	widened, err := Widen(flat, c.PenState, c.Miter)
	if err != nil {
		return opErr("StrokeAndFillPath", err)
	}
	if err := strokeSink.Stroke(widened); err != nil {
		return opErr("StrokeAndFillPath", err)
	}
	c.committed = nil
	return nil
}

// SelectClipPath converts the committed path to a region and hands it
// to sink as the new clip region (spec.md §6 select_clip_path). The
// committed path is cleared as soon as the region is built, before sink
// is called, so it is gone even if sink fails.
func (c *Context) SelectClipPath(flattener CubicFlattener, constructor RegionConstructor, sink ClipSink) error {
	region, err := c.PathToRegion(flattener, constructor)
	if err != nil {
		return opErr("SelectClipPath", err)
	}
	if err := sink.SetClip(region); err != nil {
		return opErr("SelectClipPath", err)
	}
	return nil
}
