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

// Driver is the capability interface Design Notes §9 describes: each
// driver in a device context's stack implements the same operation
// vocabulary, so a recording driver can be pushed in front of whatever
// driver was rendering directly without either one knowing about the
// other's concrete type. Only the geometric subset relevant to path
// recording is modeled here; a host embedding this engine alongside a
// text/rendering driver stack is expected to extend the vocabulary with
// its own operations and dispatch unrelated ones (text metrics, and so
// on) to the driver beneath the recording one.
type Driver interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(left, top, right, bottom, xs, ys, xe, ye float64, dir ArcDirection, lines int) error
	Rectangle(x1, y1, x2, y2 float64)
	Polygon(pts []Pointf)
	PolyPolygon(pts []Pointf, counts []int) error
	CloseFigure()
}

// recordingDriver is the Driver pushed onto a Context's stack between
// BeginPath and EndPath. It delegates every geometric operation to a
// Recorder writing into a freshly allocated Path, and leaves unrelated
// operations (not modeled by the Driver interface here) to whatever
// driver is beneath it in the stack — spec.md §4.7.
type recordingDriver struct {
	path *Path
	rec  *Recorder
	ctx  *Context
}

func newRecordingDriver(ctx *Context) *recordingDriver {
	p := NewPath()
	return &recordingDriver{
		path: p,
		rec:  NewRecorder(p, ctx.toDevice),
		ctx:  ctx,
	}
}

func (d *recordingDriver) MoveTo(x, y float64) { d.rec.MoveTo(x, y) }
func (d *recordingDriver) LineTo(x, y float64) { d.rec.LineTo(x, y) }

func (d *recordingDriver) Arc(left, top, right, bottom, xs, ys, xe, ye float64, dir ArcDirection, lines int) error {
	return recordArc(d.rec, d.ctx, left, top, right, bottom, xs, ys, xe, ye, dir, lines)
}

func (d *recordingDriver) Rectangle(x1, y1, x2, y2 float64) {
	recordRectangle(d.rec, d.ctx, x1, y1, x2, y2)
}

func (d *recordingDriver) Polygon(pts []Pointf) { d.rec.Polygon(pts) }

func (d *recordingDriver) PolyPolygon(pts []Pointf, counts []int) error {
	return d.rec.PolyPolygon(pts, counts)
}

func (d *recordingDriver) CloseFigure() { d.rec.CloseFigure() }

// BeginPath pushes a recording driver onto ctx's driver stack: every
// drawing call issued through ctx.Driver() between BeginPath and
// EndPath is intercepted and recorded rather than rendered directly.
// Fails with ErrCanNotComplete if a recording is already in progress.
func (c *Context) BeginPath() error {
	if c.recorder != nil {
		return opErr("BeginPath", ErrCanNotComplete)
	}
	d := newRecordingDriver(c)
	c.recorder = d
	c.drivers = append(c.drivers, d)
	return nil
}

// EndPath pops the recording driver and transfers ownership of its
// buffer into the context as the committed path. Fails with
// ErrCanNotComplete if no recording is in progress.
func (c *Context) EndPath() error {
	if c.recorder == nil {
		return opErr("EndPath", ErrCanNotComplete)
	}
	c.committed = c.recorder.path
	c.popDriver()
	c.recorder = nil
	return nil
}

// AbortPathRecording pops and discards the in-progress recording
// without committing it. Unlike AbortPath it leaves any previously
// committed path untouched.
func (c *Context) AbortPathRecording() error {
	if c.recorder == nil {
		return opErr("AbortPath", ErrCanNotComplete)
	}
	c.popDriver()
	c.recorder = nil
	return nil
}

func (c *Context) popDriver() {
	if len(c.drivers) > 0 {
		c.drivers = c.drivers[:len(c.drivers)-1]
	}
}

// Driver returns the top of the driver stack: the recording driver if a
// path is being recorded, or nil if the embedder should dispatch
// directly to its own rendering driver.
func (c *Context) Driver() Driver {
	if len(c.drivers) == 0 {
		return nil
	}
	return c.drivers[len(c.drivers)-1]
}
