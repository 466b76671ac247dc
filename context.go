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

import "seehuhn.de/go/geom/matrix"

// GraphicsMode selects between the Windows-compatible exclusive-edge
// rectangle convention and the precise "advanced" convention (spec.md
// §4.3 "Rectangle / corner normalisation").
type GraphicsMode int

const (
	GraphicsModeCompatible GraphicsMode = iota
	GraphicsModeAdvanced
)

// ArcDirection selects the sweep direction for the arc family.
type ArcDirection int

const (
	ArcClockwise ArcDirection = iota
	ArcCounterClockwise
)

// FillMode selects the rule PathToRegion applies (spec.md §4.6).
type FillMode int

const (
	FillAlternate FillMode = iota
	FillWinding
)

// Pen style bitfields, matching spec.md §6's stable bit layout.
type PenStyle uint32

const (
	EndCapMask PenStyle = 0x0F00
	JoinMask   PenStyle = 0xF000
	TypeMask   PenStyle = 0x000F

	EndCapRound  PenStyle = 0x0000
	EndCapSquare PenStyle = 0x0100
	EndCapFlat   PenStyle = 0x0200

	JoinRound PenStyle = 0x0000
	JoinBevel PenStyle = 0x1000
	JoinMiter PenStyle = 0x2000

	PenTypeGeometric PenStyle = 0x0000
	PenTypeCosmetic  PenStyle = 0x0001
)

// EndCap extracts the end-cap bits.
func (s PenStyle) EndCap() PenStyle { return s & EndCapMask }

// Join extracts the join bits.
func (s PenStyle) Join() PenStyle { return s & JoinMask }

// IsCosmetic reports whether the pen is cosmetic (always 1 device unit
// wide, unsupported by Widen).
func (s PenStyle) IsCosmetic() bool { return s&TypeMask == PenTypeCosmetic }

// Pen carries the stroke geometry Widen needs.
type Pen struct {
	Width int
	Style PenStyle
}

// Matrix is a 2x3 affine world-to-device transform:
//
//	xDevice = M[0]*x + M[2]*y + M[4]
//	yDevice = M[1]*x + M[3]*y + M[5]
//
// It is seehuhn.de/go/geom/matrix.Matrix, the same CTM type raster.go
// indexes by field (r.CTM[0]..r.CTM[5]) rather than through a method —
// that indexing idiom is reproduced verbatim in ApplyMatrix below. As
// with Pointf/vec.Vec2, ApplyMatrix/ApplyRoundMatrix/InvertMatrix are
// ordinary functions rather than methods: Matrix is an alias for a type
// this package does not own, and Go does not allow attaching methods to
// it here.
type Matrix = matrix.Matrix

// IdentityMatrix is the identity transform.
var IdentityMatrix = matrix.Identity

// ApplyMatrix transforms a logical point to device space, preserving
// floating point precision (used by the arc family, which needs
// sub-pixel precision before the final rounding — spec.md §4.3 step 2).
func ApplyMatrix(m Matrix, p Pointf) Pointf {
	return Pointf{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyRoundMatrix transforms and rounds to device coordinates using
// round-half-away-from-zero.
func ApplyRoundMatrix(m Matrix, p Pointf) Point {
	return RoundPoint(ApplyMatrix(m, p))
}

// InvertMatrix returns the inverse of m. Used by device_to_logical.
// Panics if m is singular, since a DeviceContext with a singular
// transform is a programmer error, not a recoverable runtime condition.
func InvertMatrix(m Matrix) Matrix {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		panic("pathrec: singular transform matrix")
	}
	inv := 1 / det
	a, b, c, d := m[3]*inv, -m[1]*inv, -m[2]*inv, m[0]*inv
	e := -(a*m[4] + c*m[5])
	f := -(b*m[4] + d*m[5])
	return Matrix{a, b, c, d, e, f}
}

// DeviceContext is the host collaborator this engine consumes: it
// supplies the world-to-device transform, arc direction, graphics mode,
// fill mode, pen, and miter limit described in spec.md §3/§6. The core
// never constructs one; it is owned and supplied by the embedder.
type DeviceContext interface {
	Transform() Matrix
	GraphicsMode() GraphicsMode
	ArcDirection() ArcDirection
	FillMode() FillMode
	Pen() Pen
	MiterLimit() float64
}

// Context is the engine's own minimal DeviceContext implementation and
// the owner of the path lifecycle described in spec.md §3 "Lifecycle"
// and Design Notes "Global device-context registry": a context owns at
// most one committed (closed) path and at most one in-progress
// recording, and destruction releases both.
//
// Context also holds the driver stack (driver.go) used by
// BeginPath/EndPath/AbortPath.
type Context struct {
	Mat         Matrix
	Mode        GraphicsMode
	Direction   ArcDirection
	Fill        FillMode
	PenState    Pen
	Miter       float64
	CurrentPosX float64
	CurrentPosY float64

	committed *Path // closed path, set by EndPath; consumed by *Path ops
	recorder  *recordingDriver
	drivers   []Driver
}

// NewContext returns a Context with idiomatic defaults: identity
// transform, compatible graphics mode, clockwise arc direction (the
// original's numeric default for a fresh device context, carried
// forward per SPEC_FULL.md §4), alternate fill mode, and miter limit 10.
func NewContext() *Context {
	return &Context{
		Mat:       IdentityMatrix,
		Mode:      GraphicsModeCompatible,
		Direction: ArcClockwise,
		Fill:      FillAlternate,
		Miter:     10,
	}
}

func (c *Context) Transform() Matrix         { return c.Mat }
func (c *Context) GraphicsMode() GraphicsMode { return c.Mode }
func (c *Context) ArcDirection() ArcDirection { return c.Direction }
func (c *Context) FillMode() FillMode         { return c.Fill }
func (c *Context) Pen() Pen                   { return c.PenState }
func (c *Context) MiterLimit() float64        { return c.Miter }

// toDevice projects a logical point to device space via the context's
// current transform, rounding to the device integer grid.
func (c *Context) toDevice(p Pointf) Point {
	return ApplyRoundMatrix(c.Mat, p)
}

// toDeviceF projects without rounding, for callers (the arc family)
// that need sub-pixel precision.
func (c *Context) toDeviceF(p Pointf) Pointf {
	return ApplyMatrix(c.Mat, p)
}

// GetPath implements spec.md §6's get_path: if size == 0 it returns the
// entry count; if size is smaller than the count it fails with
// ErrInvalidParameter; otherwise it copies the committed path's points
// (inverse-transformed to logical coordinates) and tags into the
// caller-supplied slices and returns the count. GetPath does not
// consume the path (SPEC_FULL.md §4).
func (c *Context) GetPath(pointsOut []Pointf, tagsOut []Tag, size int) (int, error) {
	if c.committed == nil {
		return 0, opErr("GetPath", ErrCanNotComplete)
	}
	n := c.committed.Len()
	if size == 0 {
		return n, nil
	}
	if size < n {
		return 0, opErr("GetPath", ErrInvalidParameter)
	}
	inv := InvertMatrix(c.Mat)
	for i := 0; i < n; i++ {
		pointsOut[i] = ApplyMatrix(inv, c.committed.Point(i).ToPointf())
		tagsOut[i] = c.committed.Tag(i)
	}
	return n, nil
}

// AbortPath discards any in-progress recording without committing it,
// clearing the committed path as well (spec.md §4.7).
func (c *Context) AbortPath() {
	if c.recorder != nil {
		c.popDriver()
	}
	c.recorder = nil
	c.committed = nil
}

// CloseFigure closes the current figure of the in-progress recording,
// if any.
func (c *Context) CloseFigure() {
	if c.recorder != nil {
		c.recorder.path.closeLast()
	}
}

// snapshot returns deep copies of the committed path and of the
// in-progress recording's path (nil where absent), as used by SaveDC.
func (c *Context) snapshot() (committed, recording *Path) {
	if c.committed != nil {
		committed = c.committed.Clone()
	}
	if c.recorder != nil {
		recording = c.recorder.path.Clone()
	}
	return committed, recording
}

// SavedPathState is the deep copy of a context's path state that SaveDC
// returns and RestoreDC reinstates, per spec.md
// §3 "SaveDC/RestoreDC require deep-copy snapshots of both the closed
// path and any in-progress recording."
type SavedPathState struct {
	committed *Path
	recording *Path
	recActive bool
}

// SaveDC snapshots the current path state.
func (c *Context) SaveDC() SavedPathState {
	committed, recording := c.snapshot()
	return SavedPathState{committed: committed, recording: recording, recActive: c.recorder != nil}
}

// RestoreDC restores a previously saved path state, replacing whatever
// path state c currently holds. If a recording was in progress when the
// state was saved, a fresh recording driver is reconstructed around the
// restored buffer and pushed onto the driver stack in place of whatever
// recording driver (if any) is currently on top of it.
func (c *Context) RestoreDC(s SavedPathState) {
	c.committed = s.committed
	if c.recorder != nil {
		c.popDriver()
		c.recorder = nil
	}
	if s.recActive {
		d := &recordingDriver{path: s.recording, rec: NewRecorder(s.recording, c.toDevice), ctx: c}
		c.recorder = d
		c.drivers = append(c.drivers, d)
	}
}

// CommittedPath returns the context's closed path, or nil if none.
func (c *Context) CommittedPath() *Path { return c.committed }
