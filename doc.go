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

// Package pathrec implements a device-space path construction and
// transformation engine: recording drawing primitives (moves, lines,
// arcs, Béziers, rectangles, glyph outlines) into a compact tagged point
// buffer, then flattening, widening, or converting that buffer to a
// fillable region.
//
// The engine does not rasterize, anti-alias, or clip; it produces paths
// and regions for a host device context to consume. The device context
// itself, the region constructor, and the cubic Bézier flattener are
// external collaborators supplied by the caller through the
// DeviceContext, RegionConstructor, and CubicFlattener contracts. Glyph
// outlines are consumed as GlyphOutline/GlyphCurve values;
// DecodeNativeOutline is provided to parse the native
// TTPOLYGONHEADER/TTPOLYCURVE byte layout into that shape for callers
// backed by a Windows-style font rasterizer.
package pathrec
