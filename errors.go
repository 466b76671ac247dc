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

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three error kinds in spec.md §6/§7. Wrap with
// fmt.Errorf("%w: ...") so callers can still errors.Is against these.
var (
	// ErrNotEnoughMemory signals an allocation failure during a growable
	// append, flatten, or widen.
	ErrNotEnoughMemory = errors.New("pathrec: not enough memory")

	// ErrCanNotComplete signals a protocol failure: the operation was
	// invoked in the wrong state (no open recording for EndPath, widening
	// a cosmetic pen, and so on).
	ErrCanNotComplete = errors.New("pathrec: operation can not complete")

	// ErrInvalidParameter signals a malformed caller argument (an
	// undersized GetPath buffer, a poly-polygon count below 2, an
	// unrecognized glyph curve type).
	ErrInvalidParameter = errors.New("pathrec: invalid parameter")
)

// OpError wraps one of the sentinel errors with the name of the failing
// operation, matching the "no exceptional control flow crosses the
// public boundary; every entry point returns a success indicator"
// contract of spec.md §7.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("pathrec: %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func opErr(op string, err error) error {
	return &OpError{Op: op, Err: err}
}
