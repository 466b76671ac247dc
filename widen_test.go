package pathrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trianglePath is the scenario 1 triangle left *open* (no Close on its
// last entry), so widening it dispatches through widenOpenSubpath: the
// end-cap geometry, not the closed-subpath assembly of spec.md §8
// scenario 6. See closedTrianglePath below for the closed case.
func trianglePath() *Path {
	p := NewPath()
	p.append(Point{X: 0, Y: 0}, Move)
	p.append(Point{X: 10, Y: 0}, Line)
	p.append(Point{X: 5, Y: 10}, Line)
	return p
}

// closedTrianglePath is scenario 1's triangle with close_figure applied,
// the input spec.md §8 scenario 6 widens.
func closedTrianglePath() *Path {
	p := NewPath()
	p.append(Point{X: 0, Y: 0}, Move)
	p.append(Point{X: 10, Y: 0}, Line)
	p.append(Point{X: 5, Y: 10}, Line|Close)
	return p
}

func TestWidenRejectsCosmeticPen(t *testing.T) {
	_, err := Widen(trianglePath(), Pen{Width: 2, Style: PenTypeCosmetic}, 10)
	assert.ErrorIs(t, err, ErrCanNotComplete)
}

// TestWidenTriangleWithFlatCap exercises the open-stroke path: the
// triangle's start and end are left unconnected by Close, so Widen
// bridges them with flat end-cap geometry rather than the closed
// up/down assembly of TestWidenClosedTriangleIsSingleFigure below.
func TestWidenTriangleWithFlatCap(t *testing.T) {
	out, err := Widen(trianglePath(), Pen{Width: 4, Style: EndCapFlat | JoinMiter}, 10)
	require.NoError(t, err)
	require.Equal(t, 1, countFigures(out))
	assert.Equal(t, Move, out.Tag(0))
	assert.True(t, out.Tag(out.Len()-1).Closed())
	assert.NoError(t, out.checkInvariants())
}

// TestWidenClosedTriangleIsSingleFigure reproduces spec.md §8 scenario 6
// literally: the scenario 1 triangle, now closed, widened with a FLAT
// end-cap pen of width 4. The end-cap style is irrelevant here (no
// endpoint case applies to a closed stroke) but is kept to match the
// scenario's pen. spec.md §4.5 assembles a closed stroke's widened
// outline as the up sub-path forward followed by the down sub-path
// reversed *in one figure*, with an internal Move marking the
// transition instead of a second Close -- not two independently closed
// rings, which is what widenClosedSubpath produced before.
func TestWidenClosedTriangleIsSingleFigure(t *testing.T) {
	pen := Pen{Width: 4, Style: EndCapFlat | JoinMiter}
	out, err := Widen(closedTrianglePath(), pen, 10)
	require.NoError(t, err)
	require.NoError(t, out.checkInvariants())

	// One Move opens the figure, one more marks the up/down transition;
	// countFigures counts Move tags, not figures delimited by Close.
	require.Equal(t, 2, countFigures(out))
	assert.Equal(t, Move, out.Tag(0))
	for i := 0; i < out.Len()-1; i++ {
		assert.False(t, out.Tag(i).Closed(), "entry %d should not be closed", i)
	}
	assert.True(t, out.Tag(out.Len()-1).Closed())

	// The entry count is exactly one Move for the up ring plus its
	// segments, followed by one Move for the down ring plus its
	// segments -- no entry is spent closing the up ring on its own,
	// which is the bug this test guards against.
	ptsF := dedupPoints([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}})
	wIn := float64(pen.Width / 2)
	wOut := float64(pen.Width) - wIn
	join := pen.Style.Join()
	_, upSegs, _ := buildSideSegs(ptsF, wOut, join, 10, true)
	_, downSegs, _ := buildSideSegs(ptsF, -wIn, join, 10, true)
	wantLen := 1 + len(upSegs) + 1 + len(downSegs)
	assert.Equal(t, wantLen, out.Len())
}

func TestWidenTriangleWithRoundJoinProducesBeziers(t *testing.T) {
	out, err := Widen(trianglePath(), Pen{Width: 6, Style: EndCapRound | JoinRound}, 10)
	require.NoError(t, err)
	require.Greater(t, out.Len(), 0)
	assert.NoError(t, out.checkInvariants())

	sawBezier := false
	for _, tag := range out.Tags() {
		if tag.Base() == Bezier {
			sawBezier = true
			break
		}
	}
	assert.True(t, sawBezier, "round join/cap should introduce at least one Bezier run")
}

func TestWidenZeroWidthPenClampsToOne(t *testing.T) {
	out, err := Widen(trianglePath(), Pen{Width: 0, Style: EndCapFlat | JoinBevel}, 10)
	require.NoError(t, err)
	assert.Greater(t, out.Len(), 0)
}

// TestWidenClosedSquareIsSingleFigureWithTwoMoves widens a closed
// square, producing an outer and inner offset ring (the inner traversed
// in reverse so a nonzero-winding fill treats it as a hole) joined into
// one figure: two Move tags (ring start, then the up/down transition)
// but only one Close, on the very last entry.
func TestWidenClosedSquareIsSingleFigureWithTwoMoves(t *testing.T) {
	p := NewPath()
	p.append(Point{X: 0, Y: 0}, Move)
	p.append(Point{X: 20, Y: 0}, Line)
	p.append(Point{X: 20, Y: 20}, Line)
	p.append(Point{X: 0, Y: 20}, Line|Close)

	out, err := Widen(p, Pen{Width: 4, Style: JoinBevel}, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, countFigures(out))
	assert.NoError(t, out.checkInvariants())

	closes := 0
	for i := 0; i < out.Len(); i++ {
		if out.Tag(i).Closed() {
			closes++
			assert.Equal(t, out.Len()-1, i, "Close must land on the final entry, not an inner ring boundary")
		}
	}
	assert.Equal(t, 1, closes)
}

func TestWidenRejectsUnflattenedPath(t *testing.T) {
	p := NewPath()
	p.append(Point{X: 0, Y: 0}, Move)
	p.append(Point{X: 1, Y: 1}, Bezier)
	p.append(Point{X: 2, Y: 2}, Bezier)
	p.append(Point{X: 3, Y: 3}, Bezier)

	_, err := Widen(p, Pen{Width: 2, Style: JoinBevel}, 10)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func countFigures(p *Path) int {
	n := 0
	for _, tag := range p.Tags() {
		if tag.Base() == Move {
			n++
		}
	}
	return n
}
